package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"dalahus/internal/domain/entity"
	"dalahus/internal/repository"
)

// BrokerRepo implements the BrokerRepository interface using SQLite.
type BrokerRepo struct{ db repository.DB }

// NewBrokerRepo creates a new SQLite-backed broker repository.
func NewBrokerRepo(db repository.DB) repository.BrokerRepository {
	return &BrokerRepo{db: db}
}

func (repo *BrokerRepo) List(ctx context.Context) ([]*entity.Broker, error) {
	const query = `
SELECT id, name, email, phone, title, bio
FROM brokers
`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	brokers := make([]*entity.Broker, 0, 16)
	for rows.Next() {
		var broker entity.Broker
		if err := rows.Scan(&broker.ID, &broker.Name, &broker.Email,
			&broker.Phone, &broker.Title, &broker.Bio); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		brokers = append(brokers, &broker)
	}
	return brokers, rows.Err()
}

func (repo *BrokerRepo) Get(ctx context.Context, id int64) (*entity.Broker, error) {
	const query = `
SELECT id, name, email, phone, title, bio
FROM brokers
WHERE id = ?
LIMIT 1
`
	var broker entity.Broker
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&broker.ID, &broker.Name, &broker.Email,
			&broker.Phone, &broker.Title, &broker.Bio)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("Get: QueryRowContext: %w", err)
	}
	return &broker, nil
}

func (repo *BrokerRepo) GetOrFail(ctx context.Context, id int64) (*entity.Broker, error) {
	broker, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if broker == nil {
		return nil, fmt.Errorf("GetOrFail: broker %d: %w", id, entity.ErrNotFound)
	}
	return broker, nil
}

func (repo *BrokerRepo) Create(ctx context.Context, broker *entity.Broker) error {
	if err := broker.Validate(); err != nil {
		return err
	}
	const query = `
INSERT INTO brokers (name, email, phone, title, bio)
VALUES (?, ?, ?, ?, ?)
`
	res, err := repo.db.ExecContext(ctx, query,
		broker.Name, broker.Email, broker.Phone, broker.Title, broker.Bio,
	)
	if err != nil {
		return fmt.Errorf("Create: %w", mapError(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("Create: LastInsertId: %w", err)
	}
	broker.ID = id
	return nil
}

func (repo *BrokerRepo) Update(ctx context.Context, broker *entity.Broker) error {
	if err := broker.Validate(); err != nil {
		return err
	}
	const query = `
UPDATE brokers SET
       name  = ?,
       email = ?,
       phone = ?,
       title = ?,
       bio   = ?
WHERE id = ?
`
	res, err := repo.db.ExecContext(ctx, query,
		broker.Name, broker.Email, broker.Phone, broker.Title, broker.Bio, broker.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", mapError(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: broker %d: %w", broker.ID, entity.ErrNotFound)
	}
	return nil
}

func (repo *BrokerRepo) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM brokers WHERE id = ?`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("Delete: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (repo *BrokerRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM brokers`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}
