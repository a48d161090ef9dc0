package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"dalahus/internal/domain/entity"
	"dalahus/internal/repository"
)

// OfficeRepo implements the OfficeRepository interface using SQLite.
type OfficeRepo struct{ db repository.DB }

// NewOfficeRepo creates a new SQLite-backed office repository.
func NewOfficeRepo(db repository.DB) repository.OfficeRepository {
	return &OfficeRepo{db: db}
}

func (repo *OfficeRepo) List(ctx context.Context) ([]*entity.Office, error) {
	const query = `
SELECT id, name, address, lat, lon, manager, image_url
FROM offices
`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	offices := make([]*entity.Office, 0, 8)
	for rows.Next() {
		var office entity.Office
		if err := rows.Scan(&office.ID, &office.Name, &office.Address,
			&office.Lat, &office.Lon, &office.Manager, &office.ImageURL); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		offices = append(offices, &office)
	}
	return offices, rows.Err()
}

func (repo *OfficeRepo) Get(ctx context.Context, id int64) (*entity.Office, error) {
	const query = `
SELECT id, name, address, lat, lon, manager, image_url
FROM offices
WHERE id = ?
LIMIT 1
`
	var office entity.Office
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&office.ID, &office.Name, &office.Address,
			&office.Lat, &office.Lon, &office.Manager, &office.ImageURL)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("Get: QueryRowContext: %w", err)
	}
	return &office, nil
}

func (repo *OfficeRepo) GetOrFail(ctx context.Context, id int64) (*entity.Office, error) {
	office, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if office == nil {
		return nil, fmt.Errorf("GetOrFail: office %d: %w", id, entity.ErrNotFound)
	}
	return office, nil
}

func (repo *OfficeRepo) Create(ctx context.Context, office *entity.Office) error {
	if err := office.Validate(); err != nil {
		return err
	}
	const query = `
INSERT INTO offices (name, address, lat, lon, manager, image_url)
VALUES (?, ?, ?, ?, ?, ?)
`
	res, err := repo.db.ExecContext(ctx, query,
		office.Name, office.Address, office.Lat, office.Lon,
		office.Manager, office.ImageURL,
	)
	if err != nil {
		return fmt.Errorf("Create: %w", mapError(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("Create: LastInsertId: %w", err)
	}
	office.ID = id
	return nil
}

func (repo *OfficeRepo) Update(ctx context.Context, office *entity.Office) error {
	if err := office.Validate(); err != nil {
		return err
	}
	const query = `
UPDATE offices SET
       name      = ?,
       address   = ?,
       lat       = ?,
       lon       = ?,
       manager   = ?,
       image_url = ?
WHERE id = ?
`
	res, err := repo.db.ExecContext(ctx, query,
		office.Name, office.Address, office.Lat, office.Lon,
		office.Manager, office.ImageURL, office.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", mapError(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: office %d: %w", office.ID, entity.ErrNotFound)
	}
	return nil
}

func (repo *OfficeRepo) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM offices WHERE id = ?`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("Delete: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (repo *OfficeRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM offices`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}
