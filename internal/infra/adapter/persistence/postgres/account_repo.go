package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"dalahus/internal/domain/entity"
	"dalahus/internal/repository"
)

type AccountRepo struct{ db repository.DB }

func NewAccountRepo(db repository.DB) repository.AccountRepository {
	return &AccountRepo{db: db}
}

func (repo *AccountRepo) List(ctx context.Context) ([]*entity.Account, error) {
	const query = `
SELECT id, username, password, role
FROM accounts`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	accounts := make([]*entity.Account, 0, 8)
	for rows.Next() {
		var account entity.Account
		if err := rows.Scan(&account.ID, &account.Username,
			&account.Password, &account.Role); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		accounts = append(accounts, &account)
	}
	return accounts, rows.Err()
}

func (repo *AccountRepo) Get(ctx context.Context, id int64) (*entity.Account, error) {
	const query = `
SELECT id, username, password, role
FROM accounts
WHERE id = $1
LIMIT 1`
	var account entity.Account
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&account.ID, &account.Username, &account.Password, &account.Role)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &account, nil
}

func (repo *AccountRepo) GetOrFail(ctx context.Context, id int64) (*entity.Account, error) {
	account, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, fmt.Errorf("GetOrFail: account %d: %w", id, entity.ErrNotFound)
	}
	return account, nil
}

// GetByUsername is the lookup used for credential verification. The stored
// credential is returned verbatim; absence is (nil, nil), not an error.
func (repo *AccountRepo) GetByUsername(ctx context.Context, username string) (*entity.Account, error) {
	const query = `
SELECT id, username, password, role
FROM accounts
WHERE username = $1
LIMIT 1`
	var account entity.Account
	err := repo.db.QueryRowContext(ctx, query, username).
		Scan(&account.ID, &account.Username, &account.Password, &account.Role)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByUsername: %w", err)
	}
	return &account, nil
}

func (repo *AccountRepo) Create(ctx context.Context, account *entity.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}
	const query = `
INSERT INTO accounts (username, password, role)
VALUES ($1, $2, $3)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		account.Username, account.Password, account.Role,
	).Scan(&account.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", mapError(err))
	}
	return nil
}

func (repo *AccountRepo) Update(ctx context.Context, account *entity.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}
	const query = `
UPDATE accounts SET
       username = $1,
       password = $2,
       role     = $3
WHERE id = $4`
	res, err := repo.db.ExecContext(ctx, query,
		account.Username, account.Password, account.Role, account.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", mapError(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: account %d: %w", account.ID, entity.ErrNotFound)
	}
	return nil
}

func (repo *AccountRepo) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM accounts WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("Delete: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (repo *AccountRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM accounts`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}
