package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"dalahus/internal/domain/entity"
	"dalahus/internal/repository"
)

type HousingRepo struct{ db repository.DB }

func NewHousingRepo(db repository.DB) repository.HousingRepository {
	return &HousingRepo{db: db}
}

func (repo *HousingRepo) List(ctx context.Context) ([]*entity.Housing, error) {
	const query = `
SELECT id, address, city, price, rooms, area, description
FROM housing`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	listings := make([]*entity.Housing, 0, 32)
	for rows.Next() {
		var housing entity.Housing
		if err := rows.Scan(&housing.ID, &housing.Address, &housing.City,
			&housing.Price, &housing.Rooms, &housing.Area, &housing.Description); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		listings = append(listings, &housing)
	}
	return listings, rows.Err()
}

func (repo *HousingRepo) Get(ctx context.Context, id int64) (*entity.Housing, error) {
	const query = `
SELECT id, address, city, price, rooms, area, description
FROM housing
WHERE id = $1
LIMIT 1`
	var housing entity.Housing
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&housing.ID, &housing.Address, &housing.City,
			&housing.Price, &housing.Rooms, &housing.Area, &housing.Description)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &housing, nil
}

func (repo *HousingRepo) GetOrFail(ctx context.Context, id int64) (*entity.Housing, error) {
	housing, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if housing == nil {
		return nil, fmt.Errorf("GetOrFail: housing %d: %w", id, entity.ErrNotFound)
	}
	return housing, nil
}

func (repo *HousingRepo) SearchByCity(ctx context.Context, city string) ([]*entity.Housing, error) {
	const query = `
SELECT id, address, city, price, rooms, area, description
FROM housing
WHERE city = $1`
	rows, err := repo.db.QueryContext(ctx, query, city)
	if err != nil {
		return nil, fmt.Errorf("SearchByCity: %w", err)
	}
	defer func() { _ = rows.Close() }()

	listings := make([]*entity.Housing, 0, 16)
	for rows.Next() {
		var housing entity.Housing
		if err := rows.Scan(&housing.ID, &housing.Address, &housing.City,
			&housing.Price, &housing.Rooms, &housing.Area, &housing.Description); err != nil {
			return nil, fmt.Errorf("SearchByCity: Scan: %w", err)
		}
		listings = append(listings, &housing)
	}
	return listings, rows.Err()
}

func (repo *HousingRepo) Create(ctx context.Context, housing *entity.Housing) error {
	if err := housing.Validate(); err != nil {
		return err
	}
	const query = `
INSERT INTO housing (address, city, price, rooms, area, description)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		housing.Address, housing.City, housing.Price,
		housing.Rooms, housing.Area, housing.Description,
	).Scan(&housing.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", mapError(err))
	}
	return nil
}

func (repo *HousingRepo) Update(ctx context.Context, housing *entity.Housing) error {
	if err := housing.Validate(); err != nil {
		return err
	}
	const query = `
UPDATE housing SET
       address     = $1,
       city        = $2,
       price       = $3,
       rooms       = $4,
       area        = $5,
       description = $6
WHERE id = $7`
	res, err := repo.db.ExecContext(ctx, query,
		housing.Address, housing.City, housing.Price,
		housing.Rooms, housing.Area, housing.Description, housing.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", mapError(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: housing %d: %w", housing.ID, entity.ErrNotFound)
	}
	return nil
}

func (repo *HousingRepo) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM housing WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("Delete: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (repo *HousingRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM housing`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}
