package repository

import (
	"context"

	"dalahus/internal/domain/entity"
)

// HousingRepository provides access to housing listing rows.
type HousingRepository interface {
	List(ctx context.Context) ([]*entity.Housing, error)
	Get(ctx context.Context, id int64) (*entity.Housing, error)
	GetOrFail(ctx context.Context, id int64) (*entity.Housing, error)
	// SearchByCity filters listings on an exact city match.
	SearchByCity(ctx context.Context, city string) ([]*entity.Housing, error)
	Create(ctx context.Context, housing *entity.Housing) error
	Update(ctx context.Context, housing *entity.Housing) error
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}
