package repository

import (
	"context"

	"dalahus/internal/domain/entity"
)

// OfficeRepository provides access to office rows.
type OfficeRepository interface {
	List(ctx context.Context) ([]*entity.Office, error)
	Get(ctx context.Context, id int64) (*entity.Office, error)
	GetOrFail(ctx context.Context, id int64) (*entity.Office, error)
	Create(ctx context.Context, office *entity.Office) error
	Update(ctx context.Context, office *entity.Office) error
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}
