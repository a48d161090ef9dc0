package repository

import (
	"context"

	"dalahus/internal/domain/entity"
)

// AccountRepository provides access to login account rows.
//
// GetByUsername is the sole lookup path used for credential verification and
// returns the stored credential verbatim; comparing it against a supplied
// value is the caller's job.
type AccountRepository interface {
	List(ctx context.Context) ([]*entity.Account, error)
	Get(ctx context.Context, id int64) (*entity.Account, error)
	GetOrFail(ctx context.Context, id int64) (*entity.Account, error)
	GetByUsername(ctx context.Context, username string) (*entity.Account, error)
	Create(ctx context.Context, account *entity.Account) error
	Update(ctx context.Context, account *entity.Account) error
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}
