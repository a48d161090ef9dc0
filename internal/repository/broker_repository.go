package repository

import (
	"context"

	"dalahus/internal/domain/entity"
)

// BrokerRepository provides access to broker rows.
//
// Get returns (nil, nil) when the id does not exist; GetOrFail returns
// entity.ErrNotFound instead. Create and Update validate the entity before
// touching the store and surface duplicate emails as entity.ErrDuplicate.
type BrokerRepository interface {
	List(ctx context.Context) ([]*entity.Broker, error)
	Get(ctx context.Context, id int64) (*entity.Broker, error)
	GetOrFail(ctx context.Context, id int64) (*entity.Broker, error)
	Create(ctx context.Context, broker *entity.Broker) error
	// Update overwrites every mutable field of the row. Omitted optional
	// fields are written back as their zero values, not preserved.
	Update(ctx context.Context, broker *entity.Broker) error
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}
