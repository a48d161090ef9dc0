package circuitbreaker

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sony/gobreaker"

	"dalahus/internal/domain/entity"
	"dalahus/internal/observability/metrics"
)

// DBCircuitBreaker wraps a database handle with circuit breaker protection.
// It satisfies the repository.DB interface, so repositories can be built on
// it instead of the raw *sql.DB without knowing the difference. A rejected
// call surfaces as entity.ErrStoreUnavailable.
type DBCircuitBreaker struct {
	cb *CircuitBreaker
	db *sql.DB
}

// NewDB wraps the handle with the store circuit configuration.
func NewDB(db *sql.DB) *DBCircuitBreaker {
	return &DBCircuitBreaker{
		cb: New(StoreConfig()),
		db: db,
	}
}

// NewDBWithConfig wraps the handle with a custom circuit configuration.
func NewDBWithConfig(db *sql.DB, cfg Config) *DBCircuitBreaker {
	return &DBCircuitBreaker{
		cb: New(cfg),
		db: db,
	}
}

// QueryContext executes a query through the circuit. When the circuit is
// open the query never reaches the database.
func (dcb *DBCircuitBreaker) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	result, err := dcb.cb.Execute(func() (interface{}, error) {
		return dcb.db.QueryContext(ctx, query, args...)
	})
	if err != nil {
		return nil, dcb.mapRejection(err)
	}
	return result.(*sql.Rows), nil
}

// ExecContext executes a statement through the circuit.
func (dcb *DBCircuitBreaker) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	result, err := dcb.cb.Execute(func() (interface{}, error) {
		return dcb.db.ExecContext(ctx, query, args...)
	})
	if err != nil {
		return nil, dcb.mapRejection(err)
	}
	return result.(sql.Result), nil
}

// QueryRowContext passes through to the handle. sql.Row defers its error to
// Scan, so the circuit cannot observe the outcome of single-row queries.
func (dcb *DBCircuitBreaker) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return dcb.db.QueryRowContext(ctx, query, args...)
}

// State returns the current state of the circuit breaker.
func (dcb *DBCircuitBreaker) State() gobreaker.State {
	return dcb.cb.State()
}

// IsOpen returns true if the circuit breaker is in the open state.
func (dcb *DBCircuitBreaker) IsOpen() bool {
	return dcb.cb.IsOpen()
}

// DB returns the underlying handle for operations that must bypass the
// circuit, such as migrations and shutdown.
func (dcb *DBCircuitBreaker) DB() *sql.DB {
	return dcb.db
}

func (dcb *DBCircuitBreaker) mapRejection(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		metrics.RecordStoreError("circuit_open")
		return fmt.Errorf("%w: %v", entity.ErrStoreUnavailable, err)
	}
	return err
}
