// Package repository declares the persistence contracts of the application.
// Each entity has exactly one repository interface, and a repository is the
// sole component permitted to issue store queries for its entity.
package repository

import (
	"context"
	"database/sql"
)

// DB is the subset of *sql.DB the persistence adapters need. It is satisfied
// by *sql.DB itself and by the circuit-breaker wrapper in
// internal/resilience/circuitbreaker.
type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
