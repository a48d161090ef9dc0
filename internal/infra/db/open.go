// Package db owns the connection to the persistent store: opening and
// configuring the handle, schema migration, and the transaction scope helper.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// ConnectionConfig holds database connection pool configuration.
type ConnectionConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultConnectionConfig returns the default connection pool configuration.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		MaxOpenConns:    25,
		MaxIdleConns:    10,
		ConnMaxLifetime: 1 * time.Hour,
		ConnMaxIdleTime: 30 * time.Minute,
	}
}

// Open creates and configures a PostgreSQL connection pool from the given DSN
// and verifies it with a ping. The returned handle is the process's single
// logical connection to the store.
func Open(dsn string, cfg ConnectionConfig) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("Open: empty DSN")
	}

	handle, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("Open: %w", err)
	}

	handle.SetMaxOpenConns(cfg.MaxOpenConns)
	handle.SetMaxIdleConns(cfg.MaxIdleConns)
	handle.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	handle.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	slog.Info("database connection pool configured",
		slog.Int("max_open_conns", cfg.MaxOpenConns),
		slog.Int("max_idle_conns", cfg.MaxIdleConns),
		slog.Duration("conn_max_lifetime", cfg.ConnMaxLifetime),
		slog.Duration("conn_max_idle_time", cfg.ConnMaxIdleTime))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := handle.PingContext(ctx); err != nil {
		_ = handle.Close()
		return nil, fmt.Errorf("Open: ping: %w", err)
	}

	slog.Info("database connection established successfully")
	return handle, nil
}

// OpenSQLite opens a SQLite database at the given path and configures it for
// use: WAL journal mode, foreign key enforcement (required for the comment
// cascade), and a single connection since SQLite serializes writers anyway.
func OpenSQLite(path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("OpenSQLite: empty path")
	}

	handle, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("OpenSQLite: %w", err)
	}

	ctx := context.Background()
	if _, err := handle.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		_ = handle.Close()
		return nil, fmt.Errorf("OpenSQLite: enable WAL mode: %w", err)
	}
	if _, err := handle.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		_ = handle.Close()
		return nil, fmt.Errorf("OpenSQLite: enable foreign keys: %w", err)
	}

	handle.SetMaxOpenConns(1)

	if err := handle.PingContext(ctx); err != nil {
		_ = handle.Close()
		return nil, fmt.Errorf("OpenSQLite: ping: %w", err)
	}

	slog.Info("sqlite database opened", slog.String("path", path))
	return handle, nil
}
