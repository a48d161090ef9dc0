package db

import (
	"context"
	"database/sql"
	"fmt"
)

// TxFunc is the callback run inside a transaction scope.
type TxFunc func(tx *sql.Tx) error

// WithTx runs fn inside a transaction and guarantees the transaction is
// resolved on every exit path: commit on success, rollback on error or panic.
func WithTx(ctx context.Context, handle *sql.DB, fn TxFunc) (err error) {
	tx, err := handle.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("WithTx: begin: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("WithTx: commit: %w", err)
	}
	return nil
}
