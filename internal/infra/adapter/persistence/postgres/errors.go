// Package postgres provides PostgreSQL implementations of the repository
// interfaces, built on database/sql over the pgx stdlib driver.
package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"dalahus/internal/domain/entity"
)

// PostgreSQL error codes this layer cares about.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// mapError translates driver errors into domain sentinels. Unique-key
// violations become entity.ErrDuplicate, foreign-key violations become
// entity.ErrNotFound (the referenced parent row does not exist). Anything
// else passes through unchanged.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%w: constraint %s", entity.ErrDuplicate, pgErr.ConstraintName)
		case codeForeignKeyViolation:
			return fmt.Errorf("%w: constraint %s", entity.ErrNotFound, pgErr.ConstraintName)
		}
	}
	return err
}
