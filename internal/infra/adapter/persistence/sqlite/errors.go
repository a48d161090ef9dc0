// Package sqlite provides SQLite implementations of the repository
// interfaces, built on database/sql over the modernc.org/sqlite driver.
package sqlite

import (
	"fmt"
	"strings"

	"dalahus/internal/domain/entity"
)

// mapError translates driver errors into domain sentinels. The modernc
// driver exposes constraint failures only through the error text, so the
// checks match on the SQLite message prefixes.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return fmt.Errorf("%w: %v", entity.ErrDuplicate, err)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return fmt.Errorf("%w: %v", entity.ErrNotFound, err)
	}
	return err
}
