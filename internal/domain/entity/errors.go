package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate indicates that the store rejected a duplicate unique key
	// (broker email, account username). This can only be detected at commit
	// time, so it is reported separately from validation failures.
	ErrDuplicate = errors.New("duplicate unique key")

	// ErrStoreUnavailable indicates that the underlying store handle could not
	// be acquired or is refusing requests. Fatal to the operation; this layer
	// does not retry.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}
