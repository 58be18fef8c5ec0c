package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a uniquely keyed entity.
	ErrDuplicate = errors.New("entity already exists")

	// ErrStudentNotFound indicates that no student with the given name is stored.
	ErrStudentNotFound = fmt.Errorf("%w: student", ErrNotFound)

	// ErrStudentExists indicates that a student with the given name is already stored.
	ErrStudentExists = fmt.Errorf("%w: student", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "student")
	Operation string // The operation that failed (e.g., "add", "set_grades")
	Key       string // The key the operation targeted
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	return fmt.Sprintf("%s operation on %s %q failed: %v", e.Operation, e.Entity, e.Key, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, key, and wrapped error.
func NewStoreError(entity, operation, key string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Key:       key,
		Err:       err,
	}
}
