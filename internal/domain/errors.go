// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity or an update to it fails validation.
	// It is usually wrapped in a ValidationError that names the offending field.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyClass is returned when a statistic is requested over zero students.
	// Statistics over an empty class are undefined rather than zero.
	ErrEmptyClass = errors.New("no students registered")
)

// ValidationError describes a rejected field together with a message that is
// safe to show to API clients.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for field. A nil err defaults to ErrValidation.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}
