package store

import (
	"context"

	"github.com/phrazzld/gradebook/internal/domain"
)

// StudentStore defines the interface for student record storage.
// Implementations own every record they hold: values returned are copies,
// and mutations are validated before anything is written.
type StudentStore interface {
	// List returns every stored student in insertion order.
	List(ctx context.Context) ([]*domain.Student, error)

	// Count returns the number of stored students.
	Count(ctx context.Context) (int, error)

	// Add creates a student with zeroed grades and attendance.
	// Returns a domain ValidationError if name is empty.
	// Returns ErrStudentExists if the name is already taken.
	Add(ctx context.Context, name string) (*domain.Student, error)

	// Get retrieves a student by name.
	// Returns ErrStudentNotFound if the student does not exist.
	Get(ctx context.Context, name string) (*domain.Student, error)

	// Remove deletes a student by name.
	// Returns ErrStudentNotFound if the student does not exist.
	Remove(ctx context.Context, name string) error

	// SetGrades replaces the whole grade list of a student.
	// Returns ErrStudentNotFound if the student does not exist.
	// Returns a domain ValidationError, leaving the record untouched, if any grade is invalid.
	SetGrades(ctx context.Context, name string, grades []float64) (*domain.Student, error)

	// SetAttendance replaces the attendance percentage of a student.
	// A nil value is rejected as missing.
	// Returns ErrStudentNotFound if the student does not exist.
	// Returns a domain ValidationError, leaving the record untouched, if the value is invalid.
	SetAttendance(ctx context.Context, name string, attendance *float64) (*domain.Student, error)
}
