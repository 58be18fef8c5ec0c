package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/gradebook/internal/domain"
	"github.com/phrazzld/gradebook/internal/store"
)

// StudentService provides the student record operations
type StudentService interface {
	// ListStudents returns every student in insertion order
	ListStudents(ctx context.Context) ([]*domain.Student, error)

	// AddStudent registers a new student with zeroed grades and attendance
	AddStudent(ctx context.Context, name string) (*domain.Student, error)

	// GetStudent retrieves a student by name
	GetStudent(ctx context.Context, name string) (*domain.Student, error)

	// RemoveStudent deletes a student by name
	RemoveStudent(ctx context.Context, name string) error

	// UpdateGrades replaces a student's five grades
	UpdateGrades(ctx context.Context, name string, grades []float64) (*domain.Student, error)

	// UpdateAttendance replaces a student's attendance percentage
	UpdateAttendance(ctx context.Context, name string, attendance *float64) (*domain.Student, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	students store.StudentStore
	logger   *slog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(students store.StudentStore, logger *slog.Logger) (StudentService, error) {
	if students == nil {
		return nil, fmt.Errorf("student store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &studentServiceImpl{
		students: students,
		logger:   logger.With("component", "student_service"),
	}, nil
}

func (s *studentServiceImpl) ListStudents(ctx context.Context) ([]*domain.Student, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		logFailure(s.logger, "failed to list students", err)
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	s.logger.Debug("listed students", "count", len(students))
	return students, nil
}

func (s *studentServiceImpl) AddStudent(ctx context.Context, name string) (*domain.Student, error) {
	student, err := s.students.Add(ctx, name)
	if err != nil {
		logFailure(s.logger, "failed to add student", err, "name", name)
		return nil, fmt.Errorf("failed to add student: %w", err)
	}

	s.logger.Info("student added", "name", name)
	return student, nil
}

func (s *studentServiceImpl) GetStudent(ctx context.Context, name string) (*domain.Student, error) {
	student, err := s.students.Get(ctx, name)
	if err != nil {
		logFailure(s.logger, "failed to retrieve student", err, "name", name)
		return nil, fmt.Errorf("failed to retrieve student: %w", err)
	}

	return student, nil
}

func (s *studentServiceImpl) RemoveStudent(ctx context.Context, name string) error {
	if err := s.students.Remove(ctx, name); err != nil {
		logFailure(s.logger, "failed to remove student", err, "name", name)
		return fmt.Errorf("failed to remove student: %w", err)
	}

	s.logger.Info("student removed", "name", name)
	return nil
}

func (s *studentServiceImpl) UpdateGrades(
	ctx context.Context,
	name string,
	grades []float64,
) (*domain.Student, error) {
	student, err := s.students.SetGrades(ctx, name, grades)
	if err != nil {
		logFailure(s.logger, "failed to update grades", err, "name", name)
		return nil, fmt.Errorf("failed to update grades: %w", err)
	}

	s.logger.Info("grades updated", "name", name, "average", student.Average())
	return student, nil
}

func (s *studentServiceImpl) UpdateAttendance(
	ctx context.Context,
	name string,
	attendance *float64,
) (*domain.Student, error) {
	student, err := s.students.SetAttendance(ctx, name, attendance)
	if err != nil {
		logFailure(s.logger, "failed to update attendance", err, "name", name)
		return nil, fmt.Errorf("failed to update attendance: %w", err)
	}

	s.logger.Info("attendance updated", "name", name, "attendance", student.Attendance)
	return student, nil
}
