package memory

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/phrazzld/gradebook/internal/domain"
	"github.com/phrazzld/gradebook/internal/store"
)

const entityStudent = "student"

// StudentStore implements store.StudentStore with an insertion-ordered map
// guarded by a single read/write lock.
type StudentStore struct {
	mu       sync.RWMutex
	students map[string]*domain.Student
	order    []string
	logger   *slog.Logger
}

// Ensure StudentStore implements store.StudentStore interface
var _ store.StudentStore = (*StudentStore)(nil)

// NewStudentStore creates an empty in-memory student store.
// If logger is nil, the default logger is used.
func NewStudentStore(logger *slog.Logger) *StudentStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &StudentStore{
		students: make(map[string]*domain.Student),
		logger:   logger.With(slog.String("component", "memory_student_store")),
	}
}

// List implements store.StudentStore.List
func (s *StudentStore) List(ctx context.Context) ([]*domain.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Student, 0, len(s.order))
	for _, name := range s.order {
		result = append(result, s.students[name].Clone())
	}
	return result, nil
}

// Count implements store.StudentStore.Count
func (s *StudentStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.order), nil
}

// Add implements store.StudentStore.Add
func (s *StudentStore) Add(ctx context.Context, name string) (*domain.Student, error) {
	student, err := domain.NewStudent(name)
	if err != nil {
		return nil, store.NewStoreError(entityStudent, "add", name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.students[name]; exists {
		return nil, store.NewStoreError(entityStudent, "add", name, store.ErrStudentExists)
	}

	s.students[name] = student
	s.order = append(s.order, name)

	s.logger.DebugContext(ctx, "student added", slog.String("name", name), slog.Int("count", len(s.order)))
	return student.Clone(), nil
}

// Get implements store.StudentStore.Get
func (s *StudentStore) Get(ctx context.Context, name string) (*domain.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	student, ok := s.students[name]
	if !ok {
		return nil, store.NewStoreError(entityStudent, "get", name, store.ErrStudentNotFound)
	}
	return student.Clone(), nil
}

// Remove implements store.StudentStore.Remove
func (s *StudentStore) Remove(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.students[name]; !ok {
		return store.NewStoreError(entityStudent, "remove", name, store.ErrStudentNotFound)
	}

	delete(s.students, name)
	if i := slices.Index(s.order, name); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}

	s.logger.DebugContext(ctx, "student removed", slog.String("name", name), slog.Int("count", len(s.order)))
	return nil
}

// SetGrades implements store.StudentStore.SetGrades
func (s *StudentStore) SetGrades(
	ctx context.Context,
	name string,
	grades []float64,
) (*domain.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	student, ok := s.students[name]
	if !ok {
		return nil, store.NewStoreError(entityStudent, "set_grades", name, store.ErrStudentNotFound)
	}

	if err := domain.ValidateGrades(grades); err != nil {
		return nil, store.NewStoreError(entityStudent, "set_grades", name, err)
	}

	// Store our own copy so the caller's slice cannot reach stored state.
	student.Grades = slices.Clone(grades)

	s.logger.DebugContext(ctx, "student grades replaced", slog.String("name", name))
	return student.Clone(), nil
}

// SetAttendance implements store.StudentStore.SetAttendance
func (s *StudentStore) SetAttendance(
	ctx context.Context,
	name string,
	attendance *float64,
) (*domain.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	student, ok := s.students[name]
	if !ok {
		return nil, store.NewStoreError(entityStudent, "set_attendance", name, store.ErrStudentNotFound)
	}

	if err := domain.ValidateAttendance(attendance); err != nil {
		return nil, store.NewStoreError(entityStudent, "set_attendance", name, err)
	}

	student.Attendance = *attendance
	student.AttendanceRecorded = true

	s.logger.DebugContext(ctx, "student attendance replaced",
		slog.String("name", name),
		slog.Float64("attendance", *attendance))
	return student.Clone(), nil
}
