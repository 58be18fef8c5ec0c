package service

import (
	"context"

	"github.com/phrazzld/gradebook/internal/domain"
	"github.com/phrazzld/gradebook/internal/store"
)

// MockStudentStore is a function-field mock of store.StudentStore.
// Unset functions return nil values.
type MockStudentStore struct {
	ListFn          func(ctx context.Context) ([]*domain.Student, error)
	CountFn         func(ctx context.Context) (int, error)
	AddFn           func(ctx context.Context, name string) (*domain.Student, error)
	GetFn           func(ctx context.Context, name string) (*domain.Student, error)
	RemoveFn        func(ctx context.Context, name string) error
	SetGradesFn     func(ctx context.Context, name string, grades []float64) (*domain.Student, error)
	SetAttendanceFn func(ctx context.Context, name string, attendance *float64) (*domain.Student, error)
}

var _ store.StudentStore = (*MockStudentStore)(nil)

func (m *MockStudentStore) List(ctx context.Context) ([]*domain.Student, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *MockStudentStore) Count(ctx context.Context) (int, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}

func (m *MockStudentStore) Add(ctx context.Context, name string) (*domain.Student, error) {
	if m.AddFn != nil {
		return m.AddFn(ctx, name)
	}
	return nil, nil
}

func (m *MockStudentStore) Get(ctx context.Context, name string) (*domain.Student, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, name)
	}
	return nil, nil
}

func (m *MockStudentStore) Remove(ctx context.Context, name string) error {
	if m.RemoveFn != nil {
		return m.RemoveFn(ctx, name)
	}
	return nil
}

func (m *MockStudentStore) SetGrades(ctx context.Context, name string, grades []float64) (*domain.Student, error) {
	if m.SetGradesFn != nil {
		return m.SetGradesFn(ctx, name, grades)
	}
	return nil, nil
}

func (m *MockStudentStore) SetAttendance(
	ctx context.Context,
	name string,
	attendance *float64,
) (*domain.Student, error) {
	if m.SetAttendanceFn != nil {
		return m.SetAttendanceFn(ctx, name, attendance)
	}
	return nil, nil
}
