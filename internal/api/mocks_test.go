package api

import (
	"context"

	"github.com/phrazzld/gradebook/internal/domain"
	"github.com/phrazzld/gradebook/internal/domain/stats"
)

// MockStudentService implements service.StudentService with overridable functions.
type MockStudentService struct {
	ListStudentsFn     func(ctx context.Context) ([]*domain.Student, error)
	AddStudentFn       func(ctx context.Context, name string) (*domain.Student, error)
	GetStudentFn       func(ctx context.Context, name string) (*domain.Student, error)
	RemoveStudentFn    func(ctx context.Context, name string) error
	UpdateGradesFn     func(ctx context.Context, name string, grades []float64) (*domain.Student, error)
	UpdateAttendanceFn func(ctx context.Context, name string, attendance *float64) (*domain.Student, error)
}

func (m *MockStudentService) ListStudents(ctx context.Context) ([]*domain.Student, error) {
	if m.ListStudentsFn != nil {
		return m.ListStudentsFn(ctx)
	}
	return []*domain.Student{}, nil
}

func (m *MockStudentService) AddStudent(ctx context.Context, name string) (*domain.Student, error) {
	if m.AddStudentFn != nil {
		return m.AddStudentFn(ctx, name)
	}
	return domain.NewStudent(name)
}

func (m *MockStudentService) GetStudent(ctx context.Context, name string) (*domain.Student, error) {
	if m.GetStudentFn != nil {
		return m.GetStudentFn(ctx, name)
	}
	return domain.NewStudent(name)
}

func (m *MockStudentService) RemoveStudent(ctx context.Context, name string) error {
	if m.RemoveStudentFn != nil {
		return m.RemoveStudentFn(ctx, name)
	}
	return nil
}

func (m *MockStudentService) UpdateGrades(ctx context.Context, name string, grades []float64) (*domain.Student, error) {
	if m.UpdateGradesFn != nil {
		return m.UpdateGradesFn(ctx, name, grades)
	}
	return &domain.Student{Name: name, Grades: grades}, nil
}

func (m *MockStudentService) UpdateAttendance(ctx context.Context, name string, attendance *float64) (*domain.Student, error) {
	if m.UpdateAttendanceFn != nil {
		return m.UpdateAttendanceFn(ctx, name, attendance)
	}
	return &domain.Student{Name: name, Grades: make([]float64, domain.SubjectCount), Attendance: *attendance}, nil
}

// MockStatsService implements service.StatsService with overridable functions.
type MockStatsService struct {
	Threshold        float64
	ClassAveragesFn  func(ctx context.Context) (*stats.ClassAverages, error)
	AboveAverageFn   func(ctx context.Context) ([]stats.Ranked, float64, error)
	LowAttendanceFn  func(ctx context.Context) ([]*domain.Student, error)
	NeedsAttentionFn func(ctx context.Context) ([]stats.Flagged, float64, error)
	FullReportFn     func(ctx context.Context) (*stats.Report, error)
}

func (m *MockStatsService) AttendanceThreshold() float64 {
	return m.Threshold
}

func (m *MockStatsService) ClassAverages(ctx context.Context) (*stats.ClassAverages, error) {
	if m.ClassAveragesFn != nil {
		return m.ClassAveragesFn(ctx)
	}
	return nil, domain.ErrEmptyClass
}

func (m *MockStatsService) AboveAverage(ctx context.Context) ([]stats.Ranked, float64, error) {
	if m.AboveAverageFn != nil {
		return m.AboveAverageFn(ctx)
	}
	return nil, 0, domain.ErrEmptyClass
}

func (m *MockStatsService) LowAttendance(ctx context.Context) ([]*domain.Student, error) {
	if m.LowAttendanceFn != nil {
		return m.LowAttendanceFn(ctx)
	}
	return nil, domain.ErrEmptyClass
}

func (m *MockStatsService) NeedsAttention(ctx context.Context) ([]stats.Flagged, float64, error) {
	if m.NeedsAttentionFn != nil {
		return m.NeedsAttentionFn(ctx)
	}
	return nil, 0, domain.ErrEmptyClass
}

func (m *MockStatsService) FullReport(ctx context.Context) (*stats.Report, error) {
	if m.FullReportFn != nil {
		return m.FullReportFn(ctx)
	}
	return nil, domain.ErrEmptyClass
}
