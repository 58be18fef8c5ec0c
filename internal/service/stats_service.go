package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/gradebook/internal/domain"
	"github.com/phrazzld/gradebook/internal/domain/stats"
	"github.com/phrazzld/gradebook/internal/store"
)

// StatsService computes class statistics over a consistent snapshot of the store
type StatsService interface {
	// AttendanceThreshold returns the threshold used for attendance flags
	AttendanceThreshold() float64

	// ClassAverages returns per-subject averages and their mean
	ClassAverages(ctx context.Context) (*stats.ClassAverages, error)

	// AboveAverage returns students above the class mean and the unrounded class mean
	AboveAverage(ctx context.Context) ([]stats.Ranked, float64, error)

	// LowAttendance returns students below the attendance threshold
	LowAttendance(ctx context.Context) ([]*domain.Student, error)

	// NeedsAttention returns flagged students and the unrounded class mean
	NeedsAttention(ctx context.Context) ([]stats.Flagged, float64, error)

	// FullReport returns the consolidated class report
	FullReport(ctx context.Context) (*stats.Report, error)
}

// statsServiceImpl implements the StatsService interface
type statsServiceImpl struct {
	students store.StudentStore
	engine   stats.Service
	logger   *slog.Logger
}

// NewStatsService creates a new StatsService
func NewStatsService(
	students store.StudentStore,
	engine stats.Service,
	logger *slog.Logger,
) (StatsService, error) {
	if students == nil {
		return nil, fmt.Errorf("student store cannot be nil")
	}
	if engine == nil {
		return nil, fmt.Errorf("stats engine cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &statsServiceImpl{
		students: students,
		engine:   engine,
		logger:   logger.With("component", "stats_service"),
	}, nil
}

// snapshot copies the current records so one computation sees one consistent class.
func (s *statsServiceImpl) snapshot(ctx context.Context) ([]*domain.Student, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot students: %w", err)
	}
	return students, nil
}

func (s *statsServiceImpl) AttendanceThreshold() float64 {
	return s.engine.Params().AttendanceThreshold
}

func (s *statsServiceImpl) ClassAverages(ctx context.Context) (*stats.ClassAverages, error) {
	students, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	averages, err := s.engine.ClassAverages(students)
	if err != nil {
		logFailure(s.logger, "failed to compute class averages", err, "count", len(students))
		return nil, fmt.Errorf("failed to compute class averages: %w", err)
	}

	s.logger.Debug("computed class averages", "count", len(students), "subject_mean", averages.SubjectMean)
	return averages, nil
}

func (s *statsServiceImpl) AboveAverage(ctx context.Context) ([]stats.Ranked, float64, error) {
	students, err := s.snapshot(ctx)
	if err != nil {
		return nil, 0, err
	}

	ranked, mean, err := s.engine.AboveAverage(students)
	if err != nil {
		logFailure(s.logger, "failed to compute above-average students", err, "count", len(students))
		return nil, 0, fmt.Errorf("failed to compute above-average students: %w", err)
	}

	s.logger.Debug("computed above-average students", "count", len(ranked), "class_mean", mean)
	return ranked, mean, nil
}

func (s *statsServiceImpl) LowAttendance(ctx context.Context) ([]*domain.Student, error) {
	students, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	below, err := s.engine.BelowAttendance(students)
	if err != nil {
		logFailure(s.logger, "failed to compute low-attendance students", err, "count", len(students))
		return nil, fmt.Errorf("failed to compute low-attendance students: %w", err)
	}

	s.logger.Debug("computed low-attendance students", "count", len(below))
	return below, nil
}

func (s *statsServiceImpl) NeedsAttention(ctx context.Context) ([]stats.Flagged, float64, error) {
	students, err := s.snapshot(ctx)
	if err != nil {
		return nil, 0, err
	}

	flagged, mean, err := s.engine.NeedsAttention(students)
	if err != nil {
		logFailure(s.logger, "failed to compute students needing attention", err, "count", len(students))
		return nil, 0, fmt.Errorf("failed to compute students needing attention: %w", err)
	}

	s.logger.Debug("computed students needing attention", "count", len(flagged), "class_mean", mean)
	return flagged, mean, nil
}

func (s *statsServiceImpl) FullReport(ctx context.Context) (*stats.Report, error) {
	students, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	report, err := s.engine.FullReport(students)
	if err != nil {
		logFailure(s.logger, "failed to build full report", err, "count", len(students))
		return nil, fmt.Errorf("failed to build full report: %w", err)
	}

	s.logger.Debug("built full report", "total", report.Total)
	return report, nil
}
