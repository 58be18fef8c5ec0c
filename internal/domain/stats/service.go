package stats

import (
	"errors"

	"github.com/phrazzld/gradebook/internal/domain"
)

// ErrNilParams is returned when a service is built without parameters.
var ErrNilParams = errors.New("stats params cannot be nil")

// ClassAverages holds the per-subject averages and their mean.
type ClassAverages struct {
	PerSubject  []float64
	SubjectMean float64
}

// Service defines the interface for statistics operations bound to a set of Params
type Service interface {
	// Params returns a copy of the parameters the service was built with
	Params() Params

	// ClassAverages computes the per-subject averages and their mean
	ClassAverages(students []*domain.Student) (*ClassAverages, error)

	// ClassMean computes the mean of per-student averages
	ClassMean(students []*domain.Student) (float64, error)

	// AboveAverage lists students strictly above the class mean
	AboveAverage(students []*domain.Student) ([]Ranked, float64, error)

	// BelowAttendance lists students strictly below the configured attendance threshold
	BelowAttendance(students []*domain.Student) ([]*domain.Student, error)

	// NeedsAttention lists students flagged for attendance or a below-mean average
	NeedsAttention(students []*domain.Student) ([]Flagged, float64, error)

	// FullReport bundles every class statistic
	FullReport(students []*domain.Student) (*Report, error)
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new statistics service with default parameters
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new statistics service with custom parameters
func NewServiceWithParams(params *Params) (Service, error) {
	if params == nil {
		return nil, ErrNilParams
	}
	return &defaultService{
		params: params,
	}, nil
}

func (s *defaultService) Params() Params {
	return *s.params
}

func (s *defaultService) ClassAverages(students []*domain.Student) (*ClassAverages, error) {
	perSubject, err := PerSubjectAverages(students, s.params.SubjectCount)
	if err != nil {
		return nil, err
	}

	mean, err := SubjectMean(students, s.params.SubjectCount)
	if err != nil {
		return nil, err
	}

	return &ClassAverages{
		PerSubject:  perSubject,
		SubjectMean: mean,
	}, nil
}

func (s *defaultService) ClassMean(students []*domain.Student) (float64, error) {
	return ClassMean(students)
}

func (s *defaultService) AboveAverage(students []*domain.Student) ([]Ranked, float64, error) {
	return AboveAverage(students)
}

func (s *defaultService) BelowAttendance(students []*domain.Student) ([]*domain.Student, error) {
	return BelowAttendanceThreshold(students, s.params.AttendanceThreshold)
}

func (s *defaultService) NeedsAttention(students []*domain.Student) ([]Flagged, float64, error) {
	return NeedsAttention(students, s.params.AttendanceThreshold)
}

func (s *defaultService) FullReport(students []*domain.Student) (*Report, error) {
	return FullReport(students, s.params.SubjectCount)
}
