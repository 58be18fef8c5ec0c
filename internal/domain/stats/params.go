package stats

import (
	"fmt"
	"math"

	"github.com/phrazzld/gradebook/internal/domain"
)

const (
	// DefaultAttendanceThreshold is the attendance percentage below which a student is flagged.
	DefaultAttendanceThreshold = 75.0

	// Precision is the number of decimal places used for presented values.
	Precision = 2
)

// Params defines the configurable parameters of the statistics engine
type Params struct {
	SubjectCount        int
	AttendanceThreshold float64
}

// ParamsConfig allows overriding the default parameters when creating a new Params instance
type ParamsConfig struct {
	// AttendanceThreshold overrides the default when non-nil. Zero is a valid threshold.
	AttendanceThreshold *float64
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		SubjectCount:        domain.SubjectCount,
		AttendanceThreshold: DefaultAttendanceThreshold,
	}
}

// NewParams creates Params from cfg, falling back to defaults for unset fields.
// Returns an error if the threshold lies outside the valid attendance range.
func NewParams(cfg ParamsConfig) (*Params, error) {
	params := NewDefaultParams()

	if cfg.AttendanceThreshold != nil {
		threshold := *cfg.AttendanceThreshold
		if math.IsNaN(threshold) || threshold < domain.MinAttendance || threshold > domain.MaxAttendance {
			return nil, fmt.Errorf("attendance threshold %v out of range [%v, %v]",
				threshold, domain.MinAttendance, domain.MaxAttendance)
		}
		params.AttendanceThreshold = threshold
	}

	return params, nil
}
