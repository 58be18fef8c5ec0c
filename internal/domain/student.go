package domain

import (
	"math"
	"strings"
)

const (
	// SubjectCount is the number of subjects every student is graded in.
	SubjectCount = 5

	// MinGrade and MaxGrade bound every individual grade.
	MinGrade = 0.0
	MaxGrade = 10.0

	// MinAttendance and MaxAttendance bound the attendance percentage.
	MinAttendance = 0.0
	MaxAttendance = 100.0
)

// User-facing validation messages.
const (
	MsgNameRequired       = "Nome é obrigatório"
	MsgGradeCount         = "Devem ser fornecidas exatamente 5 notas"
	MsgGradeRange         = "Notas devem estar entre 0 e 10"
	MsgAttendanceRequired = "Frequência é obrigatória"
	MsgAttendanceRange    = "Frequência deve estar entre 0 e 100"
)

// Student is one student's record: a fixed-size list of grades and an
// attendance percentage, keyed by a unique name.
type Student struct {
	Name       string
	Grades     []float64
	Attendance float64

	// AttendanceRecorded is false until attendance is first set.
	AttendanceRecorded bool
}

// NewStudent creates a Student with five zero grades and zero attendance.
// Returns a ValidationError if name is empty.
func NewStudent(name string) (*Student, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	return &Student{
		Name:   name,
		Grades: make([]float64, SubjectCount),
	}, nil
}

// Average returns the arithmetic mean of the student's grades.
// It is computed on every call since grades can change between reads.
func (s *Student) Average() float64 {
	if len(s.Grades) == 0 {
		return 0
	}

	var sum float64
	for _, g := range s.Grades {
		sum += g
	}
	return sum / float64(len(s.Grades))
}

// Clone returns a deep copy of the student so callers never alias stored state.
func (s *Student) Clone() *Student {
	grades := make([]float64, len(s.Grades))
	copy(grades, s.Grades)

	return &Student{
		Name:               s.Name,
		Grades:             grades,
		Attendance:         s.Attendance,
		AttendanceRecorded: s.AttendanceRecorded,
	}
}

// Validate checks every invariant of the record.
func (s *Student) Validate() error {
	if err := ValidateName(s.Name); err != nil {
		return err
	}
	if err := ValidateGrades(s.Grades); err != nil {
		return err
	}
	return ValidateAttendance(&s.Attendance)
}

// ValidateName rejects empty or whitespace-only names.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return NewValidationError("nome", MsgNameRequired, nil)
	}
	return nil
}

// ValidateGrades checks that grades holds exactly SubjectCount finite values in [MinGrade, MaxGrade].
func ValidateGrades(grades []float64) error {
	if len(grades) != SubjectCount {
		return NewValidationError("notas", MsgGradeCount, nil)
	}

	for _, g := range grades {
		if math.IsNaN(g) || g < MinGrade || g > MaxGrade {
			return NewValidationError("notas", MsgGradeRange, nil)
		}
	}
	return nil
}

// ValidateAttendance checks that attendance is present and within [MinAttendance, MaxAttendance].
func ValidateAttendance(attendance *float64) error {
	if attendance == nil {
		return NewValidationError("frequencia", MsgAttendanceRequired, nil)
	}

	v := *attendance
	if math.IsNaN(v) || v < MinAttendance || v > MaxAttendance {
		return NewValidationError("frequencia", MsgAttendanceRange, nil)
	}
	return nil
}
