package stats

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/phrazzld/gradebook/internal/domain"
)

// Ranked pairs a student with the distance between their average and the class mean.
type Ranked struct {
	Student   *domain.Student
	Deviation float64 // rounded to Precision
}

// Flagged pairs a student with the human-readable reasons they need attention,
// attendance first, then average.
type Flagged struct {
	Student *domain.Student
	Reasons []string
}

// Report is the consolidated view of a class.
type Report struct {
	Total              int
	PerSubjectAverages []float64
	ClassMean          float64
	MeanAttendance     float64
	Students           []*domain.Student
}

// Round rounds the exact binary value of v to the given number of decimal
// places. Exact ties go to the even digit, so Round(0.125, 2) is 0.12.
func Round(v float64, places int) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return rounded
}

// exactMean sums values without intermediate rounding and converts the
// quotient to the nearest float64 once.
func exactMean(values []float64) float64 {
	sum := new(big.Rat)
	for _, v := range values {
		var r big.Rat
		if r.SetFloat64(v) == nil {
			continue
		}
		sum.Add(sum, &r)
	}

	mean, _ := sum.Quo(sum, new(big.Rat).SetInt64(int64(len(values)))).Float64()
	return mean
}

// Average returns the arithmetic mean of a student's grades.
func Average(s *domain.Student) float64 {
	return s.Average()
}

// PerSubjectAverages returns, for each of the subjects subject indices, the mean
// grade across all students, rounded to Precision.
func PerSubjectAverages(students []*domain.Student, subjects int) ([]float64, error) {
	if len(students) == 0 {
		return nil, domain.ErrEmptyClass
	}

	averages := make([]float64, subjects)
	for i := 0; i < subjects; i++ {
		var sum float64
		var n int
		for _, s := range students {
			if i < len(s.Grades) {
				sum += s.Grades[i]
				n++
			}
		}
		if n > 0 {
			averages[i] = Round(sum/float64(n), Precision)
		}
	}
	return averages, nil
}

// SubjectMean returns the mean of the per-subject averages, rounded to Precision.
// This is a macro-average over subjects; see ClassMean for the macro-average over students.
func SubjectMean(students []*domain.Student, subjects int) (float64, error) {
	averages, err := PerSubjectAverages(students, subjects)
	if err != nil {
		return 0, err
	}
	if len(averages) == 0 {
		return 0, nil
	}

	var sum float64
	for _, a := range averages {
		sum += a
	}
	return Round(sum/float64(len(averages)), Precision), nil
}

// ClassMean returns the mean of every student's personal average, unrounded.
// The mean is exact up to a single final rounding, so a student whose average
// equals the class mean compares equal to it.
func ClassMean(students []*domain.Student) (float64, error) {
	if len(students) == 0 {
		return 0, domain.ErrEmptyClass
	}

	averages := make([]float64, len(students))
	for i, s := range students {
		averages[i] = s.Average()
	}
	return exactMean(averages), nil
}

// MeanAttendance returns the mean attendance across all students, unrounded.
func MeanAttendance(students []*domain.Student) (float64, error) {
	if len(students) == 0 {
		return 0, domain.ErrEmptyClass
	}

	attendance := make([]float64, len(students))
	for i, s := range students {
		attendance[i] = s.Attendance
	}
	return exactMean(attendance), nil
}

// AboveAverage returns the students whose average is strictly greater than the
// class mean, in snapshot order, together with the unrounded class mean.
func AboveAverage(students []*domain.Student) ([]Ranked, float64, error) {
	mean, err := ClassMean(students)
	if err != nil {
		return nil, 0, err
	}

	ranked := make([]Ranked, 0, len(students))
	for _, s := range students {
		avg := s.Average()
		if avg > mean {
			ranked = append(ranked, Ranked{
				Student:   s,
				Deviation: Round(avg-mean, Precision),
			})
		}
	}
	return ranked, mean, nil
}

// BelowAttendanceThreshold returns the students whose attendance is strictly below threshold.
func BelowAttendanceThreshold(students []*domain.Student, threshold float64) ([]*domain.Student, error) {
	if len(students) == 0 {
		return nil, domain.ErrEmptyClass
	}

	below := make([]*domain.Student, 0, len(students))
	for _, s := range students {
		if s.Attendance < threshold {
			below = append(below, s)
		}
	}
	return below, nil
}

// NeedsAttention returns every student with attendance below threshold or an
// average below the class mean, with one reason per triggered condition.
// The unrounded class mean is returned alongside.
func NeedsAttention(students []*domain.Student, threshold float64) ([]Flagged, float64, error) {
	mean, err := ClassMean(students)
	if err != nil {
		return nil, 0, err
	}

	flagged := make([]Flagged, 0, len(students))
	for _, s := range students {
		var reasons []string
		if s.Attendance < threshold {
			reasons = append(reasons, LowAttendanceReason(s))
		}
		if avg := s.Average(); avg < mean {
			reasons = append(reasons, BelowMeanReason(avg))
		}

		if len(reasons) > 0 {
			flagged = append(flagged, Flagged{Student: s, Reasons: reasons})
		}
	}
	return flagged, mean, nil
}

// LowAttendanceReason formats the attendance reason, e.g. "Frequência baixa: 60%".
// Attendance that was never recorded keeps its initial form, "0.0%".
func LowAttendanceReason(s *domain.Student) string {
	if !s.AttendanceRecorded {
		return fmt.Sprintf("Frequência baixa: %s%%", strconv.FormatFloat(s.Attendance, 'f', 1, 64))
	}
	return fmt.Sprintf("Frequência baixa: %s%%", strconv.FormatFloat(s.Attendance, 'f', -1, 64))
}

// BelowMeanReason formats the average reason, e.g. "Média abaixo da turma: 4.00".
func BelowMeanReason(average float64) string {
	return fmt.Sprintf("Média abaixo da turma: %.2f", average)
}

// FullReport bundles the class statistics into a single Report.
func FullReport(students []*domain.Student, subjects int) (*Report, error) {
	perSubject, err := PerSubjectAverages(students, subjects)
	if err != nil {
		return nil, err
	}

	mean, err := ClassMean(students)
	if err != nil {
		return nil, err
	}

	attendance, err := MeanAttendance(students)
	if err != nil {
		return nil, err
	}

	return &Report{
		Total:              len(students),
		PerSubjectAverages: perSubject,
		ClassMean:          Round(mean, Precision),
		MeanAttendance:     Round(attendance, Precision),
		Students:           students,
	}, nil
}
