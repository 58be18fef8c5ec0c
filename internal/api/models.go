package api

import (
	"github.com/phrazzld/gradebook/internal/domain"
	"github.com/phrazzld/gradebook/internal/domain/stats"
)

// JSON field names follow the existing web client.

// CreateStudentRequest defines the payload for registering a student.
type CreateStudentRequest struct {
	Name string `json:"nome" validate:"required"`
}

// UpdateGradesRequest defines the payload for replacing a student's grades.
type UpdateGradesRequest struct {
	Grades []float64 `json:"notas" validate:"required,len=5,dive,gte=0,lte=10"`
}

// UpdateAttendanceRequest defines the payload for replacing a student's attendance.
// Attendance is a pointer so that a missing value is distinguishable from zero.
type UpdateAttendanceRequest struct {
	Attendance *float64 `json:"frequencia" validate:"required,gte=0,lte=100"`
}

// StudentResponse is the representation of a student record.
type StudentResponse struct {
	Name       string    `json:"nome"`
	Grades     []float64 `json:"notas"`
	Attendance float64   `json:"frequencia"`
	Average    float64   `json:"media"`
}

// RankedStudentResponse is a student above the class mean.
type RankedStudentResponse struct {
	StudentResponse
	Deviation float64 `json:"diferenca_media"`
}

// FlaggedStudentResponse is a student who needs attention, with the reasons why.
type FlaggedStudentResponse struct {
	StudentResponse
	Reasons []string `json:"motivos"`
}

// ClassAveragesResponse is returned by GET /estatisticas/media-turma.
type ClassAveragesResponse struct {
	PerSubject  []float64 `json:"medias_por_disciplina"`
	SubjectMean float64   `json:"media_geral"`
}

// AboveAverageResponse is returned by GET /estatisticas/alunos-acima-media.
type AboveAverageResponse struct {
	ClassMean float64                 `json:"media_turma"`
	Students  []RankedStudentResponse `json:"alunos_acima_media"`
	Count     int                     `json:"quantidade"`
}

// LowAttendanceResponse is returned by GET /estatisticas/alunos-baixa-frequencia.
type LowAttendanceResponse struct {
	Threshold float64           `json:"limite_frequencia"`
	Students  []StudentResponse `json:"alunos_baixa_frequencia"`
	Count     int               `json:"quantidade"`
}

// NeedsAttentionResponse is returned by GET /estatisticas/alunos-atencao.
type NeedsAttentionResponse struct {
	ClassMean float64                  `json:"media_turma"`
	Students  []FlaggedStudentResponse `json:"alunos_atencao_especial"`
	Count     int                      `json:"quantidade"`
}

// ReportResponse is returned by GET /relatorio-completo.
type ReportResponse struct {
	Total          int               `json:"total_alunos"`
	PerSubject     []float64         `json:"medias_por_disciplina"`
	ClassMean      float64           `json:"media_geral_turma"`
	MeanAttendance float64           `json:"frequencia_media_turma"`
	Students       []StudentResponse `json:"alunos"`
}

// InfoResponse is returned by GET /.
type InfoResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"versao"`
	Endpoints map[string]string `json:"endpoints"`
}

func studentToResponse(s *domain.Student) StudentResponse {
	grades := make([]float64, len(s.Grades))
	copy(grades, s.Grades)

	return StudentResponse{
		Name:       s.Name,
		Grades:     grades,
		Attendance: s.Attendance,
		Average:    stats.Round(s.Average(), stats.Precision),
	}
}

func studentsToResponse(students []*domain.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, studentToResponse(s))
	}
	return out
}
