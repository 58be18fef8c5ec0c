package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/gradebook/internal/api/shared"
	"github.com/phrazzld/gradebook/internal/domain/stats"
	"github.com/phrazzld/gradebook/internal/platform/logger"
	"github.com/phrazzld/gradebook/internal/service"
)

// StatsHandler serves the read-only class statistics endpoints
type StatsHandler struct {
	stats  service.StatsService
	logger *slog.Logger
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(statsService service.StatsService, logger *slog.Logger) *StatsHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for StatsHandler")
	}

	return &StatsHandler{
		stats:  statsService,
		logger: logger.With(slog.String("component", "stats_handler")),
	}
}

func round(v float64) float64 {
	return stats.Round(v, stats.Precision)
}

// ClassAverages handles GET /estatisticas/media-turma
func (h *StatsHandler) ClassAverages(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	averages, err := h.stats.ClassAverages(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	log.Debug("serving class averages", slog.Float64("subject_mean", averages.SubjectMean))

	shared.RespondWithJSON(w, r, http.StatusOK, ClassAveragesResponse{
		PerSubject:  averages.PerSubject,
		SubjectMean: averages.SubjectMean,
	})
}

// AboveAverage handles GET /estatisticas/alunos-acima-media
func (h *StatsHandler) AboveAverage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	ranked, mean, err := h.stats.AboveAverage(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	log.Debug("serving above-average students", slog.Int("count", len(ranked)))

	students := make([]RankedStudentResponse, 0, len(ranked))
	for _, rs := range ranked {
		students = append(students, RankedStudentResponse{
			StudentResponse: studentToResponse(rs.Student),
			Deviation:       rs.Deviation,
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AboveAverageResponse{
		ClassMean: round(mean),
		Students:  students,
		Count:     len(students),
	})
}

// LowAttendance handles GET /estatisticas/alunos-baixa-frequencia
func (h *StatsHandler) LowAttendance(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	below, err := h.stats.LowAttendance(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	log.Debug("serving low-attendance students", slog.Int("count", len(below)))

	students := studentsToResponse(below)
	shared.RespondWithJSON(w, r, http.StatusOK, LowAttendanceResponse{
		Threshold: h.stats.AttendanceThreshold(),
		Students:  students,
		Count:     len(students),
	})
}

// NeedsAttention handles GET /estatisticas/alunos-atencao
func (h *StatsHandler) NeedsAttention(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	flagged, mean, err := h.stats.NeedsAttention(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	log.Debug("serving students needing attention", slog.Int("count", len(flagged)))

	students := make([]FlaggedStudentResponse, 0, len(flagged))
	for _, f := range flagged {
		students = append(students, FlaggedStudentResponse{
			StudentResponse: studentToResponse(f.Student),
			Reasons:         f.Reasons,
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NeedsAttentionResponse{
		ClassMean: round(mean),
		Students:  students,
		Count:     len(students),
	})
}

// FullReport handles GET /relatorio-completo
func (h *StatsHandler) FullReport(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	report, err := h.stats.FullReport(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	log.Debug("serving full report", slog.Int("total", report.Total))

	shared.RespondWithJSON(w, r, http.StatusOK, ReportResponse{
		Total:          report.Total,
		PerSubject:     report.PerSubjectAverages,
		ClassMean:      report.ClassMean,
		MeanAttendance: report.MeanAttendance,
		Students:       studentsToResponse(report.Students),
	})
}
