package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/gradebook/internal/api/shared"
	"github.com/phrazzld/gradebook/internal/platform/logger"
	"github.com/phrazzld/gradebook/internal/service"
)

// StudentHandler handles student record HTTP requests
type StudentHandler struct {
	students service.StudentService
	logger   *slog.Logger
}

// NewStudentHandler creates a new StudentHandler
func NewStudentHandler(students service.StudentService, logger *slog.Logger) *StudentHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for StudentHandler")
	}

	return &StudentHandler{
		students: students,
		logger:   logger.With(slog.String("component", "student_handler")),
	}
}

// ListStudents handles GET /alunos
func (h *StudentHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.students.ListStudents(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, studentsToResponse(students))
}

// CreateStudent handles POST /alunos
func (h *StudentHandler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateStudentRequest
	if err := decodeAndValidate(r, &req); err != nil {
		log.Debug("invalid create student request", slog.String("error", err.Error()))
		respondWithServiceError(w, r, err)
		return
	}

	student, err := h.students.AddStudent(r.Context(), req.Name)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	log.Debug("student created", slog.String("name", student.Name))
	shared.RespondWithJSON(w, r, http.StatusCreated, studentToResponse(student))
}

// GetStudent handles GET /alunos/{nome}
func (h *StudentHandler) GetStudent(w http.ResponseWriter, r *http.Request) {
	name, err := getPathName(r)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	student, err := h.students.GetStudent(r.Context(), name)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, studentToResponse(student))
}

// DeleteStudent handles DELETE /alunos/{nome}
func (h *StudentHandler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	name, err := getPathName(r)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	if err := h.students.RemoveStudent(r.Context(), name); err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Message: msgStudentRemoved})
}

// UpdateGrades handles PUT /alunos/{nome}/notas
func (h *StudentHandler) UpdateGrades(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	name, err := getPathName(r)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	var req UpdateGradesRequest
	if err := decodeAndValidate(r, &req); err != nil {
		log.Debug("invalid grades request", slog.String("name", name), slog.String("error", err.Error()))
		respondWithServiceError(w, r, err)
		return
	}

	student, err := h.students.UpdateGrades(r.Context(), name, req.Grades)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, studentToResponse(student))
}

// UpdateAttendance handles PUT /alunos/{nome}/frequencia
func (h *StudentHandler) UpdateAttendance(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	name, err := getPathName(r)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	var req UpdateAttendanceRequest
	if err := decodeAndValidate(r, &req); err != nil {
		log.Debug("invalid attendance request", slog.String("name", name), slog.String("error", err.Error()))
		respondWithServiceError(w, r, err)
		return
	}

	student, err := h.students.UpdateAttendance(r.Context(), name, req.Attendance)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, studentToResponse(student))
}
