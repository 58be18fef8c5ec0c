package api

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/gradebook/internal/api/shared"
	"github.com/phrazzld/gradebook/internal/domain/stats"
	"github.com/phrazzld/gradebook/internal/platform/memory"
	"github.com/phrazzld/gradebook/internal/service"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))
}

// newTestRouter wires real services over an empty in-memory store.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	log := discardLogger()
	st := memory.NewStudentStore(log)

	students, err := service.NewStudentService(st, log)
	require.NoError(t, err)
	statistics, err := service.NewStatsService(st, stats.NewDefaultService(), log)
	require.NoError(t, err)

	return newRouterWith(students, statistics)
}

func newRouterWith(students service.StudentService, statistics service.StatsService) http.Handler {
	log := discardLogger()
	r := chi.NewRouter()
	RegisterRoutes(r, NewStudentHandler(students, log), NewStatsHandler(statistics, log))
	return r
}

// doRequest performs a request against h. A non-string body is JSON-encoded.
func doRequest(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[shared.ErrorResponse](t, w).Error
}

// seedStudent adds a student through the API and sets grades and attendance.
func seedStudent(t *testing.T, h http.Handler, name string, grades []float64, attendance float64) {
	t.Helper()

	w := doRequest(t, h, http.MethodPost, "/alunos", CreateStudentRequest{Name: name})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doRequest(t, h, http.MethodPut, "/alunos/"+name+"/notas", UpdateGradesRequest{Grades: grades})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doRequest(t, h, http.MethodPut, "/alunos/"+name+"/frequencia", UpdateAttendanceRequest{Attendance: &attendance})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}
