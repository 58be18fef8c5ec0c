package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/gradebook/internal/api/shared"
)

// Version is reported by the API info endpoint.
const Version = "1.0"

var endpointIndex = map[string]string{
	"GET /":                                     "Informações da API",
	"GET /alunos":                               "Lista todos os alunos",
	"POST /alunos":                              "Adiciona um novo aluno",
	"GET /alunos/<nome>":                        "Obtém informações de um aluno",
	"DELETE /alunos/<nome>":                     "Remove um aluno",
	"PUT /alunos/<nome>/notas":                  "Atualiza notas de um aluno",
	"PUT /alunos/<nome>/frequencia":             "Atualiza frequência de um aluno",
	"GET /estatisticas/media-turma":             "Média da turma por disciplina",
	"GET /estatisticas/alunos-acima-media":      "Alunos acima da média",
	"GET /estatisticas/alunos-baixa-frequencia": "Alunos com frequência abaixo do limite",
	"GET /estatisticas/alunos-atencao":          "Alunos que precisam de atenção",
	"GET /relatorio-completo":                   "Relatório completo da turma",
}

// Info handles GET / with a description of the API and its endpoints.
func Info(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, InfoResponse{
		Message:   "Sistema de Gerenciamento de Notas e Frequência",
		Version:   Version,
		Endpoints: endpointIndex,
	})
}

// RegisterRoutes mounts every gradebook endpoint on r.
func RegisterRoutes(r chi.Router, students *StudentHandler, statistics *StatsHandler) {
	r.Get("/", Info)

	r.Route("/alunos", func(r chi.Router) {
		r.Get("/", students.ListStudents)
		r.Post("/", students.CreateStudent)
		r.Get("/{nome}", students.GetStudent)
		r.Delete("/{nome}", students.DeleteStudent)
		r.Put("/{nome}/notas", students.UpdateGrades)
		r.Put("/{nome}/frequencia", students.UpdateAttendance)
	})

	r.Route("/estatisticas", func(r chi.Router) {
		r.Get("/media-turma", statistics.ClassAverages)
		r.Get("/alunos-acima-media", statistics.AboveAverage)
		r.Get("/alunos-baixa-frequencia", statistics.LowAttendance)
		r.Get("/alunos-atencao", statistics.NeedsAttention)
	})

	r.Get("/relatorio-completo", statistics.FullReport)
}
