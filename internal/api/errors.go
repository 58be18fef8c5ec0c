package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/gradebook/internal/api/shared"
	"github.com/phrazzld/gradebook/internal/domain"
	"github.com/phrazzld/gradebook/internal/store"
)

// User-facing error messages.
const (
	msgStudentNotFound = "Aluno não encontrado"
	msgStudentExists   = "Aluno já existe"
	msgEmptyClass      = "Nenhum aluno cadastrado"
	msgInvalidRequest  = "Formato de requisição inválido"
	msgInternal        = "Erro interno do servidor"
	msgStudentRemoved  = "Aluno removido com sucesso"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
//
// Duplicate names and empty-class statistics keep the status codes the web
// client already handles (400 and 404).
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation),
		store.IsDuplicateError(err):
		return http.StatusBadRequest

	case store.IsNotFoundError(err),
		errors.Is(err, domain.ErrEmptyClass):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return msgInternal
	}

	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return vErr.Message
	case errors.Is(err, domain.ErrValidation):
		return msgInvalidRequest
	case store.IsDuplicateError(err):
		return msgStudentExists
	case store.IsNotFoundError(err):
		return msgStudentNotFound
	case errors.Is(err, domain.ErrEmptyClass):
		return msgEmptyClass
	default:
		return msgInternal
	}
}

// requestError converts a JSON decoding or struct validation failure into a
// domain ValidationError carrying the message the client should see.
func requestError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return domain.NewValidationError(fe.Field(), validationMessage(fe.Field(), fe.Tag()), err)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return domain.NewValidationError(typeErr.Field, validationMessage(typeErr.Field, "type"), err)
	}

	return domain.NewValidationError("body", msgInvalidRequest, err)
}

// validationMessage picks the message for a failed field/tag pair.
func validationMessage(field, tag string) string {
	switch {
	case field == "nome":
		return domain.MsgNameRequired
	case field == "notas" && (tag == "required" || tag == "len"):
		return domain.MsgGradeCount
	case strings.HasPrefix(field, "notas"):
		return domain.MsgGradeRange
	case field == "frequencia" && tag == "required":
		return domain.MsgAttendanceRequired
	case field == "frequencia":
		return domain.MsgAttendanceRange
	default:
		return msgInvalidRequest
	}
}

// respondWithServiceError writes the error response for an error returned by a service.
func respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
