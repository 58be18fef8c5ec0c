package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/gradebook/internal/api/shared"
	"github.com/phrazzld/gradebook/internal/domain"
)

// getPathName extracts the student name from the URL path.
// chi matches against the escaped path when one is present, so the
// parameter is unescaped in that case only.
func getPathName(r *http.Request) (string, error) {
	name := chi.URLParam(r, "nome")
	if r.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(name)
		if err != nil {
			return "", domain.NewValidationError("nome", domain.MsgNameRequired, err)
		}
		name = unescaped
	}

	if err := domain.ValidateName(name); err != nil {
		return "", err
	}
	return name, nil
}

// decodeAndValidate decodes the JSON body into req and validates it.
// Failures come back as domain ValidationErrors with client-facing messages.
func decodeAndValidate(r *http.Request, req interface{}) error {
	if err := shared.DecodeJSON(r, req); err != nil {
		return requestError(err)
	}
	if err := shared.ValidateRequest(req); err != nil {
		return requestError(err)
	}
	return nil
}
