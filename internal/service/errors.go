package service

import (
	"errors"
	"log/slog"

	"github.com/phrazzld/gradebook/internal/domain"
	"github.com/phrazzld/gradebook/internal/store"
)

// isExpected reports whether err is a client-side condition rather than a failure.
// Expected errors are logged at debug level; everything else at error level.
func isExpected(err error) bool {
	return errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrEmptyClass) ||
		store.IsNotFoundError(err) ||
		store.IsDuplicateError(err)
}

func logFailure(logger *slog.Logger, msg string, err error, attrs ...any) {
	attrs = append(attrs, "error", err)
	if isExpected(err) {
		logger.Debug(msg, attrs...)
		return
	}
	logger.Error(msg, attrs...)
}
