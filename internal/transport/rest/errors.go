package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
	"github.com/heartmarshall/ideabank-backend/pkg/ctxutil"
)

// handleError maps a service error onto the HTTP error envelope. Only
// unexpected errors are logged.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError

	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, "validation", ve.Error(), ve.Errors)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "validation", err.Error(), nil)
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized", "unauthorized", nil)
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden", "forbidden", nil)
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error(), nil)
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAlreadyExists):
		reason := conflictReason(err)
		writeError(w, http.StatusConflict, reason, conflictMessage(reason), nil)
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			slog.String("path", r.URL.Path),
		)
		writeError(w, http.StatusInternalServerError, "internal", "internal server error", nil)
	}
}
