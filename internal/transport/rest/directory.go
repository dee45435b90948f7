package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
)

type directoryService interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// DirectoryHandler serves reference data.
type DirectoryHandler struct {
	svc directoryService
	log *slog.Logger
}

// NewDirectoryHandler creates a DirectoryHandler.
func NewDirectoryHandler(svc directoryService, logger *slog.Logger) *DirectoryHandler {
	return &DirectoryHandler{svc: svc, log: logger.With("handler", "directory")}
}

// Categories handles GET /category.
func (h *DirectoryHandler) Categories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.ListCategories(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCategoryResponses(cats))
}
