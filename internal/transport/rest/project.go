package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
	"github.com/heartmarshall/ideabank-backend/internal/service/project"
)

type projectService interface {
	ListAll(ctx context.Context) ([]domain.Project, error)
	CreateStep(ctx context.Context, input project.CreateStepInput) (*domain.ProjectStep, error)
	ListStepsGroupedByContribution(ctx context.Context) ([]domain.ContributionSteps, error)
	ListByManager(ctx context.Context, managerEmail string) ([]domain.Project, error)
}

// ProjectHandler serves project graph endpoints.
type ProjectHandler struct {
	svc projectService
	log *slog.Logger
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(svc projectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{svc: svc, log: logger.With("handler", "project")}
}

type createStepRequest struct {
	ProjectID int64  `json:"project"`
	OfficeID  int64  `json:"office"`
	Title     string `json:"title"`
}

// List handles GET /load-project.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.ListAll(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectResponses(projects))
}

// CreateStep handles POST /create-step.
func (h *ProjectHandler) CreateStep(w http.ResponseWriter, r *http.Request) {
	var req createStepRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	step, err := h.svc.CreateStep(r.Context(), project.CreateStepInput{
		ProjectID: req.ProjectID,
		OfficeID:  req.OfficeID,
		Title:     req.Title,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toStepResponse(step))
}

// Steps handles GET /load-project-steps.
func (h *ProjectHandler) Steps(w http.ResponseWriter, r *http.Request) {
	groups, err := h.svc.ListStepsGroupedByContribution(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toContributionStepsResponses(groups))
}

// ListByManager handles GET /load-project-by-manager?email=.
func (h *ProjectHandler) ListByManager(w http.ResponseWriter, r *http.Request) {
	email, err := queryString(r, "email")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	projects, err := h.svc.ListByManager(r.Context(), email)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectResponses(projects))
}
