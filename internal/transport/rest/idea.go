package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
	"github.com/heartmarshall/ideabank-backend/internal/service/idea"
)

type ideaService interface {
	Submit(ctx context.Context, input idea.SubmitInput) (*domain.Idea, error)
	ListByMember(ctx context.Context, email string) ([]domain.IdeaView, error)
	ListPublished(ctx context.Context) ([]domain.IdeaView, error)
	Publish(ctx context.Context, ideaID int64) (*domain.Idea, error)
	ApproveProject(ctx context.Context, input idea.ApproveInput) (*domain.Idea, error)
}

// IdeaHandler serves idea lifecycle endpoints.
type IdeaHandler struct {
	svc ideaService
	log *slog.Logger
}

// NewIdeaHandler creates an IdeaHandler.
func NewIdeaHandler(svc ideaService, logger *slog.Logger) *IdeaHandler {
	return &IdeaHandler{svc: svc, log: logger.With("handler", "idea")}
}

// submitIdeaRequest carries a client-supplied status that is ignored: new
// ideas always start SUBMITTED.
type submitIdeaRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CategoryID  int64  `json:"catId"`
	ExistingURL string `json:"existUrl"`
	Status      string `json:"status"`
	Email       string `json:"email"`
}

type ideaIDRequest struct {
	IdeaID int64 `json:"ideaId"`
}

type approveRequest struct {
	IdeaID      int64  `json:"ideaId"`
	ProjectName string `json:"projectName"`
}

// Submit handles POST /idea.
func (h *IdeaHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitIdeaRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	created, err := h.svc.Submit(r.Context(), idea.SubmitInput{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		ExistingURL: req.ExistingURL,
		AuthorEmail: req.Email,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toIdeaResponse(created))
}

// ListByMember handles GET /idea?email=.
func (h *IdeaHandler) ListByMember(w http.ResponseWriter, r *http.Request) {
	email, err := queryString(r, "email")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	views, err := h.svc.ListByMember(r.Context(), email)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toIdeaViewResponses(views))
}

// ListPublished handles GET /idea-publish.
func (h *IdeaHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.ListPublished(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toIdeaViewResponses(views))
}

// Publish handles POST /idea-publish.
func (h *IdeaHandler) Publish(w http.ResponseWriter, r *http.Request) {
	var req ideaIDRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	published, err := h.svc.Publish(r.Context(), req.IdeaID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toIdeaResponse(published))
}

// Approve handles POST /approve-project.
func (h *IdeaHandler) Approve(w http.ResponseWriter, r *http.Request) {
	var req approveRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	approved, err := h.svc.ApproveProject(r.Context(), idea.ApproveInput{
		IdeaID:      req.IdeaID,
		ProjectName: req.ProjectName,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toIdeaResponse(approved))
}
