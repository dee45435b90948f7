package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
	"github.com/heartmarshall/ideabank-backend/internal/service/thread"
)

type threadService interface {
	Add(ctx context.Context, input thread.AddInput) (*domain.Comment, error)
	LoadThread(ctx context.Context, ideaID int64) ([]*domain.CommentNode, error)
}

// CommentHandler serves comment thread endpoints.
type CommentHandler struct {
	svc threadService
	log *slog.Logger
}

// NewCommentHandler creates a CommentHandler.
func NewCommentHandler(svc threadService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{svc: svc, log: logger.With("handler", "comment")}
}

type addCommentRequest struct {
	IdeaID  int64  `json:"ideaId"`
	Email   string `json:"email"`
	ReplyID *int64 `json:"replyId"`
	Comment string `json:"comment"`
}

// Add handles POST /comment.
func (h *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.Add(r.Context(), thread.AddInput{
		IdeaID:          req.IdeaID,
		AuthorEmail:     req.Email,
		Text:            req.Comment,
		ParentCommentID: req.ReplyID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCommentResponse(c))
}

// Thread handles GET /comment?ideaId=.
func (h *CommentHandler) Thread(w http.ResponseWriter, r *http.Request) {
	ideaID, err := queryInt64(r, "ideaId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	roots, err := h.svc.LoadThread(r.Context(), ideaID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCommentTree(roots))
}
