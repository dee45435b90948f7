package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
	"github.com/heartmarshall/ideabank-backend/internal/service/vote"
)

type voteService interface {
	Cast(ctx context.Context, input vote.CastInput) (*domain.Vote, error)
	Tally(ctx context.Context, ideaID int64) (int, error)
}

// VoteHandler serves vote ledger endpoints.
type VoteHandler struct {
	svc voteService
	log *slog.Logger
}

// NewVoteHandler creates a VoteHandler.
func NewVoteHandler(svc voteService, logger *slog.Logger) *VoteHandler {
	return &VoteHandler{svc: svc, log: logger.With("handler", "vote")}
}

type castVoteRequest struct {
	IdeaID int64  `json:"ideaId"`
	Email  string `json:"email"`
}

// Cast handles POST /vote.
func (h *VoteHandler) Cast(w http.ResponseWriter, r *http.Request) {
	var req castVoteRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	v, err := h.svc.Cast(r.Context(), vote.CastInput{IdeaID: req.IdeaID, MemberEmail: req.Email})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toVoteResponse(v))
}

// Tally handles GET /vote?ideaId=.
func (h *VoteHandler) Tally(w http.ResponseWriter, r *http.Request) {
	ideaID, err := queryInt64(r, "ideaId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	n, err := h.svc.Tally(r.Context(), ideaID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tallyResponse{IdeaID: ideaID, Votes: n})
}
