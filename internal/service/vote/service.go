// Package vote implements the vote ledger: one vote per member per idea.
package vote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
	"github.com/heartmarshall/ideabank-backend/internal/metrics"
)

type voteRepo interface {
	Cast(ctx context.Context, ideaID, memberID int64) (*domain.Vote, error)
	Count(ctx context.Context, ideaID int64) (int, error)
	CountByIdeaIDs(ctx context.Context, ideaIDs []int64) (map[int64]int, error)
}

type memberRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.Member, error)
}

// Service provides vote operations.
type Service struct {
	votes   voteRepo
	members memberRepo
	metrics *metrics.Metrics
	log     *slog.Logger
}

// NewService creates a new Vote service.
func NewService(log *slog.Logger, votes voteRepo, members memberRepo) *Service {
	return &Service{
		votes:   votes,
		members: members,
		log:     log.With("service", "vote"),
	}
}

// SetMetrics enables domain counters.
func (s *Service) SetMetrics(m *metrics.Metrics) {
	s.metrics = m
}

// CastInput holds the parameters for casting a vote.
type CastInput struct {
	IdeaID      int64
	MemberEmail string
}

// Validate checks all fields and collects all errors.
func (i CastInput) Validate() error {
	var errs []domain.FieldError

	if i.IdeaID <= 0 {
		errs = append(errs, domain.FieldError{Field: "ideaId", Message: "required"})
	}
	if strings.TrimSpace(i.MemberEmail) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Cast records the member's vote for an idea. A second vote by the same
// member fails with domain.ErrAlreadyVoted and leaves the tally unchanged.
func (s *Service) Cast(ctx context.Context, input CastInput) (*domain.Vote, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	member, err := s.members.GetByEmail(ctx, strings.TrimSpace(input.MemberEmail))
	if err != nil {
		return nil, fmt.Errorf("resolve member: %w", err)
	}

	v, err := s.votes.Cast(ctx, input.IdeaID, member.ID)
	if errors.Is(err, domain.ErrAlreadyExists) {
		return nil, fmt.Errorf("idea %d member %d: %w", input.IdeaID, member.ID, domain.ErrAlreadyVoted)
	}
	if err != nil {
		return nil, fmt.Errorf("cast vote: %w", err)
	}

	s.metrics.VoteCast()
	s.log.InfoContext(ctx, "vote cast",
		slog.Int64("vote_id", v.ID),
		slog.Int64("idea_id", v.IdeaID),
		slog.Int64("member_id", v.MemberID),
	)

	return v, nil
}

// Tally returns the number of votes an idea has received.
func (s *Service) Tally(ctx context.Context, ideaID int64) (int, error) {
	n, err := s.votes.Count(ctx, ideaID)
	if err != nil {
		return 0, fmt.Errorf("tally votes: %w", err)
	}
	return n, nil
}

// Tallies returns vote counts for several ideas; every requested id is
// present in the result.
func (s *Service) Tallies(ctx context.Context, ideaIDs []int64) (map[int64]int, error) {
	counts, err := s.votes.CountByIdeaIDs(ctx, ideaIDs)
	if err != nil {
		return nil, fmt.Errorf("tally votes: %w", err)
	}

	out := make(map[int64]int, len(ideaIDs))
	for _, id := range ideaIDs {
		out[id] = counts[id]
	}
	return out, nil
}
