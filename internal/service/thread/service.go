// Package thread implements comment threads on ideas: adding comments and
// replies, and assembling the stored comments into a reply tree.
package thread

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
	"github.com/heartmarshall/ideabank-backend/internal/metrics"
)

type commentRepo interface {
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	GetByID(ctx context.Context, id int64) (*domain.Comment, error)
	ListByIdea(ctx context.Context, ideaID int64) ([]domain.Comment, error)
}

type ideaRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Idea, error)
}

type memberRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.Member, error)
}

// Service provides comment thread operations.
type Service struct {
	comments commentRepo
	ideas    ideaRepo
	members  memberRepo
	maxDepth int
	metrics  *metrics.Metrics
	log      *slog.Logger
}

// NewService creates a new Thread service. maxDepth bounds reply nesting
// in assembled threads; values <= 0 select domain.DefaultThreadDepth.
func NewService(
	log *slog.Logger,
	comments commentRepo,
	ideas ideaRepo,
	members memberRepo,
	maxDepth int,
) *Service {
	if maxDepth <= 0 {
		maxDepth = domain.DefaultThreadDepth
	}
	return &Service{
		comments: comments,
		ideas:    ideas,
		members:  members,
		maxDepth: maxDepth,
		log:      log.With("service", "thread"),
	}
}

// SetMetrics enables domain counters.
func (s *Service) SetMetrics(m *metrics.Metrics) {
	s.metrics = m
}
