// Package idea implements the idea store: submission, listings enriched for
// display, and the publish transition.
package idea

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
	"github.com/heartmarshall/ideabank-backend/internal/metrics"
)

type ideaRepo interface {
	Create(ctx context.Context, idea *domain.Idea) (*domain.Idea, error)
	GetByID(ctx context.Context, id int64) (*domain.Idea, error)
	ListByAuthor(ctx context.Context, memberID int64) ([]domain.Idea, error)
	ListByStatus(ctx context.Context, status domain.IdeaStatus) ([]domain.Idea, error)
	UpdateStatus(ctx context.Context, id int64, to domain.IdeaStatus, from ...domain.IdeaStatus) (*domain.Idea, error)
}

type memberRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.Member, error)
}

// viewLoader resolves the relations of many ideas at once.
type viewLoader interface {
	Categories(ctx context.Context, ids []int64) (map[int64]domain.Category, error)
	Members(ctx context.Context, ids []int64) (map[int64]domain.Member, error)
	Tallies(ctx context.Context, ideaIDs []int64) (map[int64]int, error)
	Comments(ctx context.Context, ideaIDs []int64) (map[int64][]domain.Comment, error)
}

type threadAssembler interface {
	Assemble(ctx context.Context, ideaID int64, comments []domain.Comment) []*domain.CommentNode
}

type projectApprover interface {
	Approve(ctx context.Context, ideaID int64, projectName string) (*domain.Idea, error)
}

// Service provides idea lifecycle operations.
type Service struct {
	ideas    ideaRepo
	members  memberRepo
	loader   viewLoader
	threads  threadAssembler
	projects projectApprover
	metrics  *metrics.Metrics
	log      *slog.Logger
}

// NewService creates a new Idea service.
func NewService(
	log *slog.Logger,
	ideas ideaRepo,
	members memberRepo,
	loader viewLoader,
	threads threadAssembler,
	projects projectApprover,
) *Service {
	return &Service{
		ideas:    ideas,
		members:  members,
		loader:   loader,
		threads:  threads,
		projects: projects,
		log:      log.With("service", "idea"),
	}
}

// SetMetrics enables domain counters.
func (s *Service) SetMetrics(m *metrics.Metrics) {
	s.metrics = m
}
