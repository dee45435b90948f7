// Package project implements the project graph: approval of ideas into
// projects, per-office contributions and their progress steps.
package project

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
	"github.com/heartmarshall/ideabank-backend/internal/metrics"
)

type projectRepo interface {
	Create(ctx context.Context, ideaID int64, name string) (*domain.Project, error)
	ListAll(ctx context.Context) ([]domain.Project, error)
	ListByOffice(ctx context.Context, officeID int64) ([]domain.Project, error)
	UpsertContribution(ctx context.Context, projectID, officeID int64) (*domain.Contribution, error)
	CreateStep(ctx context.Context, step *domain.ProjectStep) (*domain.ProjectStep, error)
	ListContributionSteps(ctx context.Context) ([]domain.ContributionSteps, error)
}

type ideaRepo interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Idea, error)
	UpdateStatus(ctx context.Context, id int64, to domain.IdeaStatus, from ...domain.IdeaStatus) (*domain.Idea, error)
}

type memberRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.Member, error)
	OfficeByManager(ctx context.Context, memberID int64) (*domain.Office, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides project operations.
type Service struct {
	projects projectRepo
	ideas    ideaRepo
	members  memberRepo
	tx       txManager
	metrics  *metrics.Metrics
	log      *slog.Logger
}

// NewService creates a new Project service.
func NewService(
	log *slog.Logger,
	projects projectRepo,
	ideas ideaRepo,
	members memberRepo,
	tx txManager,
) *Service {
	return &Service{
		projects: projects,
		ideas:    ideas,
		members:  members,
		tx:       tx,
		log:      log.With("service", "project"),
	}
}

// SetMetrics enables domain counters.
func (s *Service) SetMetrics(m *metrics.Metrics) {
	s.metrics = m
}
