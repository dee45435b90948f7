package idea

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
)

// Publish moves an idea from SUBMITTED to PUBLISHED. Publishing an already
// published idea returns it unchanged; a DONE idea cannot be published.
func (s *Service) Publish(ctx context.Context, ideaID int64) (*domain.Idea, error) {
	if ideaID <= 0 {
		return nil, domain.NewValidationError("ideaId", "required")
	}

	published, err := s.ideas.UpdateStatus(ctx, ideaID, domain.IdeaStatusPublished,
		domain.IdeaStatusSubmitted, domain.IdeaStatusPublished)
	if err == nil {
		s.metrics.IdeaTransition(domain.IdeaStatusPublished)
		s.log.InfoContext(ctx, "idea published", slog.Int64("idea_id", ideaID))
		return published, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("publish idea: %w", err)
	}

	// No row matched: either the idea is missing or its status forbids publishing.
	current, err := s.ideas.GetByID(ctx, ideaID)
	if err != nil {
		return nil, fmt.Errorf("publish idea: %w", err)
	}
	return nil, fmt.Errorf("publish idea %d from %s: %w", ideaID, current.Status, domain.ErrInvalidTransition)
}

// ApproveProject turns a published idea into a project; see project.Service.Approve.
func (s *Service) ApproveProject(ctx context.Context, input ApproveInput) (*domain.Idea, error) {
	approved, err := s.projects.Approve(ctx, input.IdeaID, input.ProjectName)
	if err != nil {
		return nil, err
	}
	s.metrics.IdeaTransition(domain.IdeaStatusDone)
	return approved, nil
}
