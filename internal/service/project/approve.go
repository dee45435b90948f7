package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
)

// Approve moves a PUBLISHED idea to DONE and creates its project in the same
// transaction. The idea row is locked first, so a concurrent or repeated
// approval sees DONE and fails with domain.ErrInvalidTransition.
func (s *Service) Approve(ctx context.Context, ideaID int64, projectName string) (*domain.Idea, error) {
	if err := validateApprove(ideaID, projectName); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(projectName)

	var (
		approved *domain.Idea
		project  *domain.Project
	)

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.ideas.GetByIDForUpdate(ctx, ideaID)
		if err != nil {
			return fmt.Errorf("lock idea: %w", err)
		}
		if !current.Status.CanTransitionTo(domain.IdeaStatusDone) {
			return fmt.Errorf("approve idea %d from %s: %w", ideaID, current.Status, domain.ErrInvalidTransition)
		}

		approved, err = s.ideas.UpdateStatus(ctx, ideaID, domain.IdeaStatusDone, domain.IdeaStatusPublished)
		if err != nil {
			return fmt.Errorf("update idea status: %w", err)
		}

		project, err = s.projects.Create(ctx, ideaID, name)
		if errors.Is(err, domain.ErrAlreadyExists) {
			return fmt.Errorf("project for idea %d: %w", ideaID, domain.ErrConflict)
		}
		if err != nil {
			return fmt.Errorf("create project: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "idea approved",
		slog.Int64("idea_id", approved.ID),
		slog.Int64("project_id", project.ID),
	)

	return approved, nil
}
