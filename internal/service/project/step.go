package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
)

// CreateStep appends a progress step to the office's contribution on the
// project, creating the contribution on first use.
func (s *Service) CreateStep(ctx context.Context, input CreateStepInput) (*domain.ProjectStep, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var step *domain.ProjectStep

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		contribution, err := s.projects.UpsertContribution(ctx, input.ProjectID, input.OfficeID)
		if err != nil {
			return fmt.Errorf("upsert contribution: %w", err)
		}

		step, err = s.projects.CreateStep(ctx, &domain.ProjectStep{
			ContributionID: contribution.ID,
			Title:          strings.TrimSpace(input.Title),
		})
		if err != nil {
			return fmt.Errorf("create step: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.StepCreated()
	s.log.InfoContext(ctx, "project step created",
		slog.Int64("step_id", step.ID),
		slog.Int64("contribution_id", step.ContributionID),
		slog.Int64("project_id", input.ProjectID),
		slog.Int64("office_id", input.OfficeID),
	)

	return step, nil
}

// ListStepsGroupedByContribution returns every contribution with its project
// and steps, ordered by contribution id.
func (s *Service) ListStepsGroupedByContribution(ctx context.Context) ([]domain.ContributionSteps, error) {
	groups, err := s.projects.ListContributionSteps(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contribution steps: %w", err)
	}
	return groups, nil
}
