package idea

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
)

// Submit records a new idea in the SUBMITTED state on behalf of the member
// with the given email. The status is always SUBMITTED regardless of input.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.Idea, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	author, err := s.members.GetByEmail(ctx, strings.TrimSpace(input.AuthorEmail))
	if err != nil {
		return nil, fmt.Errorf("resolve author: %w", err)
	}

	created, err := s.ideas.Create(ctx, &domain.Idea{
		Title:          strings.TrimSpace(input.Title),
		Description:    strings.TrimSpace(input.Description),
		CategoryID:     input.CategoryID,
		AuthorMemberID: author.ID,
		ExistingURL:    strings.TrimSpace(input.ExistingURL),
		Status:         domain.IdeaStatusSubmitted,
	})
	if err != nil {
		return nil, fmt.Errorf("create idea: %w", err)
	}

	s.metrics.IdeaTransition(domain.IdeaStatusSubmitted)
	s.log.InfoContext(ctx, "idea submitted",
		slog.Int64("idea_id", created.ID),
		slog.Int64("author_id", author.ID),
		slog.Int64("category_id", created.CategoryID),
	)

	return created, nil
}
