package thread

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
)

// LoadThread returns the reply forest of an idea: roots in creation order,
// each carrying its replies recursively.
func (s *Service) LoadThread(ctx context.Context, ideaID int64) ([]*domain.CommentNode, error) {
	if ideaID <= 0 {
		return nil, domain.NewValidationError("ideaId", "required")
	}

	if _, err := s.ideas.GetByID(ctx, ideaID); err != nil {
		return nil, fmt.Errorf("get idea: %w", err)
	}

	comments, err := s.comments.ListByIdea(ctx, ideaID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return s.Assemble(ctx, ideaID, comments), nil
}

// Assemble links already loaded comments of one idea into a forest, applying
// the configured depth limit. Comments left out are logged, not returned.
func (s *Service) Assemble(ctx context.Context, ideaID int64, comments []domain.Comment) []*domain.CommentNode {
	roots, stats := domain.BuildThread(comments, s.maxDepth)

	if stats.Excluded() > 0 {
		s.metrics.ThreadExcluded("depth", len(stats.Truncated))
		s.metrics.ThreadExcluded("unreachable", len(stats.Unreachable))
		s.log.WarnContext(ctx, "comments excluded from thread",
			slog.Int64("idea_id", ideaID),
			slog.Int("max_depth", s.maxDepth),
			slog.Any("truncated", stats.Truncated),
			slog.Any("unreachable", stats.Unreachable),
		)
	}

	return roots
}
