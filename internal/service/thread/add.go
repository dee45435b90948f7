package thread

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
)

// Add posts a comment on an idea, optionally as a reply. The parent, when
// given, must be a comment on the same idea.
func (s *Service) Add(ctx context.Context, input AddInput) (*domain.Comment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	author, err := s.members.GetByEmail(ctx, strings.TrimSpace(input.AuthorEmail))
	if err != nil {
		return nil, fmt.Errorf("resolve author: %w", err)
	}

	if _, err := s.ideas.GetByID(ctx, input.IdeaID); err != nil {
		return nil, fmt.Errorf("get idea: %w", err)
	}

	if input.ParentCommentID != nil {
		parent, err := s.comments.GetByID(ctx, *input.ParentCommentID)
		if err != nil {
			return nil, fmt.Errorf("get parent comment: %w", err)
		}
		if parent.IdeaID != input.IdeaID {
			return nil, domain.NewValidationError("replyId", "parent comment belongs to another idea")
		}
	}

	created, err := s.comments.Create(ctx, &domain.Comment{
		IdeaID:          input.IdeaID,
		AuthorMemberID:  author.ID,
		Text:            strings.TrimSpace(input.Text),
		ParentCommentID: input.ParentCommentID,
	})
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	attrs := []any{
		slog.Int64("comment_id", created.ID),
		slog.Int64("idea_id", created.IdeaID),
		slog.Int64("author_id", author.ID),
	}
	if created.ParentCommentID != nil {
		attrs = append(attrs, slog.Int64("parent_id", *created.ParentCommentID))
	}
	s.log.InfoContext(ctx, "comment added", attrs...)

	return created, nil
}
