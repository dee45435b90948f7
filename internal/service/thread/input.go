package thread

import (
	"strings"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
)

// AddInput holds the parameters for adding a comment. A nil ParentCommentID
// starts a new root comment.
type AddInput struct {
	IdeaID          int64
	AuthorEmail     string
	Text            string
	ParentCommentID *int64
}

// Validate checks all fields and collects all errors.
func (i AddInput) Validate() error {
	var errs []domain.FieldError

	if i.IdeaID <= 0 {
		errs = append(errs, domain.FieldError{Field: "ideaId", Message: "required"})
	}
	if strings.TrimSpace(i.AuthorEmail) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if strings.TrimSpace(i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "comment", Message: "required"})
	}
	if len(i.Text) > 5000 {
		errs = append(errs, domain.FieldError{Field: "comment", Message: "max 5000 characters"})
	}
	if i.ParentCommentID != nil && *i.ParentCommentID <= 0 {
		errs = append(errs, domain.FieldError{Field: "replyId", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
