package idea

import (
	"strings"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
)

// SubmitInput holds the parameters for submitting an idea.
type SubmitInput struct {
	Title       string
	Description string
	CategoryID  int64
	ExistingURL string
	AuthorEmail string
}

// Validate checks all fields and collects all errors.
func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if strings.TrimSpace(i.Description) == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}
	if i.CategoryID <= 0 {
		errs = append(errs, domain.FieldError{Field: "catId", Message: "required"})
	}
	if strings.TrimSpace(i.AuthorEmail) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ApproveInput holds the parameters for approving an idea into a project.
type ApproveInput struct {
	IdeaID      int64
	ProjectName string
}
