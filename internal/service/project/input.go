package project

import (
	"strings"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
)

// CreateStepInput holds the parameters for appending a progress step.
type CreateStepInput struct {
	ProjectID int64
	OfficeID  int64
	Title     string
}

// Validate checks all fields and collects all errors.
func (i CreateStepInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID <= 0 {
		errs = append(errs, domain.FieldError{Field: "project", Message: "required"})
	}
	if i.OfficeID <= 0 {
		errs = append(errs, domain.FieldError{Field: "office", Message: "required"})
	}
	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateApprove(ideaID int64, projectName string) error {
	var errs []domain.FieldError

	if ideaID <= 0 {
		errs = append(errs, domain.FieldError{Field: "ideaId", Message: "required"})
	}
	name := strings.TrimSpace(projectName)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "projectName", Message: "required"})
	}
	if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "projectName", Message: "max 200 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
