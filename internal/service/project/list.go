package project

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
)

// ListAll returns every project.
func (s *Service) ListAll(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.projects.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// ListByManager returns the projects the manager's office contributes to.
func (s *Service) ListByManager(ctx context.Context, managerEmail string) ([]domain.Project, error) {
	email := strings.TrimSpace(managerEmail)
	if email == "" {
		return nil, domain.NewValidationError("email", "required")
	}

	manager, err := s.members.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("resolve manager: %w", err)
	}
	office, err := s.members.OfficeByManager(ctx, manager.ID)
	if err != nil {
		return nil, fmt.Errorf("resolve office: %w", err)
	}

	projects, err := s.projects.ListByOffice(ctx, office.ID)
	if err != nil {
		return nil, fmt.Errorf("list office projects: %w", err)
	}
	return projects, nil
}
