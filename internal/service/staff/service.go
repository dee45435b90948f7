// Package staff assigns members of a manager's office to the projects that
// office contributes to.
package staff

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
	"github.com/heartmarshall/ideabank-backend/internal/metrics"
)

type memberRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Member, error)
	GetByEmail(ctx context.Context, email string) (*domain.Member, error)
	OfficeByManager(ctx context.Context, memberID int64) (*domain.Office, error)
	ListByOffice(ctx context.Context, officeID int64) ([]domain.Member, error)
}

type contributionRepo interface {
	GetContribution(ctx context.Context, projectID, officeID int64) (*domain.Contribution, error)
}

type assignmentRepo interface {
	Create(ctx context.Context, a *domain.Assignment) (*domain.Assignment, error)
	ListByOffice(ctx context.Context, officeID int64) ([]domain.StaffAssignment, error)
}

// Service provides staff assignment operations.
type Service struct {
	members       memberRepo
	contributions contributionRepo
	assignments   assignmentRepo
	metrics       *metrics.Metrics
	log           *slog.Logger
}

// NewService creates a new Staff service.
func NewService(
	log *slog.Logger,
	members memberRepo,
	contributions contributionRepo,
	assignments assignmentRepo,
) *Service {
	return &Service{
		members:       members,
		contributions: contributions,
		assignments:   assignments,
		log:           log.With("service", "staff"),
	}
}

// SetMetrics enables domain counters.
func (s *Service) SetMetrics(m *metrics.Metrics) {
	s.metrics = m
}

// AssignInput holds the parameters for assigning a staff member.
type AssignInput struct {
	StaffMemberID int64
	ProjectID     int64
	ManagerEmail  string
}

// Validate checks all fields and collects all errors.
func (i AssignInput) Validate() error {
	var errs []domain.FieldError

	if i.StaffMemberID <= 0 {
		errs = append(errs, domain.FieldError{Field: "selectedStaff", Message: "required"})
	}
	if i.ProjectID <= 0 {
		errs = append(errs, domain.FieldError{Field: "selectedProject", Message: "required"})
	}
	if strings.TrimSpace(i.ManagerEmail) == "" {
		errs = append(errs, domain.FieldError{Field: "mgrEmail", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Assign puts a member of the manager's office on the office's contribution
// to the project. Assigning the same member twice fails with
// domain.ErrAlreadyAssigned.
func (s *Service) Assign(ctx context.Context, input AssignInput) (*domain.Assignment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	office, err := s.managedOffice(ctx, input.ManagerEmail)
	if err != nil {
		return nil, err
	}

	contribution, err := s.contributions.GetContribution(ctx, input.ProjectID, office.ID)
	if err != nil {
		return nil, fmt.Errorf("resolve contribution: %w", err)
	}

	member, err := s.members.GetByID(ctx, input.StaffMemberID)
	if err != nil {
		return nil, fmt.Errorf("resolve staff member: %w", err)
	}
	if !member.BelongsTo(office.ID) {
		return nil, domain.NewValidationError("selectedStaff", "not a member of your office")
	}

	a, err := s.assignments.Create(ctx, &domain.Assignment{
		ContributionID: contribution.ID,
		OfficeID:       office.ID,
		MemberID:       member.ID,
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		return nil, fmt.Errorf("member %d contribution %d: %w", member.ID, contribution.ID, domain.ErrAlreadyAssigned)
	}
	if err != nil {
		return nil, fmt.Errorf("create assignment: %w", err)
	}

	s.metrics.StaffAssigned()
	s.log.InfoContext(ctx, "staff assigned",
		slog.Int64("assignment_id", a.ID),
		slog.Int64("contribution_id", a.ContributionID),
		slog.Int64("member_id", a.MemberID),
	)

	return a, nil
}

// ListForManager returns the assignments of the manager's office in
// assignment order.
func (s *Service) ListForManager(ctx context.Context, managerEmail string) ([]domain.StaffAssignment, error) {
	office, err := s.managedOffice(ctx, managerEmail)
	if err != nil {
		return nil, err
	}

	list, err := s.assignments.ListByOffice(ctx, office.ID)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return list, nil
}

// ListStaff returns the members of the manager's office.
func (s *Service) ListStaff(ctx context.Context, managerEmail string) ([]domain.Member, error) {
	office, err := s.managedOffice(ctx, managerEmail)
	if err != nil {
		return nil, err
	}

	members, err := s.members.ListByOffice(ctx, office.ID)
	if err != nil {
		return nil, fmt.Errorf("list office members: %w", err)
	}
	return members, nil
}

func (s *Service) managedOffice(ctx context.Context, managerEmail string) (*domain.Office, error) {
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
	return office, nil
}
