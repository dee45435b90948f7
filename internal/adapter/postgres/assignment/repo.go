// Package assignment implements staff-to-contribution assignments using PostgreSQL.
package assignment

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/ideabank-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ideabank-backend/internal/domain"
)

// Repo provides assignment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new assignment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO assignments (contribution_id, office_id, member_id)
VALUES ($1, $2, $3)
ON CONFLICT (contribution_id, member_id) DO NOTHING
RETURNING id, contribution_id, office_id, member_id, created_at`

const listByOfficeSQL = `
SELECT a.id, a.contribution_id, a.office_id, a.member_id, a.created_at,
       m.id, m.email, m.first_name, m.last_name, m.office_id, m.created_at,
       p.id, p.idea_id, p.name, p.created_at
FROM assignments a
JOIN members m ON m.id = a.member_id
JOIN contributions c ON c.id = a.contribution_id
JOIN projects p ON p.id = c.project_id
WHERE a.office_id = $1
ORDER BY a.id`

// Create assigns a member to a contribution.
// Returns domain.ErrAlreadyExists if the member is already on that
// contribution and domain.ErrNotFound if a referenced row is missing.
func (r *Repo) Create(ctx context.Context, a *domain.Assignment) (*domain.Assignment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var out domain.Assignment
	err := querier.QueryRow(ctx, createSQL, a.ContributionID, a.OfficeID, a.MemberID).
		Scan(&out.ID, &out.ContributionID, &out.OfficeID, &out.MemberID, &out.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("assignment of member %d to contribution %d: %w",
			a.MemberID, a.ContributionID, domain.ErrAlreadyExists)
	}
	if err != nil {
		return nil, postgres.MapError(err, "assignment to contribution", a.ContributionID)
	}
	return &out, nil
}

// ListByOffice returns the office's assignments joined with the assigned
// member and the contribution's project, in assignment order.
func (r *Repo) ListByOffice(ctx context.Context, officeID int64) ([]domain.StaffAssignment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByOfficeSQL, officeID)
	if err != nil {
		return nil, fmt.Errorf("list assignments by office: %w", err)
	}
	defer rows.Close()

	result := []domain.StaffAssignment{}
	for rows.Next() {
		var sa domain.StaffAssignment
		err := rows.Scan(
			&sa.Assignment.ID, &sa.Assignment.ContributionID, &sa.Assignment.OfficeID,
			&sa.Assignment.MemberID, &sa.Assignment.CreatedAt,
			&sa.Staff.ID, &sa.Staff.Email, &sa.Staff.FirstName, &sa.Staff.LastName,
			&sa.Staff.OfficeID, &sa.Staff.CreatedAt,
			&sa.Project.ID, &sa.Project.IdeaID, &sa.Project.Name, &sa.Project.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		result = append(result, sa)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list assignments by office: %w", err)
	}
	return result, nil
}
