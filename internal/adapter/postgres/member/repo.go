// Package member implements read access to members and offices using PostgreSQL.
// Members and offices are written by the registration subsystem; the only
// write here is setting an office's manager, used by the admin CLI.
package member

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/ideabank-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ideabank-backend/internal/domain"
)

// Repo provides member and office persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new member repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const memberColumns = `id, email, first_name, last_name, office_id, created_at`

const officeColumns = `id, name, location, manager_member_id, created_at`

const getByIDSQL = `
SELECT ` + memberColumns + `
FROM members
WHERE id = $1`

const getByEmailSQL = `
SELECT ` + memberColumns + `
FROM members
WHERE email = $1`

const listByOfficeSQL = `
SELECT ` + memberColumns + `
FROM members
WHERE office_id = $1
ORDER BY id`

const officeByManagerSQL = `
SELECT ` + officeColumns + `
FROM offices
WHERE manager_member_id = $1`

const setOfficeManagerSQL = `
UPDATE offices
SET manager_member_id = $2
WHERE id = $1
RETURNING ` + officeColumns

// ---------------------------------------------------------------------------
// Member reads
// ---------------------------------------------------------------------------

// GetByID returns a member by primary key.
// Returns domain.ErrNotFound if the member does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	m, err := scanMember(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "member", id)
	}
	return m, nil
}

// GetByEmail returns a member by email address.
// Returns domain.ErrNotFound if no member has that email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	m, err := scanMember(querier.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "member "+email, 0)
	}
	return m, nil
}

// GetByIDs returns the members with the given ids (batch for DataLoader).
// Missing ids are simply absent from the result.
func (r *Repo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Member, error) {
	if len(ids) == 0 {
		return []domain.Member{}, nil
	}

	query, args, err := postgres.Builder().
		Select(memberColumns).
		From("members").
		Where("id = ANY(?)", ids).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build members by ids: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get members by ids: %w", err)
	}
	defer rows.Close()

	members, err := scanMembers(rows)
	if err != nil {
		return nil, fmt.Errorf("get members by ids: %w", err)
	}
	return members, nil
}

// ListByOffice returns the members working in an office, ordered by id.
// Returns an empty slice (not nil) when the office has no members.
func (r *Repo) ListByOffice(ctx context.Context, officeID int64) ([]domain.Member, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByOfficeSQL, officeID)
	if err != nil {
		return nil, fmt.Errorf("list members by office: %w", err)
	}
	defer rows.Close()

	members, err := scanMembers(rows)
	if err != nil {
		return nil, fmt.Errorf("list members by office: %w", err)
	}
	return members, nil
}

// ---------------------------------------------------------------------------
// Offices
// ---------------------------------------------------------------------------

// OfficeByManager returns the office managed by the given member.
// Returns domain.ErrNotFound if the member manages no office.
func (r *Repo) OfficeByManager(ctx context.Context, memberID int64) (*domain.Office, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	o, err := scanOffice(querier.QueryRow(ctx, officeByManagerSQL, memberID))
	if err != nil {
		return nil, postgres.MapError(err, "office of manager", memberID)
	}
	return o, nil
}

// SetOfficeManager makes memberID the manager of officeID.
// Returns domain.ErrNotFound for an unknown office or member and
// domain.ErrAlreadyExists if the member already manages another office.
func (r *Repo) SetOfficeManager(ctx context.Context, officeID, memberID int64) (*domain.Office, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	o, err := scanOffice(querier.QueryRow(ctx, setOfficeManagerSQL, officeID, memberID))
	if err != nil {
		return nil, postgres.MapError(err, "office", officeID)
	}
	return o, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanMember(row pgx.Row) (*domain.Member, error) {
	var m domain.Member
	if err := row.Scan(&m.ID, &m.Email, &m.FirstName, &m.LastName, &m.OfficeID, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

func scanMembers(rows pgx.Rows) ([]domain.Member, error) {
	members := []domain.Member{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return members, nil
}

func scanOffice(row pgx.Row) (*domain.Office, error) {
	var o domain.Office
	if err := row.Scan(&o.ID, &o.Name, &o.Location, &o.ManagerMemberID, &o.CreatedAt); err != nil {
		return nil, err
	}
	return &o, nil
}
