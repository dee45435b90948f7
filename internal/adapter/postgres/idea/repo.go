// Package idea implements the idea store using PostgreSQL.
package idea

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/ideabank-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ideabank-backend/internal/domain"
)

// Repo provides idea persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new idea repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const ideaColumns = `id, title, description, category_id, author_member_id, existing_url, status, created_at, updated_at`

const createSQL = `
INSERT INTO ideas (title, description, category_id, author_member_id, existing_url, status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + ideaColumns

const getByIDSQL = `
SELECT ` + ideaColumns + `
FROM ideas
WHERE id = $1`

const getByIDForUpdateSQL = getByIDSQL + `
FOR UPDATE`

const listByAuthorSQL = `
SELECT ` + ideaColumns + `
FROM ideas
WHERE author_member_id = $1
ORDER BY id`

const listByStatusSQL = `
SELECT ` + ideaColumns + `
FROM ideas
WHERE status = $1
ORDER BY id`

// updated_at only moves when the status actually changes.
const updateStatusSQL = `
UPDATE ideas
SET status = $2,
    updated_at = CASE WHEN status = $2 THEN updated_at ELSE now() END
WHERE id = $1 AND status = ANY($3)
RETURNING ` + ideaColumns

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new idea in the SUBMITTED state.
// Returns domain.ErrNotFound if the author or category does not exist.
func (r *Repo) Create(ctx context.Context, idea *domain.Idea) (*domain.Idea, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		idea.Title,
		idea.Description,
		idea.CategoryID,
		idea.AuthorMemberID,
		idea.ExistingURL,
		string(domain.IdeaStatusSubmitted),
	)

	created, err := scanIdea(row)
	if err != nil {
		return nil, postgres.MapError(err, "idea", 0)
	}
	return created, nil
}

// UpdateStatus moves the idea to status to, but only if its current status
// is one of from. Returns domain.ErrNotFound when no row matched, whether
// because the idea is missing or because its status was not in from;
// callers tell the two apart with GetByID.
func (r *Repo) UpdateStatus(ctx context.Context, id int64, to domain.IdeaStatus, from ...domain.IdeaStatus) (*domain.Idea, error) {
	allowed := make([]string, len(from))
	for i, s := range from {
		allowed[i] = string(s)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanIdea(querier.QueryRow(ctx, updateStatusSQL, id, string(to), allowed))
	if err != nil {
		return nil, postgres.MapError(err, "idea", id)
	}
	return updated, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an idea by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Idea, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	idea, err := scanIdea(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "idea", id)
	}
	return idea, nil
}

// GetByIDForUpdate returns an idea and locks its row until the surrounding
// transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Idea, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	idea, err := scanIdea(querier.QueryRow(ctx, getByIDForUpdateSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "idea", id)
	}
	return idea, nil
}

// ListByAuthor returns the ideas submitted by a member, oldest first.
func (r *Repo) ListByAuthor(ctx context.Context, memberID int64) ([]domain.Idea, error) {
	return r.list(ctx, listByAuthorSQL, memberID)
}

// ListByStatus returns all ideas in the given status, oldest first.
func (r *Repo) ListByStatus(ctx context.Context, status domain.IdeaStatus) ([]domain.Idea, error) {
	return r.list(ctx, listByStatusSQL, string(status))
}

func (r *Repo) list(ctx context.Context, query string, arg any) ([]domain.Idea, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list ideas: %w", err)
	}
	defer rows.Close()

	ideas := []domain.Idea{}
	for rows.Next() {
		idea, err := scanIdea(rows)
		if err != nil {
			return nil, fmt.Errorf("scan idea: %w", err)
		}
		ideas = append(ideas, *idea)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list ideas: %w", err)
	}
	return ideas, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanIdea(row pgx.Row) (*domain.Idea, error) {
	var (
		i      domain.Idea
		status string
	)
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Description,
		&i.CategoryID,
		&i.AuthorMemberID,
		&i.ExistingURL,
		&status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	i.Status = domain.IdeaStatus(status)
	return &i, nil
}
