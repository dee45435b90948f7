// Package comment implements comment storage using PostgreSQL.
// Comments are stored flat with a parent pointer; the reply tree is
// assembled in memory by domain.BuildThread.
package comment

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/ideabank-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ideabank-backend/internal/domain"
)

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new comment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const commentColumns = `id, idea_id, author_member_id, text, parent_comment_id, created_at`

const createSQL = `
INSERT INTO comments (idea_id, author_member_id, text, parent_comment_id)
VALUES ($1, $2, $3, $4)
RETURNING ` + commentColumns

const getByIDSQL = `
SELECT ` + commentColumns + `
FROM comments
WHERE id = $1`

const listByIdeaSQL = `
SELECT ` + commentColumns + `
FROM comments
WHERE idea_id = $1
ORDER BY id`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Create inserts a comment. Returns domain.ErrNotFound if the idea, author
// or parent comment does not exist.
func (r *Repo) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanComment(querier.QueryRow(ctx, createSQL,
		c.IdeaID, c.AuthorMemberID, c.Text, c.ParentCommentID,
	))
	if err != nil {
		return nil, postgres.MapError(err, "comment on idea", c.IdeaID)
	}
	return created, nil
}

// GetByID returns a comment by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanComment(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "comment", id)
	}
	return c, nil
}

// ListByIdea returns every comment of an idea in creation order.
func (r *Repo) ListByIdea(ctx context.Context, ideaID int64) ([]domain.Comment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByIdeaSQL, ideaID)
	if err != nil {
		return nil, fmt.Errorf("list comments by idea: %w", err)
	}
	defer rows.Close()

	return scanComments(rows)
}

// ListByIdeaIDs returns the comments of several ideas (batch for DataLoader),
// ordered by idea then creation.
func (r *Repo) ListByIdeaIDs(ctx context.Context, ideaIDs []int64) ([]domain.Comment, error) {
	if len(ideaIDs) == 0 {
		return []domain.Comment{}, nil
	}

	query, args, err := postgres.Builder().
		Select(commentColumns).
		From("comments").
		Where("idea_id = ANY(?)", ideaIDs).
		OrderBy("idea_id", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build comments by ideas: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list comments by ideas: %w", err)
	}
	defer rows.Close()

	return scanComments(rows)
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanComment(row pgx.Row) (*domain.Comment, error) {
	var c domain.Comment
	if err := row.Scan(&c.ID, &c.IdeaID, &c.AuthorMemberID, &c.Text, &c.ParentCommentID, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func scanComments(rows pgx.Rows) ([]domain.Comment, error) {
	comments := []domain.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan comments: %w", err)
	}
	return comments, nil
}
