// Package vote implements the one-vote-per-member ledger using PostgreSQL.
package vote

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/ideabank-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ideabank-backend/internal/domain"
)

// Repo provides vote persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new vote repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const castSQL = `
INSERT INTO votes (idea_id, member_id)
VALUES ($1, $2)
ON CONFLICT (idea_id, member_id) DO NOTHING
RETURNING id, idea_id, member_id, created_at`

const countSQL = `
SELECT count(*)
FROM votes
WHERE idea_id = $1`

// Cast records a vote of memberID for ideaID.
// Returns domain.ErrAlreadyExists if the member already voted for the idea
// and domain.ErrNotFound if the idea or member does not exist.
func (r *Repo) Cast(ctx context.Context, ideaID, memberID int64) (*domain.Vote, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var v domain.Vote
	err := querier.QueryRow(ctx, castSQL, ideaID, memberID).
		Scan(&v.ID, &v.IdeaID, &v.MemberID, &v.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("vote on idea %d by member %d: %w", ideaID, memberID, domain.ErrAlreadyExists)
	}
	if err != nil {
		return nil, postgres.MapError(err, "vote on idea", ideaID)
	}
	return &v, nil
}

// Count returns the number of votes for an idea.
func (r *Repo) Count(ctx context.Context, ideaID int64) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := querier.QueryRow(ctx, countSQL, ideaID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count votes for idea %d: %w", ideaID, err)
	}
	return n, nil
}

// CountByIdeaIDs returns vote tallies for several ideas (batch for DataLoader).
// Ideas without votes are absent from the map.
func (r *Repo) CountByIdeaIDs(ctx context.Context, ideaIDs []int64) (map[int64]int, error) {
	tallies := make(map[int64]int, len(ideaIDs))
	if len(ideaIDs) == 0 {
		return tallies, nil
	}

	query, args, err := postgres.Builder().
		Select("idea_id", "count(*)").
		From("votes").
		Where("idea_id = ANY(?)", ideaIDs).
		GroupBy("idea_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build vote tallies: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("count votes by ideas: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			ideaID int64
			n      int
		)
		if err := rows.Scan(&ideaID, &n); err != nil {
			return nil, fmt.Errorf("scan vote tally: %w", err)
		}
		tallies[ideaID] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count votes by ideas: %w", err)
	}
	return tallies, nil
}
