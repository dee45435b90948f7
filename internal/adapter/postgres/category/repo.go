// Package category implements read access to idea categories using PostgreSQL.
package category

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/ideabank-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ideabank-backend/internal/domain"
)

// Repo provides category reads backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new category repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const listSQL = `
SELECT id, name
FROM categories
ORDER BY name, id`

// List returns all categories ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	return scanCategories(rows)
}

// GetByIDs returns the categories with the given ids (batch for DataLoader).
func (r *Repo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Category, error) {
	if len(ids) == 0 {
		return []domain.Category{}, nil
	}

	query, args, err := postgres.Builder().
		Select("id", "name").
		From("categories").
		Where("id = ANY(?)", ids).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build categories by ids: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get categories by ids: %w", err)
	}
	defer rows.Close()

	return scanCategories(rows)
}

func scanCategories(rows pgx.Rows) ([]domain.Category, error) {
	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan categories: %w", err)
	}
	return categories, nil
}
