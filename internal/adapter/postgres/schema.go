package postgres

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/ideabank-backend/migrations"
)

const codeUndefinedTable = "42P01"

// SchemaInspector compares the versions recorded in the goose table with
// the migrations embedded in the binary.
type SchemaInspector struct {
	pool *pgxpool.Pool
}

// NewSchemaInspector creates a SchemaInspector.
func NewSchemaInspector(pool *pgxpool.Pool) *SchemaInspector {
	return &SchemaInspector{pool: pool}
}

// PendingMigrations returns how many embedded migrations are not applied.
// A database that was never migrated reports every migration as pending.
func (s *SchemaInspector) PendingMigrations(ctx context.Context) (int, error) {
	embedded, err := embeddedVersions()
	if err != nil {
		return 0, err
	}

	rows, err := s.pool.Query(ctx, `SELECT version_id FROM goose_db_version WHERE is_applied`)
	if err == nil {
		var applied []int64
		applied, err = pgx.CollectRows(rows, pgx.RowTo[int64])
		if err == nil {
			return countPending(embedded, applied), nil
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeUndefinedTable {
		return len(embedded), nil
	}
	return 0, fmt.Errorf("read applied versions: %w", err)
}

func countPending(embedded, applied []int64) int {
	done := make(map[int64]struct{}, len(applied))
	for _, v := range applied {
		done[v] = struct{}{}
	}

	pending := 0
	for _, v := range embedded {
		if _, ok := done[v]; !ok {
			pending++
		}
	}
	return pending
}

func embeddedVersions() ([]int64, error) {
	names, err := fs.Glob(migrations.FS, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("list embedded migrations: %w", err)
	}

	versions := make([]int64, 0, len(names))
	for _, name := range names {
		v, err := goose.NumericComponent(name)
		if err != nil {
			return nil, fmt.Errorf("migration %s: %w", name, err)
		}
		versions = append(versions, v)
	}
	return versions, nil
}
