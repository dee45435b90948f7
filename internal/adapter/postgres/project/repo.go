// Package project implements the project graph (projects, office
// contributions and their steps) using PostgreSQL.
package project

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/ideabank-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ideabank-backend/internal/domain"
)

// Repo provides project, contribution and step persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new project repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const projectColumns = `id, idea_id, name, created_at`

const createSQL = `
INSERT INTO projects (idea_id, name)
VALUES ($1, $2)
RETURNING ` + projectColumns

const getByIDSQL = `
SELECT ` + projectColumns + `
FROM projects
WHERE id = $1`

const listAllSQL = `
SELECT ` + projectColumns + `
FROM projects
ORDER BY id`

const listByOfficeSQL = `
SELECT p.id, p.idea_id, p.name, p.created_at
FROM contributions c
JOIN projects p ON p.id = c.project_id
WHERE c.office_id = $1
ORDER BY c.id`

// The no-op DO UPDATE makes RETURNING yield the existing row on conflict.
const upsertContributionSQL = `
INSERT INTO contributions (project_id, office_id)
VALUES ($1, $2)
ON CONFLICT (project_id, office_id) DO UPDATE SET project_id = EXCLUDED.project_id
RETURNING id, project_id, office_id, created_at`

const getContributionSQL = `
SELECT id, project_id, office_id, created_at
FROM contributions
WHERE project_id = $1 AND office_id = $2`

const createStepSQL = `
INSERT INTO project_steps (contribution_id, title, report_url, comment)
VALUES ($1, $2, $3, $4)
RETURNING id, contribution_id, title, report_url, comment, created_at`

const listContributionsSQL = `
SELECT c.id, c.project_id, c.office_id, c.created_at,
       p.id, p.idea_id, p.name, p.created_at
FROM contributions c
JOIN projects p ON p.id = c.project_id
ORDER BY c.id`

const listStepsSQL = `
SELECT id, contribution_id, title, report_url, comment, created_at
FROM project_steps
ORDER BY contribution_id, id`

// ---------------------------------------------------------------------------
// Projects
// ---------------------------------------------------------------------------

// Create inserts a project for an idea.
// Returns domain.ErrAlreadyExists if the idea already has a project.
func (r *Repo) Create(ctx context.Context, ideaID int64, name string) (*domain.Project, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProject(querier.QueryRow(ctx, createSQL, ideaID, name))
	if err != nil {
		return nil, postgres.MapError(err, "project for idea", ideaID)
	}
	return p, nil
}

// GetByID returns a project by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProject(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "project", id)
	}
	return p, nil
}

// ListAll returns every project ordered by id.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Project, error) {
	return r.listProjects(ctx, listAllSQL)
}

// ListByOffice returns the projects an office contributes to, in
// contribution order.
func (r *Repo) ListByOffice(ctx context.Context, officeID int64) ([]domain.Project, error) {
	return r.listProjects(ctx, listByOfficeSQL, officeID)
}

func (r *Repo) listProjects(ctx context.Context, query string, args ...any) ([]domain.Project, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// ---------------------------------------------------------------------------
// Contributions and steps
// ---------------------------------------------------------------------------

// UpsertContribution returns the contribution of officeID to projectID,
// creating it if needed. Concurrent callers always get the same row.
// Returns domain.ErrNotFound if the project or office does not exist.
func (r *Repo) UpsertContribution(ctx context.Context, projectID, officeID int64) (*domain.Contribution, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanContribution(querier.QueryRow(ctx, upsertContributionSQL, projectID, officeID))
	if err != nil {
		return nil, postgres.MapError(err, "contribution to project", projectID)
	}
	return c, nil
}

// GetContribution returns the contribution of officeID to projectID.
// Returns domain.ErrNotFound if the office has not contributed yet.
func (r *Repo) GetContribution(ctx context.Context, projectID, officeID int64) (*domain.Contribution, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanContribution(querier.QueryRow(ctx, getContributionSQL, projectID, officeID))
	if err != nil {
		return nil, postgres.MapError(err, "contribution to project", projectID)
	}
	return c, nil
}

// CreateStep appends a step to a contribution.
func (r *Repo) CreateStep(ctx context.Context, step *domain.ProjectStep) (*domain.ProjectStep, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var s domain.ProjectStep
	err := querier.QueryRow(ctx, createStepSQL,
		step.ContributionID, step.Title, step.ReportURL, step.Comment,
	).Scan(&s.ID, &s.ContributionID, &s.Title, &s.ReportURL, &s.Comment, &s.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "step of contribution", step.ContributionID)
	}
	return &s, nil
}

// ListContributionSteps returns every contribution with its project and
// steps, ordered by contribution id. Steps are in creation order; a
// contribution without steps has an empty slice.
func (r *Repo) ListContributionSteps(ctx context.Context) ([]domain.ContributionSteps, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listContributionsSQL)
	if err != nil {
		return nil, fmt.Errorf("list contributions: %w", err)
	}

	groups := []domain.ContributionSteps{}
	index := make(map[int64]int)
	for rows.Next() {
		var g domain.ContributionSteps
		err := rows.Scan(
			&g.Contribution.ID, &g.Contribution.ProjectID, &g.Contribution.OfficeID, &g.Contribution.CreatedAt,
			&g.Project.ID, &g.Project.IdeaID, &g.Project.Name, &g.Project.CreatedAt,
		)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan contribution: %w", err)
		}
		g.Steps = []domain.ProjectStep{}
		index[g.Contribution.ID] = len(groups)
		groups = append(groups, g)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list contributions: %w", err)
	}

	stepRows, err := querier.Query(ctx, listStepsSQL)
	if err != nil {
		return nil, fmt.Errorf("list steps: %w", err)
	}
	defer stepRows.Close()

	for stepRows.Next() {
		var s domain.ProjectStep
		if err := stepRows.Scan(&s.ID, &s.ContributionID, &s.Title, &s.ReportURL, &s.Comment, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan step: %w", err)
		}
		// Steps of contributions created after the first query are skipped.
		if i, ok := index[s.ContributionID]; ok {
			groups[i].Steps = append(groups[i].Steps, s)
		}
	}
	if err := stepRows.Err(); err != nil {
		return nil, fmt.Errorf("list steps: %w", err)
	}

	return groups, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	if err := row.Scan(&p.ID, &p.IdeaID, &p.Name, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func scanContribution(row pgx.Row) (*domain.Contribution, error) {
	var c domain.Contribution
	if err := row.Scan(&c.ID, &c.ProjectID, &c.OfficeID, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
