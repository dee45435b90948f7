package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedCategory creates a category with a unique name.
func SeedCategory(t *testing.T, pool *pgxpool.Pool) domain.Category {
	t.Helper()

	c := domain.Category{Name: "Category " + uniqueSuffix()}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO categories (name) VALUES ($1) RETURNING id`,
		c.Name,
	).Scan(&c.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory: %v", err)
	}
	return c
}

// SeedOffice creates an office without a manager.
func SeedOffice(t *testing.T, pool *pgxpool.Pool) domain.Office {
	t.Helper()

	o := domain.Office{Name: "Office " + uniqueSuffix(), Location: "HQ"}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO offices (name, location) VALUES ($1, $2) RETURNING id, created_at`,
		o.Name, o.Location,
	).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedOffice: %v", err)
	}
	return o
}

// SeedMember creates a member with a unique email. officeID may be nil.
func SeedMember(t *testing.T, pool *pgxpool.Pool, officeID *int64) domain.Member {
	t.Helper()

	suffix := uniqueSuffix()
	m := domain.Member{
		Email:     "member-" + suffix + "@example.com",
		FirstName: "First" + suffix,
		LastName:  "Last",
		OfficeID:  officeID,
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO members (email, first_name, last_name, office_id)
		 VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		m.Email, m.FirstName, m.LastName, m.OfficeID,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedMember: %v", err)
	}
	return m
}

// SeedManager creates an office and a member who manages it.
func SeedManager(t *testing.T, pool *pgxpool.Pool) (domain.Member, domain.Office) {
	t.Helper()

	office := SeedOffice(t, pool)
	manager := SeedMember(t, pool, &office.ID)

	_, err := pool.Exec(context.Background(),
		`UPDATE offices SET manager_member_id = $1 WHERE id = $2`,
		manager.ID, office.ID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedManager: %v", err)
	}
	office.ManagerMemberID = &manager.ID

	return manager, office
}

// SeedIdea creates an idea in the given status authored by authorID.
func SeedIdea(t *testing.T, pool *pgxpool.Pool, authorID, categoryID int64, status domain.IdeaStatus) domain.Idea {
	t.Helper()

	idea := domain.Idea{
		Title:          "Idea " + uniqueSuffix(),
		Description:    "Seeded idea",
		CategoryID:     categoryID,
		AuthorMemberID: authorID,
		Status:         status,
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO ideas (title, description, category_id, author_member_id, status)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at`,
		idea.Title, idea.Description, idea.CategoryID, idea.AuthorMemberID, string(idea.Status),
	).Scan(&idea.ID, &idea.CreatedAt, &idea.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedIdea: %v", err)
	}
	return idea
}

// SeedProject creates a project for an idea.
func SeedProject(t *testing.T, pool *pgxpool.Pool, ideaID int64) domain.Project {
	t.Helper()

	p := domain.Project{IdeaID: ideaID, Name: "Project " + uniqueSuffix()}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO projects (idea_id, name) VALUES ($1, $2) RETURNING id, created_at`,
		p.IdeaID, p.Name,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedProject: %v", err)
	}
	return p
}

// SeedContribution creates a contribution of an office to a project.
func SeedContribution(t *testing.T, pool *pgxpool.Pool, projectID, officeID int64) domain.Contribution {
	t.Helper()

	c := domain.Contribution{ProjectID: projectID, OfficeID: officeID}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO contributions (project_id, office_id) VALUES ($1, $2) RETURNING id, created_at`,
		c.ProjectID, c.OfficeID,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedContribution: %v", err)
	}
	return c
}
