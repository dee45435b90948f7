package domain

import "time"

// Project is the execution vehicle created when an idea is approved.
// There is exactly one project per idea.
type Project struct {
	ID        int64
	IdeaID    int64
	Name      string
	CreatedAt time.Time
}

// Contribution links a project to an office working on it.
// At most one exists per (project, office) pair.
type Contribution struct {
	ID        int64
	ProjectID int64
	OfficeID  int64
	CreatedAt time.Time
}

// ProjectStep is a progress entry appended by an office on its contribution.
type ProjectStep struct {
	ID             int64
	ContributionID int64
	Title          string
	ReportURL      string
	Comment        string
	CreatedAt      time.Time
}

// ContributionSteps groups the steps of one contribution with its project.
type ContributionSteps struct {
	Contribution Contribution
	Project      Project
	Steps        []ProjectStep
}

// Assignment puts a staff member on a contribution. OfficeID is copied from
// the contribution so a manager's listing can filter by office directly.
type Assignment struct {
	ID             int64
	ContributionID int64
	OfficeID       int64
	MemberID       int64
	CreatedAt      time.Time
}

// StaffAssignment is an assignment joined with its member and project.
type StaffAssignment struct {
	Assignment Assignment
	Staff      Member
	Project    Project
}
