package domain

import "time"

// Member is a registered person in the organisation. Members are created by
// the registration subsystem and only read here.
type Member struct {
	ID        int64
	Email     string
	FirstName string
	LastName  string
	OfficeID  *int64
	CreatedAt time.Time
}

// DisplayName is the "first last" form shown next to ideas.
func (m Member) DisplayName() string {
	return m.FirstName + " " + m.LastName
}

// BelongsTo reports whether the member works in the given office.
func (m Member) BelongsTo(officeID int64) bool {
	return m.OfficeID != nil && *m.OfficeID == officeID
}

// Office is an organisational unit with at most one manager.
type Office struct {
	ID              int64
	Name            string
	Location        string
	ManagerMemberID *int64
	CreatedAt       time.Time
}

// Category is reference data an idea is filed under.
type Category struct {
	ID   int64
	Name string
}
