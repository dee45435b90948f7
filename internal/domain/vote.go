package domain

import "time"

// Vote records one member's support for one idea.
type Vote struct {
	ID        int64
	IdeaID    int64
	MemberID  int64
	CreatedAt time.Time
}
