package domain

import "time"

// Idea is a member's proposal moving through the SUBMITTED, PUBLISHED and
// DONE states. Ideas are never deleted.
type Idea struct {
	ID             int64
	Title          string
	Description    string
	CategoryID     int64
	AuthorMemberID int64
	ExistingURL    string
	Status         IdeaStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AuthorRef is the compact author block attached to an IdeaView.
type AuthorRef struct {
	MemberID int64
	Name     string
}

// IdeaView is an idea enriched for listing.
// Comments is nil when the listing does not include threads.
type IdeaView struct {
	Idea     Idea
	Category Category
	Author   AuthorRef
	Likes    int
	Comments []*CommentNode
}
