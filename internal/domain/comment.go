package domain

import "time"

// Comment is an immutable remark on an idea. A nil ParentCommentID marks a
// root; otherwise the parent is another comment on the same idea.
type Comment struct {
	ID              int64
	IdeaID          int64
	AuthorMemberID  int64
	Text            string
	ParentCommentID *int64
	CreatedAt       time.Time
}

// IsRoot reports whether the comment starts a thread.
func (c Comment) IsRoot() bool { return c.ParentCommentID == nil }

// CommentNode is a comment with its ordered replies. Replies is never nil.
type CommentNode struct {
	Comment
	Replies []*CommentNode
}
