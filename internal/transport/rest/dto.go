package rest

import (
	"time"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type ideaResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CategoryID  int64     `json:"catId"`
	AuthorID    int64     `json:"authorId"`
	ExistingURL string    `json:"existUrl"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type categoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type authorResponse struct {
	MemberID int64  `json:"memberId"`
	Name     string `json:"name"`
}

type ideaViewResponse struct {
	ideaResponse
	Category categoryResponse   `json:"category"`
	Author   authorResponse     `json:"author"`
	Likes    int                `json:"likes"`
	Comments *[]commentResponse `json:"comments,omitempty"`
}

type commentResponse struct {
	ID              int64             `json:"id"`
	IdeaID          int64             `json:"ideaId"`
	AuthorID        int64             `json:"authorId"`
	Text            string            `json:"comment"`
	ParentCommentID *int64            `json:"replyId"`
	CreatedAt       time.Time         `json:"createdAt"`
	Replies         []commentResponse `json:"replies"`
}

type voteResponse struct {
	ID        int64     `json:"id"`
	IdeaID    int64     `json:"ideaId"`
	MemberID  int64     `json:"memberId"`
	CreatedAt time.Time `json:"createdAt"`
}

type tallyResponse struct {
	IdeaID int64 `json:"ideaId"`
	Votes  int   `json:"votes"`
}

type projectResponse struct {
	ID        int64     `json:"id"`
	IdeaID    int64     `json:"ideaId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type stepResponse struct {
	ID             int64     `json:"id"`
	ContributionID int64     `json:"contributionId"`
	Title          string    `json:"title"`
	ReportURL      string    `json:"reportUrl"`
	Comment        string    `json:"comment"`
	CreatedAt      time.Time `json:"createdAt"`
}

type contributionStepsResponse struct {
	ContributionID int64           `json:"contributionId"`
	Project        projectResponse `json:"project"`
	OfficeID       int64           `json:"officeId"`
	Steps          []stepResponse  `json:"steps"`
}

type memberResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	OfficeID  *int64 `json:"officeId"`
}

type assignmentResponse struct {
	ID             int64     `json:"id"`
	ContributionID int64     `json:"contributionId"`
	OfficeID       int64     `json:"officeId"`
	MemberID       int64     `json:"memberId"`
	CreatedAt      time.Time `json:"createdAt"`
}

type staffAssignmentResponse struct {
	AssignmentID int64           `json:"assignmentId"`
	Staff        memberResponse  `json:"staff"`
	Project      projectResponse `json:"project"`
}

// ---------------------------------------------------------------------------
// Mappers
// ---------------------------------------------------------------------------

func toIdeaResponse(i *domain.Idea) ideaResponse {
	return ideaResponse{
		ID:          i.ID,
		Title:       i.Title,
		Description: i.Description,
		CategoryID:  i.CategoryID,
		AuthorID:    i.AuthorMemberID,
		ExistingURL: i.ExistingURL,
		Status:      i.Status.String(),
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func toIdeaViewResponses(views []domain.IdeaView) []ideaViewResponse {
	out := make([]ideaViewResponse, len(views))
	for i := range views {
		v := &views[i]
		out[i] = ideaViewResponse{
			ideaResponse: toIdeaResponse(&v.Idea),
			Category:     categoryResponse{ID: v.Category.ID, Name: v.Category.Name},
			Author:       authorResponse{MemberID: v.Author.MemberID, Name: v.Author.Name},
			Likes:        v.Likes,
		}
		if v.Comments != nil {
			comments := toCommentTree(v.Comments)
			out[i].Comments = &comments
		}
	}
	return out
}

func toCommentResponse(c *domain.Comment) commentResponse {
	return commentResponse{
		ID:              c.ID,
		IdeaID:          c.IdeaID,
		AuthorID:        c.AuthorMemberID,
		Text:            c.Text,
		ParentCommentID: c.ParentCommentID,
		CreatedAt:       c.CreatedAt,
	}
}

// toCommentTree converts a thread forest. Replies is always a non-nil slice
// so leaves render as [].
func toCommentTree(nodes []*domain.CommentNode) []commentResponse {
	out := make([]commentResponse, len(nodes))
	for i, n := range nodes {
		out[i] = toCommentResponse(&n.Comment)
		out[i].Replies = toCommentTree(n.Replies)
	}
	return out
}

func toVoteResponse(v *domain.Vote) voteResponse {
	return voteResponse{ID: v.ID, IdeaID: v.IdeaID, MemberID: v.MemberID, CreatedAt: v.CreatedAt}
}

func toProjectResponse(p *domain.Project) projectResponse {
	return projectResponse{ID: p.ID, IdeaID: p.IdeaID, Name: p.Name, CreatedAt: p.CreatedAt}
}

func toProjectResponses(projects []domain.Project) []projectResponse {
	out := make([]projectResponse, len(projects))
	for i := range projects {
		out[i] = toProjectResponse(&projects[i])
	}
	return out
}

func toStepResponse(s *domain.ProjectStep) stepResponse {
	return stepResponse{
		ID:             s.ID,
		ContributionID: s.ContributionID,
		Title:          s.Title,
		ReportURL:      s.ReportURL,
		Comment:        s.Comment,
		CreatedAt:      s.CreatedAt,
	}
}

func toContributionStepsResponses(groups []domain.ContributionSteps) []contributionStepsResponse {
	out := make([]contributionStepsResponse, len(groups))
	for i := range groups {
		g := &groups[i]
		steps := make([]stepResponse, len(g.Steps))
		for j := range g.Steps {
			steps[j] = toStepResponse(&g.Steps[j])
		}
		out[i] = contributionStepsResponse{
			ContributionID: g.Contribution.ID,
			Project:        toProjectResponse(&g.Project),
			OfficeID:       g.Contribution.OfficeID,
			Steps:          steps,
		}
	}
	return out
}

func toMemberResponse(m *domain.Member) memberResponse {
	return memberResponse{
		ID:        m.ID,
		Email:     m.Email,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		OfficeID:  m.OfficeID,
	}
}

func toMemberResponses(members []domain.Member) []memberResponse {
	out := make([]memberResponse, len(members))
	for i := range members {
		out[i] = toMemberResponse(&members[i])
	}
	return out
}

func toAssignmentResponse(a *domain.Assignment) assignmentResponse {
	return assignmentResponse{
		ID:             a.ID,
		ContributionID: a.ContributionID,
		OfficeID:       a.OfficeID,
		MemberID:       a.MemberID,
		CreatedAt:      a.CreatedAt,
	}
}

func toStaffAssignmentResponses(list []domain.StaffAssignment) []staffAssignmentResponse {
	out := make([]staffAssignmentResponse, len(list))
	for i := range list {
		sa := &list[i]
		out[i] = staffAssignmentResponse{
			AssignmentID: sa.Assignment.ID,
			Staff:        toMemberResponse(&sa.Staff),
			Project:      toProjectResponse(&sa.Project),
		}
	}
	return out
}

func toCategoryResponses(cats []domain.Category) []categoryResponse {
	out := make([]categoryResponse, len(cats))
	for i, c := range cats {
		out[i] = categoryResponse{ID: c.ID, Name: c.Name}
	}
	return out
}
