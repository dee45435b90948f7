package rest

import (
	"net/http"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
	"github.com/heartmarshall/ideabank-backend/internal/transport/middleware"
)

// Handlers groups every domain handler mounted by Register.
type Handlers struct {
	Idea      *IdeaHandler
	Comment   *CommentHandler
	Vote      *VoteHandler
	Project   *ProjectHandler
	Staff     *StaffHandler
	Directory *DirectoryHandler
	Health    *HealthHandler
}

// Register mounts all routes on mux. Every domain route goes through
// authenticate; role-gated routes additionally require a capability.
func Register(mux *http.ServeMux, h Handlers, authenticate middleware.Middleware) {
	open := func(fn http.HandlerFunc) http.Handler {
		return authenticate(fn)
	}
	gated := func(c domain.Capability, fn http.HandlerFunc) http.Handler {
		return middleware.Chain(authenticate, middleware.RequireCapability(c))(fn)
	}

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.Handle("POST /idea", open(h.Idea.Submit))
	mux.Handle("GET /idea", open(h.Idea.ListByMember))
	mux.Handle("GET /idea-publish", open(h.Idea.ListPublished))
	mux.Handle("POST /idea-publish", gated(domain.CapabilityModerateIdeas, h.Idea.Publish))
	mux.Handle("POST /approve-project", gated(domain.CapabilityModerateIdeas, h.Idea.Approve))

	mux.Handle("POST /comment", open(h.Comment.Add))
	mux.Handle("GET /comment", open(h.Comment.Thread))

	mux.Handle("POST /vote", open(h.Vote.Cast))
	mux.Handle("GET /vote", open(h.Vote.Tally))

	mux.Handle("GET /load-project", open(h.Project.List))
	mux.Handle("POST /create-step", gated(domain.CapabilityManageOffice, h.Project.CreateStep))
	mux.Handle("GET /load-project-steps", open(h.Project.Steps))
	mux.Handle("GET /load-project-by-manager", gated(domain.CapabilityManageOffice, h.Project.ListByManager))

	mux.Handle("GET /assign-staff", gated(domain.CapabilityManageOffice, h.Staff.Assignments))
	mux.Handle("POST /assign-staff", gated(domain.CapabilityManageOffice, h.Staff.Assign))
	mux.Handle("GET /list-staff", gated(domain.CapabilityManageOffice, h.Staff.Staff))

	mux.Handle("GET /category", open(h.Directory.Categories))
}
