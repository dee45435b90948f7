package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
	"github.com/heartmarshall/ideabank-backend/internal/service/staff"
)

type staffService interface {
	Assign(ctx context.Context, input staff.AssignInput) (*domain.Assignment, error)
	ListForManager(ctx context.Context, managerEmail string) ([]domain.StaffAssignment, error)
	ListStaff(ctx context.Context, managerEmail string) ([]domain.Member, error)
}

// StaffHandler serves staff assignment endpoints.
type StaffHandler struct {
	svc staffService
	log *slog.Logger
}

// NewStaffHandler creates a StaffHandler.
func NewStaffHandler(svc staffService, logger *slog.Logger) *StaffHandler {
	return &StaffHandler{svc: svc, log: logger.With("handler", "staff")}
}

type assignStaffRequest struct {
	StaffMemberID int64  `json:"selectedStaff"`
	ProjectID     int64  `json:"selectedProject"`
	ManagerEmail  string `json:"mgrEmail"`
}

// Assign handles POST /assign-staff.
func (h *StaffHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req assignStaffRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	a, err := h.svc.Assign(r.Context(), staff.AssignInput{
		StaffMemberID: req.StaffMemberID,
		ProjectID:     req.ProjectID,
		ManagerEmail:  req.ManagerEmail,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAssignmentResponse(a))
}

// Assignments handles GET /assign-staff?email=.
func (h *StaffHandler) Assignments(w http.ResponseWriter, r *http.Request) {
	email, err := queryString(r, "email")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	list, err := h.svc.ListForManager(r.Context(), email)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toStaffAssignmentResponses(list))
}

// Staff handles GET /list-staff?email=.
func (h *StaffHandler) Staff(w http.ResponseWriter, r *http.Request) {
	email, err := queryString(r, "email")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	members, err := h.svc.ListStaff(r.Context(), email)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toMemberResponses(members))
}
