package domain

// IdeaStatus is the lifecycle state of an idea.
// Transitions run SUBMITTED -> PUBLISHED -> DONE and never go back.
type IdeaStatus string

const (
	IdeaStatusSubmitted IdeaStatus = "SUBMITTED"
	IdeaStatusPublished IdeaStatus = "PUBLISHED"
	IdeaStatusDone      IdeaStatus = "DONE"
)

func (s IdeaStatus) String() string { return string(s) }

func (s IdeaStatus) IsValid() bool {
	switch s {
	case IdeaStatusSubmitted, IdeaStatusPublished, IdeaStatusDone:
		return true
	}
	return false
}

// CanTransitionTo reports whether moving from s to next is a forward step
// of the lifecycle. Staying in the same state is not a transition.
func (s IdeaStatus) CanTransitionTo(next IdeaStatus) bool {
	switch s {
	case IdeaStatusSubmitted:
		return next == IdeaStatusPublished
	case IdeaStatusPublished:
		return next == IdeaStatusDone
	}
	return false
}

// Role is the authorization level attached to a verified identity.
type Role string

const (
	RoleSysAdmin Role = "SYS_ADMIN"
	RoleAdmin    Role = "ADMIN"
	RoleManager  Role = "MANAGER"
	RoleStaff    Role = "STAFF"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleSysAdmin, RoleAdmin, RoleManager, RoleStaff:
		return true
	}
	return false
}

// RoleFromID maps the numeric role id issued by the login service.
func RoleFromID(id int) (Role, bool) {
	switch id {
	case 1:
		return RoleSysAdmin, true
	case 2:
		return RoleAdmin, true
	case 3:
		return RoleManager, true
	case 4:
		return RoleStaff, true
	}
	return "", false
}

// ID is the inverse of RoleFromID. Unknown roles return 0.
func (r Role) ID() int {
	switch r {
	case RoleSysAdmin:
		return 1
	case RoleAdmin:
		return 2
	case RoleManager:
		return 3
	case RoleStaff:
		return 4
	}
	return 0
}

// Capability names a role-gated group of operations.
type Capability string

const (
	CapabilityModerateIdeas Capability = "moderate_ideas"
	CapabilityManageOffice  Capability = "manage_office"
)

func (c Capability) String() string { return string(c) }

// Can reports whether the role grants the capability.
func (r Role) Can(c Capability) bool {
	switch c {
	case CapabilityModerateIdeas:
		return r == RoleSysAdmin || r == RoleAdmin
	case CapabilityManageOffice:
		return r == RoleSysAdmin || r == RoleAdmin || r == RoleManager
	}
	return false
}
