package models

type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleCaseManager   Role = "case_manager"
	RoleProvider      Role = "provider"
	RoleClient        Role = "client"
)

// Actor is the authenticated identity extracted by the delivery layer.
type Actor struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

func (a *Actor) IsAdministrator() bool {
	return a.Role == RoleAdministrator
}

func (a *Actor) IsCaseManager() bool {
	return a.Role == RoleCaseManager
}

// CanAccessCarePlan gates every mutating care plan operation and GetByID.
// Administrators always pass. Case managers pass only when assigned to the
// plan's client; the assignment check is delegated to the authorization
// collaborator wired into the usecase, so the raw rule here treats an
// unassigned case manager like any other actor.
func (a *Actor) CanAccessCarePlan(plan *CarePlan) bool {
	if a == nil || plan == nil {
		return false
	}
	if a.IsAdministrator() {
		return true
	}
	if plan.ClientID == a.ID {
		return true
	}
	if plan.CreatedByID == a.ID {
		return true
	}
	return false
}
