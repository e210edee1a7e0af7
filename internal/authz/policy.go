package authz

import (
	"project-management-api/internal/models"
)

// Allow reports whether callerRole is in the allowed set. The decision is
// pure; callers translate a false into the fixed 401 envelope before any
// side effect runs.
func Allow(callerRole models.Role, allowed ...models.Role) bool {
	for _, r := range allowed {
		if callerRole == r {
			return true
		}
	}
	return false
}

// Per-endpoint role tables. Listing endpoints admit MEMBER only; ADMIN
// and MANAGER are excluded. That asymmetry is deliberate, see DESIGN.md.
var (
	ListRoles   = []models.Role{models.RoleMember}
	CreateRoles = []models.Role{models.RoleAdmin}
	UpdateRoles = []models.Role{models.RoleAdmin, models.RoleManager}
	DeleteRoles = []models.Role{models.RoleAdmin}
	AssignRoles = []models.Role{models.RoleAdmin, models.RoleManager}

	// User administration: admins create accounts, admins and managers
	// browse them when picking assignees.
	ManageUserRoles = []models.Role{models.RoleAdmin}
	ListUserRoles   = []models.Role{models.RoleAdmin, models.RoleManager}
)
