package navigation

import (
	"github.com/vena/backend/internal/domain/identity"
	"github.com/vena/backend/internal/domain/shared"
)

// HasPermission decides whether the identity may open the view. Admins see
// everything, the dashboard is open to every authenticated user, and members
// are limited to their assigned view list. No identity means no access.
func HasPermission(user *identity.User, view shared.View) bool {
	if user == nil {
		return false
	}
	if user.Role == identity.RoleAdmin {
		return true
	}
	if view == shared.ViewDashboard {
		return true
	}
	return user.HasPermission(view)
}
