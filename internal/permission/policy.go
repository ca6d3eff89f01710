// Package permission holds the role-based authorization rules as pure
// functions, independent of transport and storage.
package permission

import (
	"reviewhub/internal/data/entity"

	"github.com/google/uuid"
)

// rank orders roles by privilege. Unknown roles rank lowest.
func rank(role entity.UserRole) int {
	switch role {
	case entity.RoleAdmin:
		return 3
	case entity.RoleModerator:
		return 2
	case entity.RoleUser:
		return 1
	default:
		return 0
	}
}

// IsAtLeast reports whether role carries at least the privilege of min.
func IsAtLeast(role, min entity.UserRole) bool {
	return rank(role) >= rank(min)
}

// CanManageUsers gates the /users admin CRUD surface.
func CanManageUsers(role entity.UserRole) bool {
	return role == entity.RoleAdmin
}

// CanManageCatalog gates writes to categories, genres and titles.
func CanManageCatalog(role entity.UserRole) bool {
	return role == entity.RoleAdmin
}

// CanModifyContribution decides update/delete on a review or comment:
// the author, a moderator, or an admin.
func CanModifyContribution(role entity.UserRole, authorID, actorID uuid.UUID) bool {
	if actorID == authorID {
		return true
	}
	return IsAtLeast(role, entity.RoleModerator)
}

// CanSetRole gates changes to any user's role field, including one's own.
func CanSetRole(role entity.UserRole) bool {
	return role == entity.RoleAdmin
}
