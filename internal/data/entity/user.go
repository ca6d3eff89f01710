package entity

type UserRole string

const (
	RoleUser      UserRole = "user"
	RoleModerator UserRole = "moderator"
	RoleAdmin     UserRole = "admin"
)

// ValidRole reports whether s names a known role.
func ValidRole(s string) bool {
	switch UserRole(s) {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	Base
	Username  string   `db:"username"`
	Email     string   `db:"email"`
	Role      UserRole `db:"role"`
	Bio       *string  `db:"bio"`
	FirstName *string  `db:"first_name"`
	LastName  *string  `db:"last_name"`
}
