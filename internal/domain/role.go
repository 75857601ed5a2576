package domain

import "slices"

// Role роль сотрудника салона
type Role string

const (
	RoleOwner Role = "owner"
	RoleStaff Role = "staff"
)

// ParseRole returns the role for a stored value. Unknown or empty values fall back to staff.
func ParseRole(value string) Role {
	switch Role(value) {
	case RoleOwner:
		return RoleOwner
	default:
		return RoleStaff
	}
}

// Session authenticated caller
type Session struct {
	UserID string
	Role   Role
}

// Can reports whether the session role is one of allowed
func (s Session) Can(allowed ...Role) bool {
	return slices.Contains(allowed, s.Role)
}
