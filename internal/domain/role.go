package domain

// Role enumerates console roles. RoleNone means unauthenticated.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleClient Role = "client"
	RoleNone   Role = "none"
)

// ParseRole maps a stored string onto a legal role, falling back to RoleNone.
func ParseRole(value string) Role {
	switch Role(value) {
	case RoleAdmin, RoleClient, RoleNone:
		return Role(value)
	default:
		return RoleNone
	}
}
