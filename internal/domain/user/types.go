package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role is the requester role attached to every engine call. The engine holds
// no session state; identity and role arrive as opaque, verified claims.
type Role string

const (
	RoleFaculty Role = "faculty"
	RoleClub    Role = "club"
	RoleAdmin   Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleFaculty, RoleClub, RoleAdmin:
		return true
	default:
		return false
	}
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
