package staff

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleViewer   Role = "viewer"
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleViewer, RoleOperator, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

var roleHierarchy = map[Role]int{
	RoleViewer:   1,
	RoleOperator: 2,
	RoleAdmin:    3,
}

func (r Role) AtLeast(min Role) bool {
	level, ok := roleHierarchy[r]
	minLevel, minOK := roleHierarchy[min]
	return ok && minOK && level >= minLevel
}
