package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleManager    Role = "manager"
	RoleOwner      Role = "owner"
	RoleSuperAdmin Role = "super_admin"
)

var roleRank = map[Role]int{
	RoleManager:    1,
	RoleOwner:      2,
	RoleSuperAdmin: 3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r ranks at or above min.
func (r Role) AtLeast(min Role) bool {
	have, ok := roleRank[r]
	if !ok {
		return false
	}
	want, ok := roleRank[min]
	return ok && have >= want
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
