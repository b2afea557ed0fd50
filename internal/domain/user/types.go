package user

type Role string

const (
	RoleDonor        Role = "donor"
	RoleOrganization Role = "organization"
	RoleAdmin        Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleDonor, RoleOrganization, RoleAdmin:
		return true
	default:
		return false
	}
}

// Allows reports whether r satisfies a route gated on any of roles. Admin passes every gate.
func (r Role) Allows(roles ...Role) bool {
	if r == RoleAdmin {
		return true
	}
	for _, want := range roles {
		if r == want {
			return true
		}
	}
	return false
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
