// AngelaMos | 2026
// role.go

package rbac

// Role is a coarse privilege tier drawn from a fixed, closed set.
// Levels are ordered: a numerically smaller level carries greater or
// equal privilege. The set is closed; there are no dynamic roles.
type Role int

const (
	RoleUser       Role = 0
	RoleAdmin      Role = 10
	RoleOwner      Role = 20
	RoleAccountant Role = 30
	RoleSuperadmin Role = 40
	RoleGuest      Role = 90
)

// Catalog returns every declared role in level order.
func Catalog() []Role {
	return []Role{
		RoleUser,
		RoleAdmin,
		RoleOwner,
		RoleAccountant,
		RoleSuperadmin,
		RoleGuest,
	}
}

// ParseRole maps a numeric level back to a catalog role.
func ParseRole(level int) (Role, bool) {
	role := Role(level)
	return role, role.Valid()
}

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleOwner, RoleAccountant, RoleSuperadmin, RoleGuest:
		return true
	default:
		return false
	}
}

// Level exposes the numeric privilege level used for ordering.
func (r Role) Level() int {
	return int(r)
}

// AtLeast reports whether r meets or exceeds the required privilege.
// Smaller-or-equal level means sufficient privilege; the comparison is
// total over the catalog and reflexive.
func (r Role) AtLeast(required Role) bool {
	return int(r) <= int(required)
}

func (r Role) Label() string {
	switch r {
	case RoleUser:
		return "User"
	case RoleAdmin:
		return "Admin"
	case RoleOwner:
		return "Owner"
	case RoleAccountant:
		return "Accountant"
	case RoleSuperadmin:
		return "Super Admin"
	case RoleGuest:
		return "Guest"
	default:
		return "Unknown"
	}
}

func (r Role) String() string {
	return r.Label()
}
