// AngelaMos | 2026
// permission.go

package rbac

// Permission names a single boolean capability.
type Permission string

const (
	PermViewDashboard  Permission = "canViewDashboard"
	PermAddExpense     Permission = "canAddExpense"
	PermEditExpense    Permission = "canEditExpense"
	PermDeleteExpense  Permission = "canDeleteExpense"
	PermViewReports    Permission = "canViewReports"
	PermManageUsers    Permission = "canManageUsers"
	PermManageRoles    Permission = "canManageRoles"
	PermViewAIInsights Permission = "canViewAIInsights"
	PermExportData     Permission = "canExportData"
)

// AllPermissions lists every capability in declaration order.
func AllPermissions() []Permission {
	return []Permission{
		PermViewDashboard,
		PermAddExpense,
		PermEditExpense,
		PermDeleteExpense,
		PermViewReports,
		PermManageUsers,
		PermManageRoles,
		PermViewAIInsights,
		PermExportData,
	}
}

// PermissionSet is the full record of capability flags for a session.
// The zero value grants nothing.
type PermissionSet struct {
	CanViewDashboard  bool `json:"canViewDashboard"`
	CanAddExpense     bool `json:"canAddExpense"`
	CanEditExpense    bool `json:"canEditExpense"`
	CanDeleteExpense  bool `json:"canDeleteExpense"`
	CanViewReports    bool `json:"canViewReports"`
	CanManageUsers    bool `json:"canManageUsers"`
	CanManageRoles    bool `json:"canManageRoles"`
	CanViewAIInsights bool `json:"canViewAIInsights"`
	CanExportData     bool `json:"canExportData"`
}

// Has reports whether the set grants the named capability. Unknown
// names are never granted.
func (p *PermissionSet) Has(perm Permission) bool {
	if p == nil {
		return false
	}

	switch perm {
	case PermViewDashboard:
		return p.CanViewDashboard
	case PermAddExpense:
		return p.CanAddExpense
	case PermEditExpense:
		return p.CanEditExpense
	case PermDeleteExpense:
		return p.CanDeleteExpense
	case PermViewReports:
		return p.CanViewReports
	case PermManageUsers:
		return p.CanManageUsers
	case PermManageRoles:
		return p.CanManageRoles
	case PermViewAIInsights:
		return p.CanViewAIInsights
	case PermExportData:
		return p.CanExportData
	default:
		return false
	}
}

// Derive maps a role to its permission set. Total and pure: every
// catalog role has a defined row, anything else falls through to the
// all-false set. The mapping is a table, not a threshold function:
// flags are not monotonic in the role level (an accountant may delete
// expenses, an admin may not).
func Derive(role Role) PermissionSet {
	switch role {
	case RoleSuperadmin:
		return PermissionSet{
			CanViewDashboard:  true,
			CanAddExpense:     true,
			CanEditExpense:    true,
			CanDeleteExpense:  true,
			CanViewReports:    true,
			CanManageUsers:    true,
			CanManageRoles:    true,
			CanViewAIInsights: true,
			CanExportData:     true,
		}
	case RoleOwner:
		return PermissionSet{
			CanViewDashboard:  true,
			CanAddExpense:     true,
			CanEditExpense:    true,
			CanDeleteExpense:  true,
			CanViewReports:    true,
			CanManageUsers:    true,
			CanManageRoles:    false,
			CanViewAIInsights: true,
			CanExportData:     true,
		}
	case RoleAccountant:
		return PermissionSet{
			CanViewDashboard:  true,
			CanAddExpense:     true,
			CanEditExpense:    true,
			CanDeleteExpense:  true,
			CanViewReports:    true,
			CanManageUsers:    false,
			CanManageRoles:    false,
			CanViewAIInsights: true,
			CanExportData:     true,
		}
	case RoleAdmin:
		return PermissionSet{
			CanViewDashboard:  true,
			CanAddExpense:     true,
			CanEditExpense:    true,
			CanDeleteExpense:  false,
			CanViewReports:    true,
			CanManageUsers:    true,
			CanManageRoles:    false,
			CanViewAIInsights: true,
			CanExportData:     false,
		}
	case RoleUser:
		return PermissionSet{
			CanViewDashboard:  true,
			CanAddExpense:     true,
			CanEditExpense:    true,
			CanDeleteExpense:  false,
			CanViewReports:    true,
			CanManageUsers:    false,
			CanManageRoles:    false,
			CanViewAIInsights: true,
			CanExportData:     false,
		}
	case RoleGuest:
		return PermissionSet{
			CanViewDashboard:  true,
			CanAddExpense:     false,
			CanEditExpense:    false,
			CanDeleteExpense:  false,
			CanViewReports:    true,
			CanManageUsers:    false,
			CanManageRoles:    false,
			CanViewAIInsights: true,
			CanExportData:     false,
		}
	default:
		return PermissionSet{}
	}
}
