// AngelaMos | 2026
// permission_test.go

package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveTable(t *testing.T) {
	tests := []struct {
		role    Role
		granted []Permission
		denied  []Permission
	}{
		{
			role:    RoleSuperadmin,
			granted: AllPermissions(),
		},
		{
			role: RoleOwner,
			granted: []Permission{
				PermViewDashboard, PermAddExpense, PermEditExpense,
				PermDeleteExpense, PermViewReports, PermManageUsers,
				PermViewAIInsights, PermExportData,
			},
			denied: []Permission{PermManageRoles},
		},
		{
			role: RoleAccountant,
			granted: []Permission{
				PermViewDashboard, PermAddExpense, PermEditExpense,
				PermDeleteExpense, PermViewReports, PermViewAIInsights,
				PermExportData,
			},
			denied: []Permission{PermManageUsers, PermManageRoles},
		},
		{
			role: RoleAdmin,
			granted: []Permission{
				PermViewDashboard, PermAddExpense, PermEditExpense,
				PermViewReports, PermManageUsers, PermViewAIInsights,
			},
			denied: []Permission{
				PermDeleteExpense, PermManageRoles, PermExportData,
			},
		},
		{
			role: RoleUser,
			granted: []Permission{
				PermViewDashboard, PermAddExpense, PermEditExpense,
				PermViewReports, PermViewAIInsights,
			},
			denied: []Permission{
				PermDeleteExpense, PermManageUsers, PermManageRoles,
				PermExportData,
			},
		},
		{
			role: RoleGuest,
			granted: []Permission{
				PermViewDashboard, PermViewReports, PermViewAIInsights,
			},
			denied: []Permission{
				PermAddExpense, PermEditExpense, PermDeleteExpense,
				PermManageUsers, PermManageRoles, PermExportData,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.role.Label(), func(t *testing.T) {
			set := Derive(tt.role)
			for _, perm := range tt.granted {
				assert.True(t, set.Has(perm), "%s should grant %s", tt.role, perm)
			}
			for _, perm := range tt.denied {
				assert.False(t, set.Has(perm), "%s should deny %s", tt.role, perm)
			}
		})
	}
}

func TestDeriveUnknownRoleGrantsNothing(t *testing.T) {
	for _, level := range []int{-1, 5, 15, 50, 100} {
		set := Derive(Role(level))
		for _, perm := range AllPermissions() {
			assert.False(t, set.Has(perm),
				"level %d should not grant %s", level, perm)
		}
	}
}

func TestDeriveIsPure(t *testing.T) {
	first := Derive(RoleAdmin)
	second := Derive(RoleAdmin)
	assert.Equal(t, first, second)
}

func TestHasNilSet(t *testing.T) {
	var set *PermissionSet
	for _, perm := range AllPermissions() {
		assert.False(t, set.Has(perm))
	}
}

func TestHasUnknownPermission(t *testing.T) {
	set := Derive(RoleSuperadmin)
	assert.False(t, set.Has(Permission("canDoAnything")))
	assert.False(t, set.Has(Permission("")))
}

func TestZeroValueGrantsNothing(t *testing.T) {
	var set PermissionSet
	for _, perm := range AllPermissions() {
		assert.False(t, set.Has(perm))
	}
}
