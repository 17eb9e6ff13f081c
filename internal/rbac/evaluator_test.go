// AngelaMos | 2026
// evaluator_test.go

package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeSession is a hand-rolled Session for decision-logic tests.
type fakeSession struct {
	authenticated bool
	permissions   *PermissionSet
	role          Role
	roleKnown     bool
}

func (f *fakeSession) Authenticated() bool         { return f.authenticated }
func (f *fakeSession) Permissions() *PermissionSet { return f.permissions }
func (f *fakeSession) CurrentRole() (Role, bool)   { return f.role, f.roleKnown }

func sessionFor(role Role) *fakeSession {
	perms := Derive(role)
	return &fakeSession{
		authenticated: true,
		permissions:   &perms,
		role:          role,
		roleKnown:     true,
	}
}

func TestHasPermission(t *testing.T) {
	eval := NewEvaluator(sessionFor(RoleAdmin))

	assert.True(t, eval.HasPermission(PermManageUsers))
	assert.False(t, eval.HasPermission(PermManageRoles))
	assert.False(t, eval.HasPermission(PermDeleteExpense))
}

func TestHasPermissionNilSession(t *testing.T) {
	eval := NewEvaluator(nil)
	assert.False(t, eval.HasPermission(PermViewDashboard))
}

func TestHasPermissionNilPermissions(t *testing.T) {
	eval := NewEvaluator(&fakeSession{authenticated: true})
	assert.False(t, eval.HasPermission(PermViewDashboard))
}

func TestHasAnyPermission(t *testing.T) {
	eval := NewEvaluator(sessionFor(RoleUser))

	assert.True(t, eval.HasAnyPermission(PermViewDashboard))
	assert.True(t, eval.HasAnyPermission(PermManageRoles, PermViewDashboard))
	assert.False(t, eval.HasAnyPermission(PermManageRoles, PermManageUsers))
}

func TestHasAnyPermissionEmptyListIsFalse(t *testing.T) {
	eval := NewEvaluator(sessionFor(RoleSuperadmin))
	assert.False(t, eval.HasAnyPermission())
}

func TestHasAllPermissions(t *testing.T) {
	eval := NewEvaluator(sessionFor(RoleOwner))

	assert.True(t, eval.HasAllPermissions(PermViewDashboard, PermManageUsers))
	assert.False(t, eval.HasAllPermissions(PermManageUsers, PermManageRoles))
}

func TestHasAllPermissionsEmptyListIsTrue(t *testing.T) {
	// Vacuous truth holds for every session, even one that has nothing.
	assert.True(t, NewEvaluator(sessionFor(RoleGuest)).HasAllPermissions())
	assert.True(t, NewEvaluator(&fakeSession{}).HasAllPermissions())
	assert.True(t, NewEvaluator(nil).HasAllPermissions())
}

func TestHasMinimumRole(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		required Role
		want     bool
	}{
		{"equal role passes", RoleAdmin, RoleAdmin, true},
		{"stronger role passes", RoleSuperadmin, RoleGuest, true},
		{"user passes guest bar", RoleUser, RoleGuest, true},
		{"guest fails user bar", RoleGuest, RoleUser, false},
		{"accountant fails admin bar", RoleAccountant, RoleAdmin, false},
		{"admin passes owner bar", RoleAdmin, RoleOwner, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval := NewEvaluator(sessionFor(tt.role))
			assert.Equal(t, tt.want, eval.HasMinimumRole(tt.required))
		})
	}
}

func TestHasMinimumRoleUnknownRole(t *testing.T) {
	eval := NewEvaluator(&fakeSession{authenticated: true, roleKnown: false})
	assert.False(t, eval.HasMinimumRole(RoleGuest))
}

func TestHasMinimumRoleNilSession(t *testing.T) {
	eval := NewEvaluator(nil)
	assert.False(t, eval.HasMinimumRole(RoleGuest))
}
