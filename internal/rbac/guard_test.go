// AngelaMos | 2026
// guard_test.go

package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckUnauthenticated(t *testing.T) {
	tests := []struct {
		name string
		sess Session
	}{
		{"nil session", nil},
		{"not authenticated", &fakeSession{}},
		{
			// Token present, identity fetch not finished yet.
			"restored without permissions",
			&fakeSession{authenticated: true, permissions: nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Check(tt.sess, Requirement{Permission: PermViewDashboard})
			assert.Equal(t, RedirectLogin, got)
		})
	}
}

func TestCheckNoRequirements(t *testing.T) {
	// Authentication alone suffices when no gates are set.
	assert.Equal(t, Grant, Check(sessionFor(RoleGuest), Requirement{}))
	assert.Equal(t, RedirectLogin, Check(&fakeSession{}, Requirement{}))
}

func TestCheckMinimumRole(t *testing.T) {
	assert.Equal(t, Grant, Check(sessionFor(RoleAdmin), Requirement{
		MinimumRole: MinRole(RoleAdmin),
	}))
	assert.Equal(t, RedirectUnauthorized, Check(sessionFor(RoleGuest), Requirement{
		MinimumRole: MinRole(RoleUser),
	}))
}

func TestCheckSinglePermission(t *testing.T) {
	assert.Equal(t, Grant, Check(sessionFor(RoleOwner), Requirement{
		Permission: PermManageUsers,
	}))
	assert.Equal(t, RedirectUnauthorized, Check(sessionFor(RoleOwner), Requirement{
		Permission: PermManageRoles,
	}))
}

func TestCheckPermissionList(t *testing.T) {
	anyOf := Requirement{
		Permissions: []Permission{PermManageUsers, PermExportData},
	}
	allOf := Requirement{
		Permissions: []Permission{PermManageUsers, PermExportData},
		RequireAll:  true,
	}

	// Admin has manage-users but not export.
	assert.Equal(t, Grant, Check(sessionFor(RoleAdmin), anyOf))
	assert.Equal(t, RedirectUnauthorized, Check(sessionFor(RoleAdmin), allOf))

	// Owner has both.
	assert.Equal(t, Grant, Check(sessionFor(RoleOwner), allOf))

	// Guest has neither.
	assert.Equal(t, RedirectUnauthorized, Check(sessionFor(RoleGuest), anyOf))
}

func TestCheckEmptyListSemantics(t *testing.T) {
	// An empty Permissions slice is an absent gate, not an empty
	// any-of query, so it does not deny.
	assert.Equal(t, Grant, Check(sessionFor(RoleGuest), Requirement{
		Permissions: []Permission{},
	}))
	assert.Equal(t, Grant, Check(sessionFor(RoleGuest), Requirement{
		Permissions: []Permission{},
		RequireAll:  true,
	}))
}

// TestCheckOrdering pins the gate order: authentication, then role,
// then single permission, then the list. The first failure decides the
// outcome.
func TestCheckOrdering(t *testing.T) {
	req := Requirement{
		MinimumRole: MinRole(RoleUser),
		Permission:  PermManageRoles,
	}

	// Unauthenticated loses to the auth gate even though the role and
	// permission gates would also fail.
	assert.Equal(t, RedirectLogin, Check(&fakeSession{}, req))

	// Guest fails the role gate before the permission gate is reached;
	// both produce the same redirect, vacuously ordered.
	assert.Equal(t, RedirectUnauthorized, Check(sessionFor(RoleGuest), req))

	// User passes the role gate, then fails the permission gate.
	assert.Equal(t, RedirectUnauthorized, Check(sessionFor(RoleUser), req))

	// Superadmin passes everything.
	assert.Equal(t, Grant, Check(sessionFor(RoleSuperadmin), req))
}

func TestCheckCombinedGates(t *testing.T) {
	req := Requirement{
		MinimumRole: MinRole(RoleOwner),
		Permission:  PermViewReports,
		Permissions: []Permission{PermExportData},
	}

	assert.Equal(t, Grant, Check(sessionFor(RoleOwner), req))

	// Admin clears the role bar but cannot export.
	assert.Equal(t, RedirectUnauthorized, Check(sessionFor(RoleAdmin), req))

	// Accountant could export, but fails the role bar first.
	assert.Equal(t, RedirectUnauthorized, Check(sessionFor(RoleAccountant), req))
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "grant", Grant.String())
	assert.Equal(t, "redirect-login", RedirectLogin.String())
	assert.Equal(t, "redirect-unauthorized", RedirectUnauthorized.String())
	assert.Equal(t, "unknown", Decision(99).String())
}
