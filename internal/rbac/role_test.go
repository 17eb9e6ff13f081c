// AngelaMos | 2026
// role_test.go

package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name  string
		level int
		want  Role
		ok    bool
	}{
		{"user", 0, RoleUser, true},
		{"admin", 10, RoleAdmin, true},
		{"owner", 20, RoleOwner, true},
		{"accountant", 30, RoleAccountant, true},
		{"superadmin", 40, RoleSuperadmin, true},
		{"guest", 90, RoleGuest, true},
		{"between levels", 15, Role(15), false},
		{"negative", -1, Role(-1), false},
		{"large", 1000, Role(1000), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseRole(tt.level)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestAtLeastReflexive(t *testing.T) {
	for _, r := range Catalog() {
		assert.True(t, r.AtLeast(r), "role %s must satisfy itself", r)
	}
}

func TestAtLeastOrdering(t *testing.T) {
	// Smaller level means more privilege.
	assert.True(t, RoleUser.AtLeast(RoleGuest))
	assert.True(t, RoleSuperadmin.AtLeast(RoleGuest))
	assert.True(t, RoleAdmin.AtLeast(RoleOwner))

	assert.False(t, RoleGuest.AtLeast(RoleUser))
	assert.False(t, RoleGuest.AtLeast(RoleSuperadmin))
	assert.False(t, RoleAccountant.AtLeast(RoleAdmin))
}

func TestAtLeastTransitive(t *testing.T) {
	catalog := Catalog()
	for _, a := range catalog {
		for _, b := range catalog {
			for _, c := range catalog {
				if a.AtLeast(b) && b.AtLeast(c) {
					assert.True(t, a.AtLeast(c),
						"%s >= %s and %s >= %s but not %s >= %s",
						a, b, b, c, a, c)
				}
			}
		}
	}
}

func TestRoleLabel(t *testing.T) {
	require.Equal(t, "User", RoleUser.Label())
	require.Equal(t, "Admin", RoleAdmin.Label())
	require.Equal(t, "Owner", RoleOwner.Label())
	require.Equal(t, "Accountant", RoleAccountant.Label())
	require.Equal(t, "Super Admin", RoleSuperadmin.Label())
	require.Equal(t, "Guest", RoleGuest.Label())
	require.Equal(t, "Unknown", Role(55).Label())
}

func TestCatalogAllValid(t *testing.T) {
	for _, r := range Catalog() {
		assert.True(t, r.Valid())
	}
}
