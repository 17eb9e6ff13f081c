// AngelaMos | 2026
// store_test.go

package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack-dev/fintrack-api/internal/rbac"
)

func testIdentity(role rbac.Role) Identity {
	return Identity{
		ID:        "9f6c0f3e-0000-4000-8000-000000000001",
		Email:     "casey@example.com",
		Username:  "casey",
		FirstName: "Casey",
		LastName:  "Nguyen",
		Role:      role,
	}
}

func TestSetCredentials(t *testing.T) {
	ctx := context.Background()
	store := NewStore(nil)

	require.NoError(t, store.SetCredentials(ctx, testIdentity(rbac.RoleAdmin), "tok-1"))

	assert.True(t, store.Authenticated())

	token, ok := store.Token()
	assert.True(t, ok)
	assert.Equal(t, "tok-1", token)

	identity := store.Identity()
	require.NotNil(t, identity)
	assert.Equal(t, "casey", identity.Username)

	perms := store.Permissions()
	require.NotNil(t, perms)
	assert.True(t, perms.Has(rbac.PermManageUsers))
	assert.False(t, perms.Has(rbac.PermManageRoles))

	role, ok := store.CurrentRole()
	assert.True(t, ok)
	assert.Equal(t, rbac.RoleAdmin, role)
}

func TestSetCredentialsRejectsEmptyToken(t *testing.T) {
	store := NewStore(nil)

	err := store.SetCredentials(context.Background(), testIdentity(rbac.RoleUser), "")
	require.Error(t, err)
	assert.False(t, store.Authenticated())
}

func TestSetCredentialsClearsError(t *testing.T) {
	ctx := context.Background()
	store := NewStore(nil)

	store.SetError("invalid email or password")
	require.NoError(t, store.SetCredentials(ctx, testIdentity(rbac.RoleUser), "tok-1"))

	assert.Empty(t, store.LastError())
}

type failingStorage struct {
	saveErr error
}

func (f *failingStorage) Save(context.Context, string) error { return f.saveErr }
func (f *failingStorage) Load(context.Context) (string, error) {
	return "", nil
}
func (f *failingStorage) Clear(context.Context) error { return nil }

func TestSetCredentialsPersistFailureLeavesSessionUntouched(t *testing.T) {
	store := NewStore(&failingStorage{saveErr: errors.New("disk full")})

	err := store.SetCredentials(
		context.Background(),
		testIdentity(rbac.RoleOwner),
		"tok-1",
	)
	require.Error(t, err)

	assert.False(t, store.Authenticated())
	assert.Nil(t, store.Identity())
	assert.Nil(t, store.Permissions())
}

func TestLogoutRoundTrip(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	store := NewStore(storage)

	require.NoError(t, store.SetCredentials(ctx, testIdentity(rbac.RoleOwner), "tok-1"))
	require.NoError(t, store.Logout(ctx))

	snap := store.Snapshot()
	assert.False(t, snap.IsAuthenticated)
	assert.Empty(t, snap.Token)
	assert.Nil(t, snap.Identity)
	assert.Nil(t, snap.Permissions)
	assert.Empty(t, snap.LastError)

	persisted, err := storage.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestLogoutIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewStore(nil)

	require.NoError(t, store.Logout(ctx))
	require.NoError(t, store.Logout(ctx))
	assert.False(t, store.Authenticated())
}

func TestRestoreOptimistic(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	require.NoError(t, storage.Save(ctx, "persisted-token"))

	store := NewStore(storage)
	found, err := store.Restore(ctx)
	require.NoError(t, err)
	assert.True(t, found)

	// Authenticated on trust, but nothing grantable yet.
	assert.True(t, store.Authenticated())
	assert.Nil(t, store.Identity())
	assert.Nil(t, store.Permissions())

	_, ok := store.CurrentRole()
	assert.False(t, ok)
}

func TestRestoreNothingPersisted(t *testing.T) {
	store := NewStore(nil)

	found, err := store.Restore(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
	assert.False(t, store.Authenticated())
}

func TestResolveIdentityCompletesRestore(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	require.NoError(t, storage.Save(ctx, "persisted-token"))

	store := NewStore(storage)
	_, err := store.Restore(ctx)
	require.NoError(t, err)

	store.ResolveIdentity(testIdentity(rbac.RoleAccountant))

	identity := store.Identity()
	require.NotNil(t, identity)
	assert.Equal(t, rbac.RoleAccountant, identity.Role)

	perms := store.Permissions()
	require.NotNil(t, perms)
	assert.True(t, perms.Has(rbac.PermDeleteExpense))
	assert.False(t, perms.Has(rbac.PermManageUsers))
}

func TestResolveIdentityAfterLogoutIsNoop(t *testing.T) {
	ctx := context.Background()
	store := NewStore(nil)

	require.NoError(t, store.SetCredentials(ctx, testIdentity(rbac.RoleUser), "tok-1"))
	require.NoError(t, store.Logout(ctx))

	store.ResolveIdentity(testIdentity(rbac.RoleSuperadmin))

	assert.Nil(t, store.Identity())
	assert.Nil(t, store.Permissions())
	assert.False(t, store.Authenticated())
}

func TestErrorDoesNotTouchAuthState(t *testing.T) {
	ctx := context.Background()
	store := NewStore(nil)

	require.NoError(t, store.SetCredentials(ctx, testIdentity(rbac.RoleUser), "tok-1"))

	store.SetError("token refresh failed")
	assert.Equal(t, "token refresh failed", store.LastError())
	assert.True(t, store.Authenticated())
	assert.NotNil(t, store.Permissions())

	store.ClearError()
	assert.Empty(t, store.LastError())
	assert.True(t, store.Authenticated())
}

func TestConcurrentLoginsLastWriteWins(t *testing.T) {
	ctx := context.Background()
	store := NewStore(nil)

	var wg sync.WaitGroup
	for _, role := range rbac.Catalog() {
		wg.Add(1)
		go func(r rbac.Role) {
			defer wg.Done()
			identity := testIdentity(r)
			//nolint:errcheck // memory storage cannot fail
			_ = store.SetCredentials(ctx, identity, "tok-concurrent")
		}(role)
	}
	wg.Wait()

	// Whichever login landed last, identity and permissions must agree.
	snap := store.Snapshot()
	require.NotNil(t, snap.Identity)
	require.NotNil(t, snap.Permissions)
	expected := rbac.Derive(snap.Identity.Role)
	assert.Equal(t, &expected, snap.Permissions)
}

func TestReadersGetCopies(t *testing.T) {
	ctx := context.Background()
	store := NewStore(nil)
	require.NoError(t, store.SetCredentials(ctx, testIdentity(rbac.RoleUser), "tok-1"))

	perms := store.Permissions()
	perms.CanManageRoles = true

	fresh := store.Permissions()
	assert.False(t, fresh.CanManageRoles, "mutating a returned copy must not leak back")

	identity := store.Identity()
	identity.Username = "mallory"
	assert.Equal(t, "casey", store.Identity().Username)
}
