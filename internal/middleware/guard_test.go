// AngelaMos | 2026
// guard_test.go

package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack-dev/fintrack-api/internal/rbac"
	"github.com/fintrack-dev/fintrack-api/internal/session"
)

type errorPayload struct {
	Success bool `json:"success"`
	Error   struct {
		Code     string `json:"code"`
		Message  string `json:"message"`
		Redirect string `json:"redirect"`
	} `json:"error"`
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func requestWithSession(t *testing.T, role rbac.Role) *http.Request {
	t.Helper()

	sess := session.NewStore(nil)
	err := sess.SetCredentials(context.Background(), session.Identity{
		ID:   "user-1",
		Role: role,
	}, "tok-1")
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/protected", nil)
	ctx := context.WithValue(r.Context(), SessionKey, sess)
	ctx = context.WithValue(ctx, UserIDKey, "user-1")
	ctx = context.WithValue(ctx, UserRoleKey, role)
	return r.WithContext(ctx)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorPayload {
	t.Helper()

	var payload errorPayload
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))
	return payload
}

func TestGuardAnonymousRedirectsLogin(t *testing.T) {
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/protected", nil)

	RequireAuth(okHandler()).ServeHTTP(rec, r)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	payload := decodeError(t, rec)
	assert.False(t, payload.Success)
	assert.Equal(t, "LOGIN_REQUIRED", payload.Error.Code)
	assert.Equal(t, LoginTarget, payload.Error.Redirect)
}

func TestGuardAuthenticatedPasses(t *testing.T) {
	rec := httptest.NewRecorder()
	r := requestWithSession(t, rbac.RoleGuest)

	RequireAuth(okHandler()).ServeHTTP(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGuardPermissionDenied(t *testing.T) {
	rec := httptest.NewRecorder()
	r := requestWithSession(t, rbac.RoleUser)

	RequirePermission(rbac.PermManageRoles)(okHandler()).ServeHTTP(rec, r)

	assert.Equal(t, http.StatusForbidden, rec.Code)

	payload := decodeError(t, rec)
	assert.Equal(t, "FORBIDDEN", payload.Error.Code)
	assert.Equal(t, UnauthorizedTarget, payload.Error.Redirect)
}

func TestGuardPermissionGranted(t *testing.T) {
	rec := httptest.NewRecorder()
	r := requestWithSession(t, rbac.RoleSuperadmin)

	RequirePermission(rbac.PermManageRoles)(okHandler()).ServeHTTP(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGuardMinimumRole(t *testing.T) {
	guarded := RequireMinimumRole(rbac.RoleAdmin)(okHandler())

	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, requestWithSession(t, rbac.RoleOwner))
	assert.Equal(t, http.StatusForbidden, rec.Code,
		"owner sits below the admin privilege bar")

	rec = httptest.NewRecorder()
	guarded.ServeHTTP(rec, requestWithSession(t, rbac.RoleAdmin))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	guarded.ServeHTTP(rec, requestWithSession(t, rbac.RoleUser))
	assert.Equal(t, http.StatusOK, rec.Code,
		"user level 0 outranks admin level 10")
}

func TestGuardAnyPermission(t *testing.T) {
	guarded := RequireAnyPermission(
		rbac.PermManageUsers,
		rbac.PermExportData,
	)(okHandler())

	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, requestWithSession(t, rbac.RoleAdmin))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	guarded.ServeHTTP(rec, requestWithSession(t, rbac.RoleGuest))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGuardAllPermissions(t *testing.T) {
	guarded := RequireAllPermissions(
		rbac.PermManageUsers,
		rbac.PermExportData,
	)(okHandler())

	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, requestWithSession(t, rbac.RoleOwner))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	guarded.ServeHTTP(rec, requestWithSession(t, rbac.RoleAdmin))
	assert.Equal(t, http.StatusForbidden, rec.Code,
		"admin has manage-users but not export")
}

// A session restored from a persisted token has no permissions until
// the identity fetch resolves; guarded routes must treat it as logged
// out instead of granting on the stale token.
func TestGuardUnresolvedRestoreRedirectsLogin(t *testing.T) {
	ctx := context.Background()
	storage := session.NewMemoryStorage()
	require.NoError(t, storage.Save(ctx, "persisted-token"))

	sess := session.NewStore(storage)
	found, err := sess.Restore(ctx)
	require.NoError(t, err)
	require.True(t, found)

	r := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r = r.WithContext(context.WithValue(r.Context(), SessionKey, sess))

	rec := httptest.NewRecorder()
	RequirePermission(rbac.PermViewDashboard)(okHandler()).ServeHTTP(rec, r)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "LOGIN_REQUIRED", decodeError(t, rec).Error.Code)
}

func TestGuardFirstFailureWins(t *testing.T) {
	guarded := Guard(rbac.Requirement{
		MinimumRole: rbac.MinRole(rbac.RoleAdmin),
		Permission:  rbac.PermManageRoles,
	})(okHandler())

	// Anonymous: the authentication gate decides, 401 not 403.
	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Authenticated but failing both later gates: 403.
	rec = httptest.NewRecorder()
	guarded.ServeHTTP(rec, requestWithSession(t, rbac.RoleGuest))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
