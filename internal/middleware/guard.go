// AngelaMos | 2026
// guard.go

package middleware

import (
	"net/http"

	"github.com/fintrack-dev/fintrack-api/internal/core"
	"github.com/fintrack-dev/fintrack-api/internal/rbac"
)

// Navigation targets for guard redirects, mirrored in the JSON error
// payload so clients know where to send the user.
const (
	LoginTarget        = "/login"
	UnauthorizedTarget = "/unauthorized"
)

// Guard turns an rbac.Requirement into route middleware. The check
// ordering lives in rbac.Check; this layer only maps decisions onto the
// wire: missing authentication is a 401 pointing at the login target,
// an authorization failure is a 403 pointing at the unauthorized
// target. Authorization failures are normal outcomes, not errors.
func Guard(req rbac.Requirement) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Keep a nil store out of the interface so rbac.Check sees
			// a plain nil for anonymous requests.
			var sess rbac.Session
			if store := GetSession(r.Context()); store != nil {
				sess = store
			}

			switch rbac.Check(sess, req) {
			case rbac.Grant:
				next.ServeHTTP(w, r)
			case rbac.RedirectLogin:
				core.JSONError(w, core.LoginRequiredError(LoginTarget))
			case rbac.RedirectUnauthorized:
				core.JSONError(w, core.AccessDeniedError(UnauthorizedTarget))
			}
		})
	}
}

func RequireAuth(next http.Handler) http.Handler {
	return Guard(rbac.Requirement{})(next)
}

func RequirePermission(perm rbac.Permission) func(http.Handler) http.Handler {
	return Guard(rbac.Requirement{Permission: perm})
}

func RequireAnyPermission(
	perms ...rbac.Permission,
) func(http.Handler) http.Handler {
	return Guard(rbac.Requirement{Permissions: perms})
}

func RequireAllPermissions(
	perms ...rbac.Permission,
) func(http.Handler) http.Handler {
	return Guard(rbac.Requirement{Permissions: perms, RequireAll: true})
}

func RequireMinimumRole(role rbac.Role) func(http.Handler) http.Handler {
	return Guard(rbac.Requirement{MinimumRole: rbac.MinRole(role)})
}
