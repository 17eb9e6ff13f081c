// AngelaMos | 2026
// auth.go

package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/fintrack-dev/fintrack-api/internal/core"
	"github.com/fintrack-dev/fintrack-api/internal/rbac"
	"github.com/fintrack-dev/fintrack-api/internal/session"
)

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UserRoleKey contextKey = "user_role"
	ClaimsKey   contextKey = "jwt_claims"
	SessionKey  contextKey = "auth_session"
)

type TokenVerifier interface {
	VerifyAccessToken(
		ctx context.Context,
		token string,
	) (*AccessTokenClaims, error)
}

type AccessTokenClaims struct {
	UserID       string
	Role         rbac.Role
	TokenVersion int
}

// Authenticator verifies the bearer token and installs a request-scoped
// session (identity plus derived permissions) for the route guards.
func Authenticator(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r)

			if token == "" {
				core.JSONError(
					w,
					core.UnauthorizedError("missing authorization token"),
				)
				return
			}

			claims, err := verifier.VerifyAccessToken(r.Context(), token)
			if err != nil {
				handleAuthError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(
				contextWithClaims(r.Context(), claims, token),
			))
		})
	}
}

// OptionalAuth attaches a session when a valid token is present but
// lets anonymous requests through untouched.
func OptionalAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r)

			if token != "" {
				claims, err := verifier.VerifyAccessToken(r.Context(), token)
				if err == nil {
					r = r.WithContext(
						contextWithClaims(r.Context(), claims, token),
					)
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func contextWithClaims(
	ctx context.Context,
	claims *AccessTokenClaims,
	token string,
) context.Context {
	sess := session.NewStore(nil)
	//nolint:errcheck // memory-backed storage cannot fail
	_ = sess.SetCredentials(ctx, session.Identity{
		ID:   claims.UserID,
		Role: claims.Role,
	}, token)

	ctx = context.WithValue(ctx, UserIDKey, claims.UserID)
	ctx = context.WithValue(ctx, UserRoleKey, claims.Role)
	ctx = context.WithValue(ctx, ClaimsKey, claims)
	ctx = context.WithValue(ctx, SessionKey, sess)
	return ctx
}

func ExtractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

func handleAuthError(w http.ResponseWriter, err error) {
	if core.IsAppError(err) {
		core.JSONError(w, err)
		return
	}

	switch {
	case errors.Is(err, core.ErrTokenExpired):
		core.JSONError(w, core.SessionExpiredError())
	case errors.Is(err, core.ErrTokenRevoked):
		core.JSONError(w, core.TokenRevokedError())
	case errors.Is(err, core.ErrTokenInvalid):
		core.JSONError(w, core.TokenInvalidError())
	default:
		core.JSONError(w, core.TokenInvalidError())
	}
}

func GetUserID(ctx context.Context) string {
	if id, ok := ctx.Value(UserIDKey).(string); ok {
		return id
	}
	return ""
}

// GetUserRole returns the session role and whether one is known.
func GetUserRole(ctx context.Context) (rbac.Role, bool) {
	if role, ok := ctx.Value(UserRoleKey).(rbac.Role); ok {
		return role, true
	}
	return 0, false
}

func GetClaims(ctx context.Context) *AccessTokenClaims {
	if claims, ok := ctx.Value(ClaimsKey).(*AccessTokenClaims); ok {
		return claims
	}
	return nil
}

// GetSession returns the request-scoped session, or nil for anonymous
// requests.
func GetSession(ctx context.Context) *session.Store {
	if sess, ok := ctx.Value(SessionKey).(*session.Store); ok {
		return sess
	}
	return nil
}

func IsAuthenticated(ctx context.Context) bool {
	return GetUserID(ctx) != ""
}
