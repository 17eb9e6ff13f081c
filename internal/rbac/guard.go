// AngelaMos | 2026
// guard.go

package rbac

// Requirement describes the gates a route guard applies to one access
// check. Every field is optional and independently combinable; an unset
// gate is skipped entirely.
type Requirement struct {
	// MinimumRole, when set, requires the session role to meet or
	// exceed this privilege level.
	MinimumRole *Role

	// Permission, when non-empty, requires this single capability.
	Permission Permission

	// Permissions, when non-empty, requires all of the listed
	// capabilities if RequireAll is set, otherwise at least one.
	Permissions []Permission
	RequireAll  bool
}

// MinRole is a convenience for building a Requirement literal.
func MinRole(r Role) *Role {
	return &r
}

// Decision is a guard's terminal outcome for a single access check.
type Decision int

const (
	// Grant allows the protected capability.
	Grant Decision = iota
	// RedirectLogin sends the caller to the login target.
	RedirectLogin
	// RedirectUnauthorized sends the caller to the unauthorized target.
	RedirectUnauthorized
)

func (d Decision) String() string {
	switch d {
	case Grant:
		return "grant"
	case RedirectLogin:
		return "redirect-login"
	case RedirectUnauthorized:
		return "redirect-unauthorized"
	default:
		return "unknown"
	}
}

// Check evaluates the guard state machine in strict order: the
// authentication check first, then the role gate, then the single
// permission gate, then the permission list gate. The first failing
// check wins and no later checks run.
//
// Authentication here requires a resolved permission set, not just a
// token: a session restored optimistically from a persisted token has
// isAuthenticated set with nil permissions, and must be treated as
// unauthenticated until the identity fetch completes.
func Check(sess Session, req Requirement) Decision {
	if sess == nil || !sess.Authenticated() || sess.Permissions() == nil {
		return RedirectLogin
	}

	eval := NewEvaluator(sess)

	if req.MinimumRole != nil && !eval.HasMinimumRole(*req.MinimumRole) {
		return RedirectUnauthorized
	}

	if req.Permission != "" && !eval.HasPermission(req.Permission) {
		return RedirectUnauthorized
	}

	if len(req.Permissions) > 0 {
		ok := eval.HasAnyPermission(req.Permissions...)
		if req.RequireAll {
			ok = eval.HasAllPermissions(req.Permissions...)
		}
		if !ok {
			return RedirectUnauthorized
		}
	}

	return Grant
}
