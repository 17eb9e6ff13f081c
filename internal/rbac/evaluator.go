// AngelaMos | 2026
// evaluator.go

package rbac

// Session is the evaluator's read-only view of the current session.
// Implemented by session.Store; kept here so the decision logic has no
// dependency on where session state lives.
type Session interface {
	Authenticated() bool
	Permissions() *PermissionSet
	CurrentRole() (Role, bool)
}

// Evaluator answers permission and role queries over a session. Every
// query is total: missing permissions or an unknown role degrade to a
// deny, never an error.
type Evaluator struct {
	sess Session
}

func NewEvaluator(sess Session) Evaluator {
	return Evaluator{sess: sess}
}

func (e Evaluator) HasPermission(perm Permission) bool {
	return e.permissions().Has(perm)
}

// HasAnyPermission is true when at least one key is granted. An empty
// key list is false.
func (e Evaluator) HasAnyPermission(perms ...Permission) bool {
	set := e.permissions()
	for _, perm := range perms {
		if set.Has(perm) {
			return true
		}
	}
	return false
}

// HasAllPermissions is true only when every key is granted. An empty
// key list is vacuously true, for all sessions including
// unauthenticated ones.
func (e Evaluator) HasAllPermissions(perms ...Permission) bool {
	set := e.permissions()
	for _, perm := range perms {
		if !set.Has(perm) {
			return false
		}
	}
	return true
}

// HasMinimumRole is true iff the session's role meets or exceeds the
// required privilege level. False when no role is known.
func (e Evaluator) HasMinimumRole(required Role) bool {
	if e.sess == nil {
		return false
	}

	role, ok := e.sess.CurrentRole()
	if !ok {
		return false
	}

	return role.AtLeast(required)
}

func (e Evaluator) permissions() *PermissionSet {
	if e.sess == nil {
		return nil
	}
	return e.sess.Permissions()
}
