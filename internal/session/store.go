// AngelaMos | 2026
// store.go

package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/fintrack-dev/fintrack-api/internal/rbac"
)

// Identity is the authenticated user as the session sees it. Replaced
// wholesale on login, cleared wholesale on logout.
type Identity struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Role        rbac.Role `json:"role"`
}

// Snapshot is a consistent point-in-time copy of the session state.
type Snapshot struct {
	Identity        *Identity
	Token           string
	IsAuthenticated bool
	Permissions     *rbac.PermissionSet
	LastError       string
}

// Store holds the current session: identity, bearer token, and the
// permission set derived from the identity's role. Single writer, many
// readers; every mutation is atomic from a reader's perspective, so no
// reader ever observes an identity with nil permissions.
//
// Invariants: IsAuthenticated == (token present); permissions are
// non-nil exactly when the identity is. The one sanctioned exception is
// the optimistic Restore window, where a persisted token is trusted
// before the identity fetch resolves.
type Store struct {
	mu          sync.RWMutex
	storage     TokenStorage
	identity    *Identity
	token       string
	permissions *rbac.PermissionSet
	lastError   string
}

func NewStore(storage TokenStorage) *Store {
	if storage == nil {
		storage = NewMemoryStorage()
	}
	return &Store{storage: storage}
}

// SetCredentials replaces the session with the given identity and
// token, deriving the permission set from the identity's role and
// persisting the token. The persisted write happens first: if it fails
// the in-memory session is left untouched, so there is never a login
// without a matching durable token.
func (s *Store) SetCredentials(
	ctx context.Context,
	identity Identity,
	token string,
) error {
	if token == "" {
		return fmt.Errorf("set credentials: empty token")
	}

	if err := s.storage.Save(ctx, token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}

	perms := rbac.Derive(identity.Role)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = &identity
	s.token = token
	s.permissions = &perms
	s.lastError = ""

	return nil
}

// Logout clears the session and removes the persisted token.
// Idempotent: logging out an empty session is a no-op.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	alreadyOut := s.token == "" && s.identity == nil
	s.identity = nil
	s.token = ""
	s.permissions = nil
	s.lastError = ""
	s.mu.Unlock()

	if alreadyOut {
		return nil
	}

	if err := s.storage.Clear(ctx); err != nil {
		return fmt.Errorf("clear persisted token: %w", err)
	}

	return nil
}

// Restore hydrates the session from a previously persisted token, if
// any. It optimistically marks the session authenticated while leaving
// identity and permissions nil; callers resolve the identity with an
// external fetch and either ResolveIdentity or Logout with the result.
// Reports whether a token was found.
func (s *Store) Restore(ctx context.Context) (bool, error) {
	token, err := s.storage.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("load persisted token: %w", err)
	}
	if token == "" {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.identity = nil
	s.permissions = nil

	return true, nil
}

// ResolveIdentity completes a Restore once the external identity fetch
// succeeds. A no-op if the session was logged out in the meantime.
func (s *Store) ResolveIdentity(identity Identity) {
	perms := rbac.Derive(identity.Role)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" {
		return
	}

	s.identity = &identity
	s.permissions = &perms
}

// SetError records the last auth-related error message. Does not touch
// the authentication state.
func (s *Store) SetError(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = message
}

func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = ""
}

func (s *Store) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

func (s *Store) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// Identity returns a copy of the current identity, or nil.
func (s *Store) Identity() *Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.identity == nil {
		return nil
	}
	identity := *s.identity
	return &identity
}

// Permissions returns a copy of the derived permission set, or nil
// before authentication resolves.
func (s *Store) Permissions() *rbac.PermissionSet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.permissions == nil {
		return nil
	}
	perms := *s.permissions
	return &perms
}

// CurrentRole reports the session's role, if an identity is known.
func (s *Store) CurrentRole() (rbac.Role, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.identity == nil {
		return 0, false
	}
	return s.identity.Role, true
}

// Snapshot returns a consistent copy of the whole session state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Token:           s.token,
		IsAuthenticated: s.token != "",
		LastError:       s.lastError,
	}
	if s.identity != nil {
		identity := *s.identity
		snap.Identity = &identity
	}
	if s.permissions != nil {
		perms := *s.permissions
		snap.Permissions = &perms
	}
	return snap
}

var _ rbac.Session = (*Store)(nil)
