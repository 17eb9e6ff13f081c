// AngelaMos | 2026
// entity.go

package role

import (
	"time"

	"github.com/fintrack-dev/fintrack-api/internal/rbac"
)

// Assignment binds a role to a user within a company. A user's
// effective role for a company comes from here; the role column on the
// users table is the account-wide default.
type Assignment struct {
	ID        string    `db:"id"`
	Role      rbac.Role `db:"role"`
	UserID    string    `db:"user_id"`
	CompanyID string    `db:"company_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
