// AngelaMos | 2026
// dto.go

package auth

import (
	"time"

	"github.com/fintrack-dev/fintrack-api/internal/rbac"
)

type SigninRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

type SignupRequest struct {
	FirstName         string `json:"first_name"         validate:"required,min=1,max=100"`
	LastName          string `json:"last_name"          validate:"required,min=1,max=100"`
	Username          string `json:"username"           validate:"required,min=3,max=50"`
	PhoneNumber       string `json:"phone_number"       validate:"omitempty,max=32"`
	Email             string `json:"email"              validate:"required,email,max=255"`
	Password          string `json:"password"           validate:"required,min=8,max=128"`
	ConfirmedPassword string `json:"confirmed_password" validate:"required,eqfield=Password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// IdentityResponse mirrors the user object the dashboard consumes.
// Role serializes as its numeric privilege level.
type IdentityResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Role        rbac.Role `json:"role"`
}

type AuthResponse struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token,omitempty"`
	TokenType    string           `json:"token_type"`
	ExpiresAt    time.Time        `json:"expires_at"`
	User         IdentityResponse `json:"user"`
}

type SessionInfo struct {
	ID        string    `json:"id"`
	UserAgent string    `json:"user_agent"`
	IPAddress string    `json:"ip_address"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type SessionsResponse struct {
	Sessions []SessionInfo `json:"sessions"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,max=128"`
}
