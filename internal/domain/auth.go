package domain

import "context"

//go:generate mockgen -destination mocks/mock_auth_service.go -package mocks github.com/chromacraft/chromacraft/internal/domain AuthService

// LoginRequest carries the single shared admin password
type LoginRequest struct {
	Password string `json:"password"`
}

// Validate checks the login payload
func (r *LoginRequest) Validate() error {
	if r.Password == "" {
		return NewValidationError("password is required")
	}
	return nil
}

// AuthService verifies the shared admin credential and manages the signed
// session token carried in the admin cookie
type AuthService interface {
	// Login verifies the password and returns a signed session token
	Login(ctx context.Context, request *LoginRequest) (string, error)
	// VerifyToken checks a session token's signature and expiry
	VerifyToken(ctx context.Context, token string) error
}
