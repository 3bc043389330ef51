package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/chromacraft/chromacraft/config"
	"github.com/chromacraft/chromacraft/internal/domain"
	"github.com/chromacraft/chromacraft/pkg/logger"
)

// SessionDuration is how long an admin session token stays valid
const SessionDuration = 7 * 24 * time.Hour

// AuthService verifies the shared admin password and issues HS256-signed
// session tokens
type AuthService struct {
	cfg    *config.AdminConfig
	logger logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(cfg *config.AdminConfig, logger logger.Logger) *AuthService {
	return &AuthService{
		cfg:    cfg,
		logger: logger,
	}
}

// Login verifies the password and returns a signed session token. The bcrypt
// hash takes precedence when configured; the plaintext comparison is constant
// time.
func (s *AuthService) Login(ctx context.Context, request *domain.LoginRequest) (string, error) {
	if err := request.Validate(); err != nil {
		return "", err
	}

	if !s.checkPassword(request.Password) {
		s.logger.Warn("Admin login attempt with invalid password")
		return "", domain.ErrInvalidPassword
	}

	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(SessionDuration)),
	})

	signed, err := token.SignedString([]byte(s.cfg.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	s.logger.Info("Admin logged in")
	return signed, nil
}

func (s *AuthService) checkPassword(password string) bool {
	if s.cfg.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(s.cfg.Password), []byte(password)) == 1
}

// VerifyToken checks a session token's signature and expiry
func (s *AuthService) VerifyToken(ctx context.Context, tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil || !token.Valid {
		return domain.ErrAdminAuthRequired
	}
	return nil
}
