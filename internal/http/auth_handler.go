package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/chromacraft/chromacraft/internal/domain"
	"github.com/chromacraft/chromacraft/internal/http/middleware"
	"github.com/chromacraft/chromacraft/internal/service"
	"github.com/chromacraft/chromacraft/pkg/logger"
)

// AuthHandler exposes the admin login/logout endpoints. Login sets the signed
// session cookie; the middleware on other handlers consumes it.
type AuthHandler struct {
	service      domain.AuthService
	logger       logger.Logger
	gate         *middleware.AdminMiddleware
	cookieName   string
	secureCookie bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService domain.AuthService, logger logger.Logger, cookieName string, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		service:      authService,
		logger:       logger,
		gate:         middleware.NewAdminMiddleware(authService, cookieName),
		cookieName:   cookieName,
		secureCookie: secureCookie,
	}
}

// RegisterRoutes registers the RPC-style auth endpoints. All three are open:
// check answers with a boolean instead of gating.
func (h *AuthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/api/adminAuth.login", http.HandlerFunc(h.HandleLogin))
	mux.Handle("/api/adminAuth.logout", http.HandlerFunc(h.HandleLogout))
	mux.Handle("/api/adminAuth.check", http.HandlerFunc(h.HandleCheck))
}

// HandleLogin handles the admin login request (POST)
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	token, err := h.service.Login(r.Context(), &req)
	if err != nil {
		writeDomainError(w, h.logger, err, "Failed to log in")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(service.SessionDuration),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

// HandleLogout handles the admin logout request (POST)
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

// HandleCheck reports whether the caller holds a valid admin session (GET).
// It always answers 200: the admin UI polls it to decide whether to show the
// login form, so a missing or stale session is a boolean, not an error.
func (h *AuthHandler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	authenticated := false
	if token := h.gate.ExtractToken(r); token != "" {
		authenticated = h.service.VerifyToken(r.Context(), token) == nil
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"authenticated": authenticated,
	})
}
