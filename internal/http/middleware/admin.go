package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/chromacraft/chromacraft/internal/domain"
)

// AdminMiddleware gates admin endpoints on the signed session cookie. A
// bearer token in the Authorization header is accepted as a fallback for
// non-browser clients.
type AdminMiddleware struct {
	auth       domain.AuthService
	cookieName string
}

// NewAdminMiddleware creates a new admin auth middleware
func NewAdminMiddleware(auth domain.AuthService, cookieName string) *AdminMiddleware {
	return &AdminMiddleware{
		auth:       auth,
		cookieName: cookieName,
	}
}

// RequireAdmin wraps a handler so it only runs with a valid admin session
func (m *AdminMiddleware) RequireAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := m.ExtractToken(r)
			if token == "" {
				writeUnauthorized(w)
				return
			}

			if err := m.auth.VerifyToken(r.Context(), token); err != nil {
				writeUnauthorized(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ExtractToken pulls the session token from the cookie, falling back to an
// Authorization bearer header. Empty means no credentials were presented.
func (m *AdminMiddleware) ExtractToken(r *http.Request) string {
	if cookie, err := r.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": domain.ErrAdminAuthRequired.Error(),
	})
}
