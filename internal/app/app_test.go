package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chromacraft/chromacraft/config"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{
		Admin: config.AdminConfig{
			Password:      "swordfish",
			SecretKey:     "test-secret",
			SessionCookie: "admin_session",
		},
		Environment: "development",
		Version:     "test",
		LogLevel:    "error",
	}

	a := NewApp(cfg, WithMockDB(db))
	require.NoError(t, a.Initialize())
	return a
}

func TestAppInitializeWiresAllRoutes(t *testing.T) {
	a := newTestApp(t)

	t.Run("health endpoint responds", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()

		a.GetMux().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"ok"`)
		assert.Contains(t, rec.Body.String(), `"version":"test"`)
	})

	t.Run("admin routes are gated", func(t *testing.T) {
		for _, path := range []string{
			"/api/quotes.list",
			"/api/orders.list",
			"/api/giftCertificates.list",
			"/api/products.listAll",
			"/api/testimonials.listAll",
			"/api/gallery.listAll",
		} {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := httptest.NewRecorder()

			a.GetMux().ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		}
	})

	t.Run("login issues a session that opens the gate", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/adminAuth.login",
			strings.NewReader(`{"password":"swordfish"}`))
		rec := httptest.NewRecorder()

		a.GetMux().ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)

		check := httptest.NewRequest(http.MethodGet, "/api/adminAuth.check", nil)
		check.AddCookie(cookies[0])
		checkRec := httptest.NewRecorder()

		a.GetMux().ServeHTTP(checkRec, check)
		require.Equal(t, http.StatusOK, checkRec.Code)
		assert.Contains(t, checkRec.Body.String(), `"authenticated":true`)
	})
}
