package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chromacraft/chromacraft/internal/domain"
	"github.com/chromacraft/chromacraft/internal/domain/mocks"
	"github.com/chromacraft/chromacraft/pkg/logger"
)

const testCookieName = "admin_session"

func TestAuthHandlerLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auth := mocks.NewMockAuthService(ctrl)
	handler := NewAuthHandler(auth, logger.NewLogger(), testCookieName, false)

	t.Run("sets the session cookie on success", func(t *testing.T) {
		auth.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *domain.LoginRequest) (string, error) {
				assert.Equal(t, "swordfish", req.Password)
				return "signed-token", nil
			})

		req := httptest.NewRequest(http.MethodPost, "/api/adminAuth.login",
			strings.NewReader(`{"password":"swordfish"}`))
		rec := httptest.NewRecorder()

		handler.HandleLogin(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		cookie := cookies[0]
		assert.Equal(t, testCookieName, cookie.Name)
		assert.Equal(t, "signed-token", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
		assert.False(t, cookie.Expires.IsZero())
	})

	t.Run("wrong password is 401 without a cookie", func(t *testing.T) {
		auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return("", domain.ErrInvalidPassword)

		req := httptest.NewRequest(http.MethodPost, "/api/adminAuth.login",
			strings.NewReader(`{"password":"guess"}`))
		rec := httptest.NewRecorder()

		handler.HandleLogin(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("rejects GET", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/adminAuth.login", nil)
		rec := httptest.NewRecorder()

		handler.HandleLogin(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("rejects a malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/adminAuth.login",
			strings.NewReader(`{not json`))
		rec := httptest.NewRecorder()

		handler.HandleLogin(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandlerLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auth := mocks.NewMockAuthService(ctrl)
	handler := NewAuthHandler(auth, logger.NewLogger(), testCookieName, false)

	req := httptest.NewRequest(http.MethodPost, "/api/adminAuth.logout", nil)
	rec := httptest.NewRecorder()

	handler.HandleLogout(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, testCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestAuthHandlerCheckThroughRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auth := mocks.NewMockAuthService(ctrl)
	handler := NewAuthHandler(auth, logger.NewLogger(), testCookieName, false)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	t.Run("no session answers an unauthenticated 200", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/adminAuth.check", nil)
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"authenticated":false`)
	})

	t.Run("a stale session answers an unauthenticated 200", func(t *testing.T) {
		auth.EXPECT().VerifyToken(gomock.Any(), "stale-token").Return(domain.ErrAdminAuthRequired)

		req := httptest.NewRequest(http.MethodGet, "/api/adminAuth.check", nil)
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: "stale-token"})
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"authenticated":false`)
	})

	t.Run("valid session is authenticated", func(t *testing.T) {
		auth.EXPECT().VerifyToken(gomock.Any(), "good-token").Return(nil)

		req := httptest.NewRequest(http.MethodGet, "/api/adminAuth.check", nil)
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: "good-token"})
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"authenticated":true`)
	})
}
