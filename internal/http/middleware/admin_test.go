package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chromacraft/chromacraft/internal/domain/mocks"
)

const testCookieName = "admin_session"

func newGatedHandler(t *testing.T, ctrl *gomock.Controller) (*mocks.MockAuthService, http.Handler, *bool) {
	t.Helper()

	auth := mocks.NewMockAuthService(ctrl)
	m := NewAdminMiddleware(auth, testCookieName)

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	return auth, m.RequireAdmin()(next), &called
}

func TestRequireAdminWithCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auth, handler, called := newGatedHandler(t, ctrl)
	auth.EXPECT().VerifyToken(gomock.Any(), "good-token").Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/quotes.list", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "good-token"})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *called)
}

func TestRequireAdminWithBearerFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auth, handler, called := newGatedHandler(t, ctrl)
	auth.EXPECT().VerifyToken(gomock.Any(), "bearer-token").Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/quotes.list", nil)
	req.Header.Set("Authorization", "Bearer bearer-token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *called)
}

func TestRequireAdminWithoutToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, handler, called := newGatedHandler(t, ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/quotes.list", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
	assert.Contains(t, rec.Body.String(), "admin authentication required")
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestRequireAdminWithInvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auth, handler, called := newGatedHandler(t, ctrl)
	auth.EXPECT().VerifyToken(gomock.Any(), "expired").Return(errors.New("token is expired"))

	req := httptest.NewRequest(http.MethodGet, "/api/quotes.list", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "expired"})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
}

func TestRequireAdminPrefersCookieOverHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auth, handler, _ := newGatedHandler(t, ctrl)
	auth.EXPECT().VerifyToken(gomock.Any(), "cookie-token").Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/quotes.list", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "cookie-token"})
	req.Header.Set("Authorization", "Bearer header-token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
