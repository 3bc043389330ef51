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

func TestGiftCertificateHandlerRouteGating(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockGiftCertificateService(ctrl)
	handler := NewGiftCertificateHandler(service, logger.NewLogger())

	// a gate that rejects everything, so only ungated routes can reach the
	// handler
	denyAll := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			WriteJSONError(w, "Authentication required", http.StatusUnauthorized)
		})
	}

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, denyAll)

	t.Run("redeem is open to checkout", func(t *testing.T) {
		service.EXPECT().
			Redeem(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *domain.RedeemGiftCertificateRequest) (*domain.GiftCertificate, error) {
				assert.Equal(t, "GIFT-ABCD2345", req.Code)
				assert.Equal(t, int64(2500), req.Amount)
				return &domain.GiftCertificate{
					ID:      1,
					Code:    req.Code,
					Amount:  5000,
					Balance: 2500,
					Status:  domain.GiftCertificateStatusActive,
				}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/api/giftCertificates.redeem",
			strings.NewReader(`{"code":"GIFT-ABCD2345","amount":2500}`))
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"balance":2500`)
	})

	t.Run("issuance and management stay gated", func(t *testing.T) {
		for _, path := range []string{
			"/api/giftCertificates.create",
			"/api/giftCertificates.list",
			"/api/giftCertificates.update",
		} {
			req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{}`))
			rec := httptest.NewRecorder()

			mux.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		}
	})
}
