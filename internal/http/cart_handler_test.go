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

func TestCartHandlerAdd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockCartService(ctrl)
	handler := NewCartHandler(service, logger.NewLogger())

	t.Run("adds an item", func(t *testing.T) {
		service.EXPECT().
			Add(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *domain.AddToCartRequest) (*domain.CartItem, error) {
				assert.Equal(t, "sess-1", req.Owner.SessionID)
				assert.Equal(t, int64(10), req.ProductID)
				return &domain.CartItem{ID: 1, ProductID: 10, Quantity: 2, Price: 4999}, nil
			})

		body := `{"owner":{"session_id":"sess-1"},"product_id":10,"quantity":2,"price":4999}`
		req := httptest.NewRequest(http.MethodPost, "/api/cart.add", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.HandleAdd(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":1`)
	})

	t.Run("doubly-set owner is 400", func(t *testing.T) {
		service.EXPECT().
			Add(gomock.Any(), gomock.Any()).
			Return(nil, domain.NewValidationError("cart owner must be a user or a session, not both"))

		body := `{"owner":{"user_id":"u1","session_id":"s1"},"product_id":10,"quantity":1}`
		req := httptest.NewRequest(http.MethodPost, "/api/cart.add", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.HandleAdd(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCartHandlerUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockCartService(ctrl)
	handler := NewCartHandler(service, logger.NewLogger())

	t.Run("returns the updated item", func(t *testing.T) {
		service.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Return(&domain.CartItem{ID: 5, Quantity: 3}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/cart.update",
			strings.NewReader(`{"id":5,"quantity":3}`))
		rec := httptest.NewRecorder()

		handler.HandleUpdate(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"quantity":3`)
	})

	t.Run("zero quantity reports a deletion", func(t *testing.T) {
		service.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/cart.update",
			strings.NewReader(`{"id":5,"quantity":0}`))
		rec := httptest.NewRecorder()

		handler.HandleUpdate(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"deleted":true`)
	})
}

func TestCartHandlerList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockCartService(ctrl)
	handler := NewCartHandler(service, logger.NewLogger())

	t.Run("builds the owner from query params", func(t *testing.T) {
		service.EXPECT().
			List(gomock.Any(), domain.CartOwnerInput{SessionID: "sess-1"}).
			Return([]*domain.CartItem{{ID: 1, ProductID: 10}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/cart.list?session_id=sess-1", nil)
		rec := httptest.NewRecorder()

		handler.HandleList(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"items"`)
	})

	t.Run("no owner is 400", func(t *testing.T) {
		service.EXPECT().
			List(gomock.Any(), domain.CartOwnerInput{}).
			Return(nil, domain.NewValidationError("cart owner is required"))

		req := httptest.NewRequest(http.MethodGet, "/api/cart.list", nil)
		rec := httptest.NewRecorder()

		handler.HandleList(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects POST", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/cart.list", nil)
		rec := httptest.NewRecorder()

		handler.HandleList(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestCartHandlerClear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockCartService(ctrl)
	handler := NewCartHandler(service, logger.NewLogger())

	service.EXPECT().
		Clear(gomock.Any(), domain.CartOwnerInput{UserID: "user-1"}).
		Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/cart.clear",
		strings.NewReader(`{"owner":{"user_id":"user-1"}}`))
	rec := httptest.NewRecorder()

	handler.HandleClear(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}
