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

func TestTestimonialHandlerApprove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTestimonialRepository(ctrl)
	handler := NewTestimonialHandler(repo, logger.NewLogger())

	t.Run("approves the testimonial", func(t *testing.T) {
		repo.EXPECT().Get(gomock.Any(), int64(3)).Return(&domain.Testimonial{
			ID:           3,
			CustomerName: "Dana Reyes",
			Content:      "Flawless candy red.",
			Rating:       5,
			IsApproved:   false,
		}, nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, testimonial *domain.Testimonial) error {
				assert.True(t, testimonial.IsApproved)
				return nil
			})

		req := httptest.NewRequest(http.MethodPost, "/api/testimonials.approve",
			strings.NewReader(`{"id":3}`))
		rec := httptest.NewRecorder()

		handler.HandleApprove(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"is_approved":true`)
	})

	t.Run("missing id is 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/testimonials.approve",
			strings.NewReader(`{}`))
		rec := httptest.NewRecorder()

		handler.HandleApprove(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown testimonial is 404", func(t *testing.T) {
		repo.EXPECT().Get(gomock.Any(), int64(99)).
			Return(nil, domain.NewNotFoundError("testimonial", "99"))

		req := httptest.NewRequest(http.MethodPost, "/api/testimonials.approve",
			strings.NewReader(`{"id":99}`))
		rec := httptest.NewRecorder()

		handler.HandleApprove(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("rejects GET", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/testimonials.approve", nil)
		rec := httptest.NewRecorder()

		handler.HandleApprove(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}
