package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chromacraft/chromacraft/internal/domain"
	"github.com/chromacraft/chromacraft/internal/domain/mocks"
	"github.com/chromacraft/chromacraft/pkg/logger"
)

func TestBlogHandlerPublish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockBlogRepository(ctrl)
	handler := NewBlogHandler(repo, logger.NewLogger())

	t.Run("stamps a draft's published_at", func(t *testing.T) {
		repo.EXPECT().Get(gomock.Any(), int64(5)).Return(&domain.BlogPost{
			ID: 5, Title: "Candy coats 101", Slug: "candy-coats-101",
		}, nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, post *domain.BlogPost) error {
				require.NotNil(t, post.PublishedAt)
				assert.WithinDuration(t, time.Now().UTC(), *post.PublishedAt, time.Minute)
				return nil
			})

		req := httptest.NewRequest(http.MethodPost, "/api/blogPosts.publish",
			strings.NewReader(`{"id":5}`))
		rec := httptest.NewRecorder()

		handler.HandlePublish(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"published_at"`)
	})

	t.Run("republishing keeps the original date", func(t *testing.T) {
		published := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		repo.EXPECT().Get(gomock.Any(), int64(5)).Return(&domain.BlogPost{
			ID: 5, Title: "Candy coats 101", Slug: "candy-coats-101",
			PublishedAt: &published,
		}, nil)
		// no Update expectation: an already-published post is left alone

		req := httptest.NewRequest(http.MethodPost, "/api/blogPosts.publish",
			strings.NewReader(`{"id":5}`))
		rec := httptest.NewRecorder()

		handler.HandlePublish(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "2026-08-01T12:00:00Z")
	})

	t.Run("missing id is 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/blogPosts.publish",
			strings.NewReader(`{}`))
		rec := httptest.NewRecorder()

		handler.HandlePublish(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBlogHandlerUnpublish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockBlogRepository(ctrl)
	handler := NewBlogHandler(repo, logger.NewLogger())

	t.Run("returns the post to draft", func(t *testing.T) {
		published := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		repo.EXPECT().Get(gomock.Any(), int64(5)).Return(&domain.BlogPost{
			ID: 5, Title: "Candy coats 101", Slug: "candy-coats-101",
			PublishedAt: &published,
		}, nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, post *domain.BlogPost) error {
				assert.Nil(t, post.PublishedAt)
				return nil
			})

		req := httptest.NewRequest(http.MethodPost, "/api/blogPosts.unpublish",
			strings.NewReader(`{"id":5}`))
		rec := httptest.NewRecorder()

		handler.HandleUnpublish(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "published_at")
	})

	t.Run("unpublishing a draft is a no-op", func(t *testing.T) {
		repo.EXPECT().Get(gomock.Any(), int64(5)).Return(&domain.BlogPost{
			ID: 5, Title: "Candy coats 101", Slug: "candy-coats-101",
		}, nil)
		// no Update expectation

		req := httptest.NewRequest(http.MethodPost, "/api/blogPosts.unpublish",
			strings.NewReader(`{"id":5}`))
		rec := httptest.NewRecorder()

		handler.HandleUnpublish(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
