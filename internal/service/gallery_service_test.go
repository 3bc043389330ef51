package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chromacraft/chromacraft/internal/domain"
	"github.com/chromacraft/chromacraft/internal/domain/mocks"
	"github.com/chromacraft/chromacraft/pkg/logger"
)

func validGalleryItem() *domain.GalleryItem {
	return &domain.GalleryItem{
		Title:          "Harley tank respray",
		BeforeImageKey: "gallery/1-before.jpg",
		BeforeImageURL: "http://localhost/files/gallery/1-before.jpg",
		AfterImageKey:  "gallery/1-after.jpg",
		AfterImageURL:  "http://localhost/files/gallery/1-after.jpg",
		IsActive:       true,
	}
}

func TestGalleryServiceCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockGalleryRepository(ctrl)
	svc := NewGalleryService(repo, logger.NewLogger())

	t.Run("persists a valid item", func(t *testing.T) {
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item *domain.GalleryItem) error {
				item.ID = 1
				return nil
			})

		item, err := svc.Create(context.Background(), validGalleryItem())
		require.NoError(t, err)
		assert.Equal(t, int64(1), item.ID)
	})

	t.Run("rejects a missing after image", func(t *testing.T) {
		item := validGalleryItem()
		item.AfterImageURL = ""

		_, err := svc.Create(context.Background(), item)
		require.Error(t, err)
		assert.True(t, domain.IsValidationError(err))
	})
}

func TestGalleryServiceToggleActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockGalleryRepository(ctrl)
	svc := NewGalleryService(repo, logger.NewLogger())

	t.Run("flips active to inactive", func(t *testing.T) {
		existing := validGalleryItem()
		existing.ID = 4
		existing.IsActive = true

		repo.EXPECT().Get(gomock.Any(), int64(4)).Return(existing, nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item *domain.GalleryItem) error {
				assert.False(t, item.IsActive)
				return nil
			})

		item, err := svc.ToggleActive(context.Background(), 4)
		require.NoError(t, err)
		assert.False(t, item.IsActive)
	})

	t.Run("flips inactive to active", func(t *testing.T) {
		existing := validGalleryItem()
		existing.ID = 4
		existing.IsActive = false

		repo.EXPECT().Get(gomock.Any(), int64(4)).Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		item, err := svc.ToggleActive(context.Background(), 4)
		require.NoError(t, err)
		assert.True(t, item.IsActive)
	})

	t.Run("missing item surfaces as not found", func(t *testing.T) {
		repo.EXPECT().Get(gomock.Any(), int64(99)).Return(nil, domain.NewNotFoundError("gallery item", "99"))

		_, err := svc.ToggleActive(context.Background(), 99)
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestGalleryServiceList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockGalleryRepository(ctrl)
	svc := NewGalleryService(repo, logger.NewLogger())

	items := []*domain.GalleryItem{validGalleryItem()}
	repo.EXPECT().List(gomock.Any(), true).Return(items, nil)

	got, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, items, got)
}
