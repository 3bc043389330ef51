package service

import (
	"context"

	"github.com/chromacraft/chromacraft/internal/domain"
	"github.com/chromacraft/chromacraft/pkg/logger"
)

// GalleryService manages before/after gallery entries
type GalleryService struct {
	repo   domain.GalleryRepository
	logger logger.Logger
}

// NewGalleryService creates a new gallery service
func NewGalleryService(repo domain.GalleryRepository, logger logger.Logger) *GalleryService {
	return &GalleryService{
		repo:   repo,
		logger: logger,
	}
}

// Create validates and persists a new gallery item
func (s *GalleryService) Create(ctx context.Context, item *domain.GalleryItem) (*domain.GalleryItem, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// List retrieves gallery items; activeOnly hides unpublished entries
func (s *GalleryService) List(ctx context.Context, activeOnly bool) ([]*domain.GalleryItem, error) {
	return s.repo.List(ctx, activeOnly)
}

// Update validates and persists changes to a gallery item
func (s *GalleryService) Update(ctx context.Context, item *domain.GalleryItem) (*domain.GalleryItem, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes a gallery item
func (s *GalleryService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// ToggleActive flips an item's visibility and returns the updated item
func (s *GalleryService) ToggleActive(ctx context.Context, id int64) (*domain.GalleryItem, error) {
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	item.IsActive = !item.IsActive
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}
