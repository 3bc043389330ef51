package domain

import (
	"context"
	"strings"
	"time"
)

//go:generate mockgen -destination mocks/mock_gallery_repository.go -package mocks github.com/chromacraft/chromacraft/internal/domain GalleryRepository
//go:generate mockgen -destination mocks/mock_gallery_service.go -package mocks github.com/chromacraft/chromacraft/internal/domain GalleryService

// GalleryItem is a before/after pair of images, optionally attributed to the
// sprayer who did the work. SprayerID is nullable: "no sprayer assigned" is
// a valid state, and deleting a sprayer nulls the reference.
type GalleryItem struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	BeforeImageKey string    `json:"before_image_key"`
	BeforeImageURL string    `json:"before_image_url"`
	AfterImageKey  string    `json:"after_image_key"`
	AfterImageURL  string    `json:"after_image_url"`
	SprayerID      *int64    `json:"sprayer_id,omitempty"`
	IsFeatured     bool      `json:"is_featured"`
	IsActive       bool      `json:"is_active"`
	DisplayOrder   int       `json:"display_order"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Validate checks the gallery item fields
func (g *GalleryItem) Validate() error {
	if strings.TrimSpace(g.Title) == "" {
		return NewValidationError("title is required")
	}
	if g.BeforeImageURL == "" || g.AfterImageURL == "" {
		return NewValidationError("before and after images are required")
	}
	return nil
}

// GalleryRepository persists gallery items
type GalleryRepository interface {
	Create(ctx context.Context, item *GalleryItem) error
	Get(ctx context.Context, id int64) (*GalleryItem, error)
	List(ctx context.Context, activeOnly bool) ([]*GalleryItem, error)
	Update(ctx context.Context, item *GalleryItem) error
	Delete(ctx context.Context, id int64) error
}

// GalleryService implements gallery management including the active toggle
type GalleryService interface {
	Create(ctx context.Context, item *GalleryItem) (*GalleryItem, error)
	List(ctx context.Context, activeOnly bool) ([]*GalleryItem, error)
	Update(ctx context.Context, item *GalleryItem) (*GalleryItem, error)
	Delete(ctx context.Context, id int64) error
	ToggleActive(ctx context.Context, id int64) (*GalleryItem, error)
}
