package domain

import (
	"context"
	"strings"
	"time"
)

// Service is an offered shop service (custom paint, restoration, detailing).
// Only active rows are publicly visible, sorted by display order.
type Service struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description,omitempty"`
	Features     []string  `json:"features"`
	PriceRange   string    `json:"price_range,omitempty"`
	ImageURL     string    `json:"image_url,omitempty"`
	IsActive     bool      `json:"is_active"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Validate checks the service fields
func (s *Service) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return NewValidationError("name is required")
	}
	if s.Slug != "" && !slugRegex.MatchString(s.Slug) {
		return NewValidationError("slug must contain only lowercase letters, numbers, and hyphens")
	}
	return nil
}

// ServiceRepository persists offered services
type ServiceRepository interface {
	Create(ctx context.Context, service *Service) error
	Get(ctx context.Context, id int64) (*Service, error)
	List(ctx context.Context, activeOnly bool) ([]*Service, error)
	Update(ctx context.Context, service *Service) error
	Delete(ctx context.Context, id int64) error
}
