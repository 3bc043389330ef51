package domain

import (
	"context"
	"strings"
	"time"
)

// Testimonial is a customer review. Only approved rows are publicly visible.
type Testimonial struct {
	ID           int64     `json:"id"`
	CustomerName string    `json:"customer_name"`
	VehicleInfo  string    `json:"vehicle_info,omitempty"`
	Content      string    `json:"content"`
	Rating       int       `json:"rating"`
	IsApproved   bool      `json:"is_approved"`
	IsFeatured   bool      `json:"is_featured"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Validate checks the testimonial fields
func (t *Testimonial) Validate() error {
	if strings.TrimSpace(t.CustomerName) == "" {
		return NewValidationError("customer name is required")
	}
	if strings.TrimSpace(t.Content) == "" {
		return NewValidationError("content is required")
	}
	if t.Rating < 1 || t.Rating > 5 {
		return NewValidationError("rating must be between 1 and 5")
	}
	return nil
}

// TestimonialRepository persists testimonials
type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *Testimonial) error
	Get(ctx context.Context, id int64) (*Testimonial, error)
	List(ctx context.Context, approvedOnly bool) ([]*Testimonial, error)
	Update(ctx context.Context, testimonial *Testimonial) error
	Delete(ctx context.Context, id int64) error
}
