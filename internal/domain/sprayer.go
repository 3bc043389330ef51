package domain

import (
	"context"
	"strings"
	"time"
)

// Sprayer is a staff painter/technician profile attachable to gallery
// before/after entries for attribution
type Sprayer struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Title        string    `json:"title,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	PhotoURL     string    `json:"photo_url,omitempty"`
	Specialties  []string  `json:"specialties"`
	IsActive     bool      `json:"is_active"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Validate checks the sprayer fields
func (s *Sprayer) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return NewValidationError("name is required")
	}
	return nil
}

// SprayerRepository persists sprayer profiles. Delete must null out gallery
// references rather than blocking or orphaning them.
type SprayerRepository interface {
	Create(ctx context.Context, sprayer *Sprayer) error
	Get(ctx context.Context, id int64) (*Sprayer, error)
	List(ctx context.Context, activeOnly bool) ([]*Sprayer, error)
	Update(ctx context.Context, sprayer *Sprayer) error
	Delete(ctx context.Context, id int64) error
}
