package domain

import (
	"context"
	"strings"
	"time"
)

// TeamMember is a staff profile shown on the about page
type TeamMember struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Role         string    `json:"role,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	PhotoURL     string    `json:"photo_url,omitempty"`
	IsActive     bool      `json:"is_active"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Validate checks the team member fields
func (m *TeamMember) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return NewValidationError("name is required")
	}
	return nil
}

// PortfolioItem is a work sample belonging to a team member; rows cascade
// with their parent.
type PortfolioItem struct {
	ID           int64     `json:"id"`
	TeamMemberID int64     `json:"team_member_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	ImageURL     string    `json:"image_url,omitempty"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Validate checks the portfolio item fields
func (p *PortfolioItem) Validate() error {
	if p.TeamMemberID <= 0 {
		return NewValidationError("team_member_id is required")
	}
	if strings.TrimSpace(p.Title) == "" {
		return NewValidationError("title is required")
	}
	return nil
}

// TeamRepository persists team members and their portfolio items
type TeamRepository interface {
	CreateMember(ctx context.Context, member *TeamMember) error
	GetMember(ctx context.Context, id int64) (*TeamMember, error)
	ListMembers(ctx context.Context, activeOnly bool) ([]*TeamMember, error)
	UpdateMember(ctx context.Context, member *TeamMember) error
	DeleteMember(ctx context.Context, id int64) error

	CreatePortfolioItem(ctx context.Context, item *PortfolioItem) error
	ListPortfolioItems(ctx context.Context, teamMemberID int64) ([]*PortfolioItem, error)
	UpdatePortfolioItem(ctx context.Context, item *PortfolioItem) error
	DeletePortfolioItem(ctx context.Context, id int64) error
}
