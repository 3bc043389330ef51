package domain

import (
	"context"
	"strings"
	"time"
)

//go:generate mockgen -destination mocks/mock_blog_repository.go -package mocks github.com/chromacraft/chromacraft/internal/domain BlogRepository

// BlogPost is a shop news/article entry. A nil PublishedAt means draft;
// public reads only see published posts.
type BlogPost struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       string     `json:"excerpt,omitempty"`
	Content       string     `json:"content"`
	CoverImageURL string     `json:"cover_image_url,omitempty"`
	Tags          []string   `json:"tags"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Validate checks the blog post fields
func (p *BlogPost) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return NewValidationError("title is required")
	}
	if p.Slug == "" {
		return NewValidationError("slug is required")
	}
	if !slugRegex.MatchString(p.Slug) {
		return NewValidationError("slug must contain only lowercase letters, numbers, and hyphens")
	}
	return nil
}

// IsPublished reports whether the post is publicly visible
func (p *BlogPost) IsPublished() bool {
	return p.PublishedAt != nil && !p.PublishedAt.After(time.Now())
}

// BlogRepository persists blog posts
type BlogRepository interface {
	Create(ctx context.Context, post *BlogPost) error
	Get(ctx context.Context, id int64) (*BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*BlogPost, error)
	List(ctx context.Context, publishedOnly bool) ([]*BlogPost, error)
	Update(ctx context.Context, post *BlogPost) error
	Delete(ctx context.Context, id int64) error
}
