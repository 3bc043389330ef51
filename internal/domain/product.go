package domain

import (
	"context"
	"regexp"
	"strings"
	"time"
)

//go:generate mockgen -destination mocks/mock_product_repository.go -package mocks github.com/chromacraft/chromacraft/internal/domain ProductRepository

// Regular expression for validating slugs (lowercase letters, numbers, and hyphens)
var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ProductType distinguishes physical merchandise from gift certificates
type ProductType string

const (
	ProductTypeMerchandise     ProductType = "merchandise"
	ProductTypeGiftCertificate ProductType = "gift_certificate"
)

// IsValid reports whether the type is one of the enumerated values
func (t ProductType) IsValid() bool {
	return t == ProductTypeMerchandise || t == ProductTypeGiftCertificate
}

// Product is a catalog entry. Prices are integer cents.
type Product struct {
	ID             int64       `json:"id"`
	Type           ProductType `json:"type"`
	Name           string      `json:"name"`
	Slug           string      `json:"slug"`
	Description    string      `json:"description,omitempty"`
	BasePrice      int64       `json:"base_price"`
	CompareAtPrice *int64      `json:"compare_at_price,omitempty"`
	Images         []string    `json:"images"`
	IsActive       bool        `json:"is_active"`
	Featured       bool        `json:"featured"`
	HasVariants    bool        `json:"has_variants"`
	TrackInventory bool        `json:"track_inventory"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`

	// Variants are populated on reads that join them in
	Variants []*ProductVariant `json:"variants,omitempty"`
}

// Validate checks the catalog entry fields
func (p *Product) Validate() error {
	if !p.Type.IsValid() {
		return NewValidationError("invalid product type")
	}
	if strings.TrimSpace(p.Name) == "" {
		return NewValidationError("name is required")
	}
	if p.Slug == "" {
		return NewValidationError("slug is required")
	}
	if !slugRegex.MatchString(p.Slug) {
		return NewValidationError("slug must contain only lowercase letters, numbers, and hyphens")
	}
	if p.BasePrice < 0 {
		return NewValidationError("base price must not be negative")
	}
	if p.CompareAtPrice != nil && *p.CompareAtPrice < 0 {
		return NewValidationError("compare-at price must not be negative")
	}
	return nil
}

// ProductVariant is a child of a product with its own SKU, price and stock
type ProductVariant struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku"`
	Price     int64     `json:"price"`
	Inventory int       `json:"inventory"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks the variant fields
func (v *ProductVariant) Validate() error {
	if v.ProductID <= 0 {
		return NewValidationError("product_id is required")
	}
	if strings.TrimSpace(v.Name) == "" {
		return NewValidationError("name is required")
	}
	if v.Price < 0 {
		return NewValidationError("price must not be negative")
	}
	if v.Inventory < 0 {
		return NewValidationError("inventory must not be negative")
	}
	return nil
}

// ProductRepository persists the catalog
type ProductRepository interface {
	CreateProduct(ctx context.Context, product *Product) error
	GetProduct(ctx context.Context, id int64) (*Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*Product, error)
	ListProducts(ctx context.Context, activeOnly bool) ([]*Product, error)
	UpdateProduct(ctx context.Context, product *Product) error
	DeleteProduct(ctx context.Context, id int64) error

	CreateVariant(ctx context.Context, variant *ProductVariant) error
	GetVariant(ctx context.Context, id int64) (*ProductVariant, error)
	UpdateVariant(ctx context.Context, variant *ProductVariant) error
	DeleteVariant(ctx context.Context, id int64) error
}
