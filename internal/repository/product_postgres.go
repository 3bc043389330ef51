package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/lib/pq"

	"github.com/chromacraft/chromacraft/internal/domain"
)

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new PostgreSQL product repository
func NewProductRepository(db *sql.DB) domain.ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `id, type, name, slug, description, base_price, compare_at_price,
	images, is_active, featured, has_variants, track_inventory, created_at, updated_at`

// CreateProduct persists a new catalog entry and assigns its id
func (r *productRepository) CreateProduct(ctx context.Context, product *domain.Product) error {
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now

	query := `
		INSERT INTO products (
			type, name, slug, description, base_price, compare_at_price,
			images, is_active, featured, has_variants, track_inventory,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		product.Type,
		product.Name,
		product.Slug,
		product.Description,
		product.BasePrice,
		product.CompareAtPrice,
		pq.Array(product.Images),
		product.IsActive,
		product.Featured,
		product.HasVariants,
		product.TrackInventory,
		product.CreatedAt,
		product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

func (r *productRepository) scanProduct(row *sql.Row) (*domain.Product, error) {
	var product domain.Product
	var images pq.StringArray
	err := row.Scan(
		&product.ID,
		&product.Type,
		&product.Name,
		&product.Slug,
		&product.Description,
		&product.BasePrice,
		&product.CompareAtPrice,
		&images,
		&product.IsActive,
		&product.Featured,
		&product.HasVariants,
		&product.TrackInventory,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	product.Images = images
	return &product, nil
}

// GetProduct retrieves a product by id, with its variants
func (r *productRepository) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1`, productColumns)

	product, err := r.scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFoundError("product", strconv.FormatInt(id, 10))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if err := r.attachVariants(ctx, product, false); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProductBySlug retrieves a product by slug, with its active variants
func (r *productRepository) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE slug = $1`, productColumns)

	product, err := r.scanProduct(r.db.QueryRowContext(ctx, query, slug))
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFoundError("product", slug)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if err := r.attachVariants(ctx, product, true); err != nil {
		return nil, err
	}

	return product, nil
}

// ListProducts retrieves the catalog, optionally limited to active entries
func (r *productRepository) ListProducts(ctx context.Context, activeOnly bool) ([]*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products`, productColumns)
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY featured DESC, name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []*domain.Product{}
	for rows.Next() {
		var product domain.Product
		var images pq.StringArray
		err := rows.Scan(
			&product.ID,
			&product.Type,
			&product.Name,
			&product.Slug,
			&product.Description,
			&product.BasePrice,
			&product.CompareAtPrice,
			&images,
			&product.IsActive,
			&product.Featured,
			&product.HasVariants,
			&product.TrackInventory,
			&product.CreatedAt,
			&product.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		product.Images = images
		products = append(products, &product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	for _, product := range products {
		if err := r.attachVariants(ctx, product, activeOnly); err != nil {
			return nil, err
		}
	}

	return products, nil
}

// UpdateProduct updates an existing catalog entry
func (r *productRepository) UpdateProduct(ctx context.Context, product *domain.Product) error {
	product.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE products
		SET type = $1, name = $2, slug = $3, description = $4, base_price = $5,
			compare_at_price = $6, images = $7, is_active = $8, featured = $9,
			has_variants = $10, track_inventory = $11, updated_at = $12
		WHERE id = $13
	`

	result, err := r.db.ExecContext(ctx, query,
		product.Type,
		product.Name,
		product.Slug,
		product.Description,
		product.BasePrice,
		product.CompareAtPrice,
		pq.Array(product.Images),
		product.IsActive,
		product.Featured,
		product.HasVariants,
		product.TrackInventory,
		product.UpdatedAt,
		product.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError("product", strconv.FormatInt(product.ID, 10))
	}

	return nil
}

// DeleteProduct removes a product; variants cascade
func (r *productRepository) DeleteProduct(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError("product", strconv.FormatInt(id, 10))
	}

	return nil
}

func (r *productRepository) attachVariants(ctx context.Context, product *domain.Product, activeOnly bool) error {
	query := `
		SELECT id, product_id, name, sku, price, inventory, is_active, created_at, updated_at
		FROM product_variants
		WHERE product_id = $1
	`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, product.ID)
	if err != nil {
		return fmt.Errorf("failed to list product variants: %w", err)
	}
	defer rows.Close()

	variants := []*domain.ProductVariant{}
	for rows.Next() {
		var variant domain.ProductVariant
		err := rows.Scan(
			&variant.ID,
			&variant.ProductID,
			&variant.Name,
			&variant.SKU,
			&variant.Price,
			&variant.Inventory,
			&variant.IsActive,
			&variant.CreatedAt,
			&variant.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to scan product variant: %w", err)
		}
		variants = append(variants, &variant)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate product variants: %w", err)
	}

	product.Variants = variants
	return nil
}

// CreateVariant persists a new product variant and assigns its id
func (r *productRepository) CreateVariant(ctx context.Context, variant *domain.ProductVariant) error {
	now := time.Now().UTC()
	variant.CreatedAt = now
	variant.UpdatedAt = now

	query := `
		INSERT INTO product_variants (
			product_id, name, sku, price, inventory, is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		variant.ProductID,
		variant.Name,
		variant.SKU,
		variant.Price,
		variant.Inventory,
		variant.IsActive,
		variant.CreatedAt,
		variant.UpdatedAt,
	).Scan(&variant.ID)
	if err != nil {
		return fmt.Errorf("failed to create product variant: %w", err)
	}

	return nil
}

// GetVariant retrieves a variant by id
func (r *productRepository) GetVariant(ctx context.Context, id int64) (*domain.ProductVariant, error) {
	query := `
		SELECT id, product_id, name, sku, price, inventory, is_active, created_at, updated_at
		FROM product_variants
		WHERE id = $1
	`

	var variant domain.ProductVariant
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&variant.ID,
		&variant.ProductID,
		&variant.Name,
		&variant.SKU,
		&variant.Price,
		&variant.Inventory,
		&variant.IsActive,
		&variant.CreatedAt,
		&variant.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFoundError("product variant", strconv.FormatInt(id, 10))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product variant: %w", err)
	}

	return &variant, nil
}

// UpdateVariant updates an existing variant
func (r *productRepository) UpdateVariant(ctx context.Context, variant *domain.ProductVariant) error {
	variant.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE product_variants
		SET name = $1, sku = $2, price = $3, inventory = $4, is_active = $5, updated_at = $6
		WHERE id = $7
	`

	result, err := r.db.ExecContext(ctx, query,
		variant.Name,
		variant.SKU,
		variant.Price,
		variant.Inventory,
		variant.IsActive,
		variant.UpdatedAt,
		variant.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update product variant: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError("product variant", strconv.FormatInt(variant.ID, 10))
	}

	return nil
}

// DeleteVariant removes a variant
func (r *productRepository) DeleteVariant(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM product_variants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product variant: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError("product variant", strconv.FormatInt(id, 10))
	}

	return nil
}
