package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/chromacraft/chromacraft/internal/domain"
)

type galleryRepository struct {
	db *sql.DB
}

// NewGalleryRepository creates a new PostgreSQL gallery repository
func NewGalleryRepository(db *sql.DB) domain.GalleryRepository {
	return &galleryRepository{db: db}
}

const galleryColumns = `id, title, COALESCE(description, ''), COALESCE(before_image_key, ''),
	before_image_url, COALESCE(after_image_key, ''), after_image_url, sprayer_id,
	is_featured, is_active, display_order, created_at, updated_at`

func (r *galleryRepository) Create(ctx context.Context, item *domain.GalleryItem) error {
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	query := `
		INSERT INTO gallery_items (
			title, description, before_image_key, before_image_url,
			after_image_key, after_image_url, sprayer_id, is_featured,
			is_active, display_order, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		item.Title,
		item.Description,
		item.BeforeImageKey,
		item.BeforeImageURL,
		item.AfterImageKey,
		item.AfterImageURL,
		item.SprayerID,
		item.IsFeatured,
		item.IsActive,
		item.DisplayOrder,
		item.CreatedAt,
		item.UpdatedAt,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("failed to create gallery item: %w", err)
	}

	return nil
}

func (r *galleryRepository) Get(ctx context.Context, id int64) (*domain.GalleryItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM gallery_items WHERE id = $1`, galleryColumns)

	var item domain.GalleryItem
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID,
		&item.Title,
		&item.Description,
		&item.BeforeImageKey,
		&item.BeforeImageURL,
		&item.AfterImageKey,
		&item.AfterImageURL,
		&item.SprayerID,
		&item.IsFeatured,
		&item.IsActive,
		&item.DisplayOrder,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFoundError("gallery item", strconv.FormatInt(id, 10))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get gallery item: %w", err)
	}

	return &item, nil
}

func (r *galleryRepository) List(ctx context.Context, activeOnly bool) ([]*domain.GalleryItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM gallery_items`, galleryColumns)
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY display_order, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery items: %w", err)
	}
	defer rows.Close()

	items := []*domain.GalleryItem{}
	for rows.Next() {
		var item domain.GalleryItem
		err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Description,
			&item.BeforeImageKey,
			&item.BeforeImageURL,
			&item.AfterImageKey,
			&item.AfterImageURL,
			&item.SprayerID,
			&item.IsFeatured,
			&item.IsActive,
			&item.DisplayOrder,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan gallery item: %w", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate gallery items: %w", err)
	}

	return items, nil
}

func (r *galleryRepository) Update(ctx context.Context, item *domain.GalleryItem) error {
	item.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE gallery_items
		SET title = $1, description = $2, before_image_key = $3, before_image_url = $4,
			after_image_key = $5, after_image_url = $6, sprayer_id = $7, is_featured = $8,
			is_active = $9, display_order = $10, updated_at = $11
		WHERE id = $12
	`

	result, err := r.db.ExecContext(ctx, query,
		item.Title,
		item.Description,
		item.BeforeImageKey,
		item.BeforeImageURL,
		item.AfterImageKey,
		item.AfterImageURL,
		item.SprayerID,
		item.IsFeatured,
		item.IsActive,
		item.DisplayOrder,
		item.UpdatedAt,
		item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update gallery item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError("gallery item", strconv.FormatInt(item.ID, 10))
	}

	return nil
}

func (r *galleryRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM gallery_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete gallery item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError("gallery item", strconv.FormatInt(id, 10))
	}

	return nil
}
