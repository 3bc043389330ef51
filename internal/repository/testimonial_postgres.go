package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/chromacraft/chromacraft/internal/domain"
)

type testimonialRepository struct {
	db *sql.DB
}

// NewTestimonialRepository creates a new PostgreSQL testimonial repository
func NewTestimonialRepository(db *sql.DB) domain.TestimonialRepository {
	return &testimonialRepository{db: db}
}

func (r *testimonialRepository) Create(ctx context.Context, testimonial *domain.Testimonial) error {
	now := time.Now().UTC()
	testimonial.CreatedAt = now
	testimonial.UpdatedAt = now

	query := `
		INSERT INTO testimonials (
			customer_name, vehicle_info, content, rating, is_approved,
			is_featured, display_order, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		testimonial.CustomerName,
		testimonial.VehicleInfo,
		testimonial.Content,
		testimonial.Rating,
		testimonial.IsApproved,
		testimonial.IsFeatured,
		testimonial.DisplayOrder,
		testimonial.CreatedAt,
		testimonial.UpdatedAt,
	).Scan(&testimonial.ID)
	if err != nil {
		return fmt.Errorf("failed to create testimonial: %w", err)
	}

	return nil
}

func (r *testimonialRepository) Get(ctx context.Context, id int64) (*domain.Testimonial, error) {
	query := `
		SELECT id, customer_name, COALESCE(vehicle_info, ''), content, rating,
			is_approved, is_featured, display_order, created_at, updated_at
		FROM testimonials
		WHERE id = $1
	`

	var t domain.Testimonial
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID,
		&t.CustomerName,
		&t.VehicleInfo,
		&t.Content,
		&t.Rating,
		&t.IsApproved,
		&t.IsFeatured,
		&t.DisplayOrder,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFoundError("testimonial", strconv.FormatInt(id, 10))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get testimonial: %w", err)
	}

	return &t, nil
}

func (r *testimonialRepository) List(ctx context.Context, approvedOnly bool) ([]*domain.Testimonial, error) {
	query := `
		SELECT id, customer_name, COALESCE(vehicle_info, ''), content, rating,
			is_approved, is_featured, display_order, created_at, updated_at
		FROM testimonials
	`
	if approvedOnly {
		query += ` WHERE is_approved = TRUE`
	}
	query += ` ORDER BY display_order, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}
	defer rows.Close()

	testimonials := []*domain.Testimonial{}
	for rows.Next() {
		var t domain.Testimonial
		err := rows.Scan(
			&t.ID,
			&t.CustomerName,
			&t.VehicleInfo,
			&t.Content,
			&t.Rating,
			&t.IsApproved,
			&t.IsFeatured,
			&t.DisplayOrder,
			&t.CreatedAt,
			&t.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan testimonial: %w", err)
		}
		testimonials = append(testimonials, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate testimonials: %w", err)
	}

	return testimonials, nil
}

func (r *testimonialRepository) Update(ctx context.Context, testimonial *domain.Testimonial) error {
	testimonial.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE testimonials
		SET customer_name = $1, vehicle_info = $2, content = $3, rating = $4,
			is_approved = $5, is_featured = $6, display_order = $7, updated_at = $8
		WHERE id = $9
	`

	result, err := r.db.ExecContext(ctx, query,
		testimonial.CustomerName,
		testimonial.VehicleInfo,
		testimonial.Content,
		testimonial.Rating,
		testimonial.IsApproved,
		testimonial.IsFeatured,
		testimonial.DisplayOrder,
		testimonial.UpdatedAt,
		testimonial.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update testimonial: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError("testimonial", strconv.FormatInt(testimonial.ID, 10))
	}

	return nil
}

func (r *testimonialRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete testimonial: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError("testimonial", strconv.FormatInt(id, 10))
	}

	return nil
}
