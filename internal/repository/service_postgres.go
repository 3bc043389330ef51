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

type serviceRepository struct {
	db *sql.DB
}

// NewServiceRepository creates a new PostgreSQL offered-service repository
func NewServiceRepository(db *sql.DB) domain.ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) Create(ctx context.Context, service *domain.Service) error {
	now := time.Now().UTC()
	service.CreatedAt = now
	service.UpdatedAt = now

	query := `
		INSERT INTO services (
			name, slug, description, features, price_range, image_url,
			is_active, display_order, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		service.Name,
		service.Slug,
		service.Description,
		pq.Array(service.Features),
		service.PriceRange,
		service.ImageURL,
		service.IsActive,
		service.DisplayOrder,
		service.CreatedAt,
		service.UpdatedAt,
	).Scan(&service.ID)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}

	return nil
}

func (r *serviceRepository) Get(ctx context.Context, id int64) (*domain.Service, error) {
	query := `
		SELECT id, name, COALESCE(slug, ''), COALESCE(description, ''), features,
			COALESCE(price_range, ''), COALESCE(image_url, ''), is_active,
			display_order, created_at, updated_at
		FROM services
		WHERE id = $1
	`

	var s domain.Service
	var features pq.StringArray
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID,
		&s.Name,
		&s.Slug,
		&s.Description,
		&features,
		&s.PriceRange,
		&s.ImageURL,
		&s.IsActive,
		&s.DisplayOrder,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFoundError("service", strconv.FormatInt(id, 10))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	s.Features = features

	return &s, nil
}

func (r *serviceRepository) List(ctx context.Context, activeOnly bool) ([]*domain.Service, error) {
	query := `
		SELECT id, name, COALESCE(slug, ''), COALESCE(description, ''), features,
			COALESCE(price_range, ''), COALESCE(image_url, ''), is_active,
			display_order, created_at, updated_at
		FROM services
	`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY display_order, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer rows.Close()

	services := []*domain.Service{}
	for rows.Next() {
		var s domain.Service
		var features pq.StringArray
		err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Slug,
			&s.Description,
			&features,
			&s.PriceRange,
			&s.ImageURL,
			&s.IsActive,
			&s.DisplayOrder,
			&s.CreatedAt,
			&s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		s.Features = features
		services = append(services, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate services: %w", err)
	}

	return services, nil
}

func (r *serviceRepository) Update(ctx context.Context, service *domain.Service) error {
	service.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE services
		SET name = $1, slug = $2, description = $3, features = $4, price_range = $5,
			image_url = $6, is_active = $7, display_order = $8, updated_at = $9
		WHERE id = $10
	`

	result, err := r.db.ExecContext(ctx, query,
		service.Name,
		service.Slug,
		service.Description,
		pq.Array(service.Features),
		service.PriceRange,
		service.ImageURL,
		service.IsActive,
		service.DisplayOrder,
		service.UpdatedAt,
		service.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError("service", strconv.FormatInt(service.ID, 10))
	}

	return nil
}

func (r *serviceRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError("service", strconv.FormatInt(id, 10))
	}

	return nil
}
