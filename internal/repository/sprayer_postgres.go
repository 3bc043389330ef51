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

type sprayerRepository struct {
	db *sql.DB
}

// NewSprayerRepository creates a new PostgreSQL sprayer repository
func NewSprayerRepository(db *sql.DB) domain.SprayerRepository {
	return &sprayerRepository{db: db}
}

func (r *sprayerRepository) Create(ctx context.Context, sprayer *domain.Sprayer) error {
	now := time.Now().UTC()
	sprayer.CreatedAt = now
	sprayer.UpdatedAt = now

	query := `
		INSERT INTO sprayers (
			name, title, bio, photo_url, specialties, is_active,
			display_order, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		sprayer.Name,
		sprayer.Title,
		sprayer.Bio,
		sprayer.PhotoURL,
		pq.Array(sprayer.Specialties),
		sprayer.IsActive,
		sprayer.DisplayOrder,
		sprayer.CreatedAt,
		sprayer.UpdatedAt,
	).Scan(&sprayer.ID)
	if err != nil {
		return fmt.Errorf("failed to create sprayer: %w", err)
	}

	return nil
}

func (r *sprayerRepository) Get(ctx context.Context, id int64) (*domain.Sprayer, error) {
	query := `
		SELECT id, name, COALESCE(title, ''), COALESCE(bio, ''), COALESCE(photo_url, ''),
			specialties, is_active, display_order, created_at, updated_at
		FROM sprayers
		WHERE id = $1
	`

	var s domain.Sprayer
	var specialties pq.StringArray
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID,
		&s.Name,
		&s.Title,
		&s.Bio,
		&s.PhotoURL,
		&specialties,
		&s.IsActive,
		&s.DisplayOrder,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFoundError("sprayer", strconv.FormatInt(id, 10))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sprayer: %w", err)
	}
	s.Specialties = specialties

	return &s, nil
}

func (r *sprayerRepository) List(ctx context.Context, activeOnly bool) ([]*domain.Sprayer, error) {
	query := `
		SELECT id, name, COALESCE(title, ''), COALESCE(bio, ''), COALESCE(photo_url, ''),
			specialties, is_active, display_order, created_at, updated_at
		FROM sprayers
	`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY display_order, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list sprayers: %w", err)
	}
	defer rows.Close()

	sprayers := []*domain.Sprayer{}
	for rows.Next() {
		var s domain.Sprayer
		var specialties pq.StringArray
		err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Title,
			&s.Bio,
			&s.PhotoURL,
			&specialties,
			&s.IsActive,
			&s.DisplayOrder,
			&s.CreatedAt,
			&s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sprayer: %w", err)
		}
		s.Specialties = specialties
		sprayers = append(sprayers, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sprayers: %w", err)
	}

	return sprayers, nil
}

func (r *sprayerRepository) Update(ctx context.Context, sprayer *domain.Sprayer) error {
	sprayer.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE sprayers
		SET name = $1, title = $2, bio = $3, photo_url = $4, specialties = $5,
			is_active = $6, display_order = $7, updated_at = $8
		WHERE id = $9
	`

	result, err := r.db.ExecContext(ctx, query,
		sprayer.Name,
		sprayer.Title,
		sprayer.Bio,
		sprayer.PhotoURL,
		pq.Array(sprayer.Specialties),
		sprayer.IsActive,
		sprayer.DisplayOrder,
		sprayer.UpdatedAt,
		sprayer.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update sprayer: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError("sprayer", strconv.FormatInt(sprayer.ID, 10))
	}

	return nil
}

// Delete removes a sprayer. Gallery references are nulled by the
// ON DELETE SET NULL constraint on gallery_items.sprayer_id.
func (r *sprayerRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sprayers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete sprayer: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError("sprayer", strconv.FormatInt(id, 10))
	}

	return nil
}
