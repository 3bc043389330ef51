package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/chromacraft/chromacraft/internal/domain"
)

type businessInfoRepository struct {
	db *sql.DB
}

// NewBusinessInfoRepository creates a new PostgreSQL business info repository
func NewBusinessInfoRepository(db *sql.DB) domain.BusinessInfoRepository {
	return &businessInfoRepository{db: db}
}

// Get retrieves the singleton business info row
func (r *businessInfoRepository) Get(ctx context.Context) (*domain.BusinessInfo, error) {
	query := `
		SELECT id, name, COALESCE(phone, ''), COALESCE(email, ''), COALESCE(address, ''),
			hours, created_at, updated_at
		FROM business_info
		ORDER BY id
		LIMIT 1
	`

	var info domain.BusinessInfo
	err := r.db.QueryRowContext(ctx, query).Scan(
		&info.ID,
		&info.Name,
		&info.Phone,
		&info.Email,
		&info.Address,
		&info.Hours,
		&info.CreatedAt,
		&info.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFoundError("business info", "singleton")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get business info: %w", err)
	}

	return &info, nil
}

// Upsert updates the singleton row, inserting it when no row exists yet
func (r *businessInfoRepository) Upsert(ctx context.Context, info *domain.BusinessInfo) error {
	now := time.Now().UTC()
	info.UpdatedAt = now

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var existingID int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM business_info ORDER BY id LIMIT 1`).Scan(&existingID)
	if err == sql.ErrNoRows {
		info.CreatedAt = now
		err = tx.QueryRowContext(ctx, `
			INSERT INTO business_info (name, phone, email, address, hours, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`,
			info.Name,
			info.Phone,
			info.Email,
			info.Address,
			info.Hours,
			info.CreatedAt,
			info.UpdatedAt,
		).Scan(&info.ID)
		if err != nil {
			return fmt.Errorf("failed to insert business info: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to check business info: %w", err)
	}

	info.ID = existingID
	_, err = tx.ExecContext(ctx, `
		UPDATE business_info
		SET name = $1, phone = $2, email = $3, address = $4, hours = $5, updated_at = $6
		WHERE id = $7
	`,
		info.Name,
		info.Phone,
		info.Email,
		info.Address,
		info.Hours,
		info.UpdatedAt,
		info.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update business info: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
