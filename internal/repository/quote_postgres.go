package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/chromacraft/chromacraft/internal/domain"
)

type quoteRepository struct {
	db *sql.DB
}

// NewQuoteRepository creates a new PostgreSQL quote repository
func NewQuoteRepository(db *sql.DB) domain.QuoteRepository {
	return &quoteRepository{db: db}
}

// CreateQuote persists a new quote submission and assigns its id
func (r *quoteRepository) CreateQuote(ctx context.Context, quote *domain.QuoteSubmission) error {
	now := time.Now().UTC()
	quote.CreatedAt = now
	quote.UpdatedAt = now
	if quote.Status == "" {
		quote.Status = domain.QuoteStatusNew
	}

	query := `
		INSERT INTO quote_submissions (
			customer_name, customer_email, customer_phone,
			vehicle_type, vehicle_make, vehicle_model, vehicle_year,
			service_type, finish, description, budget, timeline,
			status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		quote.CustomerName,
		quote.CustomerEmail,
		quote.CustomerPhone,
		quote.VehicleType,
		quote.VehicleMake,
		quote.VehicleModel,
		quote.VehicleYear,
		quote.ServiceType,
		quote.Finish,
		quote.Description,
		quote.Budget,
		quote.Timeline,
		quote.Status,
		quote.CreatedAt,
		quote.UpdatedAt,
	).Scan(&quote.ID)
	if err != nil {
		return fmt.Errorf("failed to create quote submission: %w", err)
	}

	return nil
}

// CreateQuoteFile persists an uploaded attachment row
func (r *quoteRepository) CreateQuoteFile(ctx context.Context, file *domain.QuoteFile) error {
	file.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO quote_files (
			quote_id, storage_key, url, filename, mime_type, size_bytes, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		file.QuoteID,
		file.StorageKey,
		file.URL,
		file.Filename,
		file.MimeType,
		file.SizeBytes,
		file.CreatedAt,
	).Scan(&file.ID)
	if err != nil {
		return fmt.Errorf("failed to create quote file: %w", err)
	}

	return nil
}

// GetQuote retrieves a quote submission by id
func (r *quoteRepository) GetQuote(ctx context.Context, id int64) (*domain.QuoteSubmission, error) {
	query := `
		SELECT id, customer_name, customer_email, customer_phone,
			vehicle_type, vehicle_make, vehicle_model, vehicle_year,
			service_type, finish, description, budget, timeline,
			status, created_at, updated_at
		FROM quote_submissions
		WHERE id = $1
	`

	var quote domain.QuoteSubmission
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&quote.ID,
		&quote.CustomerName,
		&quote.CustomerEmail,
		&quote.CustomerPhone,
		&quote.VehicleType,
		&quote.VehicleMake,
		&quote.VehicleModel,
		&quote.VehicleYear,
		&quote.ServiceType,
		&quote.Finish,
		&quote.Description,
		&quote.Budget,
		&quote.Timeline,
		&quote.Status,
		&quote.CreatedAt,
		&quote.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFoundError("quote", strconv.FormatInt(id, 10))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get quote submission: %w", err)
	}

	return &quote, nil
}

// GetQuoteFiles retrieves all attachments of a quote
func (r *quoteRepository) GetQuoteFiles(ctx context.Context, quoteID int64) ([]*domain.QuoteFile, error) {
	query := `
		SELECT id, quote_id, storage_key, url, filename, mime_type, size_bytes, created_at
		FROM quote_files
		WHERE quote_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, quoteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quote files: %w", err)
	}
	defer rows.Close()

	files := []*domain.QuoteFile{}
	for rows.Next() {
		var file domain.QuoteFile
		err := rows.Scan(
			&file.ID,
			&file.QuoteID,
			&file.StorageKey,
			&file.URL,
			&file.Filename,
			&file.MimeType,
			&file.SizeBytes,
			&file.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quote file: %w", err)
		}
		files = append(files, &file)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate quote files: %w", err)
	}

	return files, nil
}

// ListQuotes retrieves quote submissions, optionally filtered by status and paged
func (r *quoteRepository) ListQuotes(ctx context.Context, filter domain.QuoteListFilter) ([]*domain.QuoteSubmission, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	builder := psql.Select(
		"id", "customer_name", "customer_email", "customer_phone",
		"vehicle_type", "vehicle_make", "vehicle_model", "vehicle_year",
		"service_type", "finish", "description", "budget", "timeline",
		"status", "created_at", "updated_at",
	).From("quote_submissions").OrderBy("created_at DESC")

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": string(*filter.Status)})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build quote list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list quote submissions: %w", err)
	}
	defer rows.Close()

	quotes := []*domain.QuoteSubmission{}
	for rows.Next() {
		var quote domain.QuoteSubmission
		err := rows.Scan(
			&quote.ID,
			&quote.CustomerName,
			&quote.CustomerEmail,
			&quote.CustomerPhone,
			&quote.VehicleType,
			&quote.VehicleMake,
			&quote.VehicleModel,
			&quote.VehicleYear,
			&quote.ServiceType,
			&quote.Finish,
			&quote.Description,
			&quote.Budget,
			&quote.Timeline,
			&quote.Status,
			&quote.CreatedAt,
			&quote.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quote submission: %w", err)
		}
		quotes = append(quotes, &quote)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate quote submissions: %w", err)
	}

	return quotes, nil
}

// UpdateQuoteStatus applies the new status and touches updated_at
func (r *quoteRepository) UpdateQuoteStatus(ctx context.Context, id int64, status domain.QuoteStatus) error {
	query := `
		UPDATE quote_submissions
		SET status = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query, status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update quote status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return domain.NewNotFoundError("quote", strconv.FormatInt(id, 10))
	}

	return nil
}
