package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/chromacraft/chromacraft/internal/domain"
)

type giftCertificateRepository struct {
	db *sql.DB
}

// NewGiftCertificateRepository creates a new PostgreSQL gift certificate repository
func NewGiftCertificateRepository(db *sql.DB) domain.GiftCertificateRepository {
	return &giftCertificateRepository{db: db}
}

const giftCertificateColumns = `id, code, amount, balance, status,
	COALESCE(recipient_name, ''), COALESCE(recipient_email, ''), COALESCE(message, ''),
	order_id, order_item_id, expires_at, created_at, updated_at`

// Create persists a new certificate and assigns its id
func (r *giftCertificateRepository) Create(ctx context.Context, cert *domain.GiftCertificate) error {
	now := time.Now().UTC()
	cert.CreatedAt = now
	cert.UpdatedAt = now
	if cert.Status == "" {
		cert.Status = domain.GiftCertificateStatusActive
	}

	query := `
		INSERT INTO gift_certificates (
			code, amount, balance, status, recipient_name, recipient_email,
			message, order_id, order_item_id, expires_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		cert.Code,
		cert.Amount,
		cert.Balance,
		cert.Status,
		cert.RecipientName,
		cert.RecipientEmail,
		cert.Message,
		cert.OrderID,
		cert.OrderItemID,
		cert.ExpiresAt,
		cert.CreatedAt,
		cert.UpdatedAt,
	).Scan(&cert.ID)
	if err != nil {
		return fmt.Errorf("failed to create gift certificate: %w", err)
	}

	return nil
}

func (r *giftCertificateRepository) scanCertificate(row *sql.Row) (*domain.GiftCertificate, error) {
	var cert domain.GiftCertificate
	err := row.Scan(
		&cert.ID,
		&cert.Code,
		&cert.Amount,
		&cert.Balance,
		&cert.Status,
		&cert.RecipientName,
		&cert.RecipientEmail,
		&cert.Message,
		&cert.OrderID,
		&cert.OrderItemID,
		&cert.ExpiresAt,
		&cert.CreatedAt,
		&cert.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &cert, nil
}

// GetByID retrieves a certificate by id
func (r *giftCertificateRepository) GetByID(ctx context.Context, id int64) (*domain.GiftCertificate, error) {
	query := fmt.Sprintf(`SELECT %s FROM gift_certificates WHERE id = $1`, giftCertificateColumns)

	cert, err := r.scanCertificate(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFoundError("gift certificate", strconv.FormatInt(id, 10))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get gift certificate: %w", err)
	}

	return cert, nil
}

// GetByCode retrieves a certificate by its human-enterable code
func (r *giftCertificateRepository) GetByCode(ctx context.Context, code string) (*domain.GiftCertificate, error) {
	query := fmt.Sprintf(`SELECT %s FROM gift_certificates WHERE code = $1`, giftCertificateColumns)

	cert, err := r.scanCertificate(r.db.QueryRowContext(ctx, query, code))
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFoundError("gift certificate", code)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get gift certificate: %w", err)
	}

	return cert, nil
}

// List retrieves all certificates, newest first
func (r *giftCertificateRepository) List(ctx context.Context) ([]*domain.GiftCertificate, error) {
	query := fmt.Sprintf(`SELECT %s FROM gift_certificates ORDER BY created_at DESC`, giftCertificateColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list gift certificates: %w", err)
	}
	defer rows.Close()

	certs := []*domain.GiftCertificate{}
	for rows.Next() {
		var cert domain.GiftCertificate
		err := rows.Scan(
			&cert.ID,
			&cert.Code,
			&cert.Amount,
			&cert.Balance,
			&cert.Status,
			&cert.RecipientName,
			&cert.RecipientEmail,
			&cert.Message,
			&cert.OrderID,
			&cert.OrderItemID,
			&cert.ExpiresAt,
			&cert.CreatedAt,
			&cert.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan gift certificate: %w", err)
		}
		certs = append(certs, &cert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate gift certificates: %w", err)
	}

	return certs, nil
}

// Update persists balance/status changes
func (r *giftCertificateRepository) Update(ctx context.Context, cert *domain.GiftCertificate) error {
	cert.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE gift_certificates
		SET balance = $1, status = $2, updated_at = $3
		WHERE id = $4
	`

	result, err := r.db.ExecContext(ctx, query,
		cert.Balance,
		cert.Status,
		cert.UpdatedAt,
		cert.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update gift certificate: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError("gift certificate", strconv.FormatInt(cert.ID, 10))
	}

	return nil
}

// Redeem atomically decrements the balance of an active, unexpired
// certificate with sufficient funds, flipping it to redeemed when the balance
// reaches zero. The single conditional UPDATE makes concurrent redemptions
// safe: one wins, the other sees no matching row. Expiry is checked here
// rather than relying on a status sweep, so a certificate past its expires_at
// never redeems even while its status column still reads active.
func (r *giftCertificateRepository) Redeem(ctx context.Context, code string, amount int64) (*domain.GiftCertificate, error) {
	query := fmt.Sprintf(`
		UPDATE gift_certificates
		SET balance = balance - $1,
			status = CASE WHEN balance - $1 = 0 THEN 'redeemed' ELSE status END,
			updated_at = $2
		WHERE code = $3 AND status = 'active' AND balance >= $1
			AND (expires_at IS NULL OR expires_at > $2)
		RETURNING %s
	`, giftCertificateColumns)

	cert, err := r.scanCertificate(r.db.QueryRowContext(ctx, query, amount, time.Now().UTC(), code))
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFoundError("gift certificate", code)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to redeem gift certificate: %w", err)
	}

	return cert, nil
}
