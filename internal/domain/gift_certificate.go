package domain

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_gift_certificate_repository.go -package mocks github.com/chromacraft/chromacraft/internal/domain GiftCertificateRepository
//go:generate mockgen -destination mocks/mock_gift_certificate_service.go -package mocks github.com/chromacraft/chromacraft/internal/domain GiftCertificateService

// GiftCodeAlphabet excludes visually similar glyphs (0/O, 1/I/L)
const GiftCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// GiftCodeLength is the number of random characters after the prefix
const GiftCodeLength = 8

// GenerateGiftCode returns a code in the GIFT-XXXXXXXX format drawn from the
// unambiguous alphabet. Uniqueness is by entropy; the caller handles the
// unique-constraint violation on the vanishingly rare collision.
func GenerateGiftCode() (string, error) {
	buf := make([]byte, GiftCodeLength)
	max := big.NewInt(int64(len(GiftCodeAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate gift code: %w", err)
		}
		buf[i] = GiftCodeAlphabet[n.Int64()]
	}
	return "GIFT-" + string(buf), nil
}

// GiftCertificateStatus is the lifecycle label of a certificate
type GiftCertificateStatus string

const (
	GiftCertificateStatusActive    GiftCertificateStatus = "active"
	GiftCertificateStatusRedeemed  GiftCertificateStatus = "redeemed"
	GiftCertificateStatusExpired   GiftCertificateStatus = "expired"
	GiftCertificateStatusCancelled GiftCertificateStatus = "cancelled"
)

// IsValid reports whether the status is one of the enumerated values
func (s GiftCertificateStatus) IsValid() bool {
	switch s {
	case GiftCertificateStatusActive, GiftCertificateStatusRedeemed,
		GiftCertificateStatusExpired, GiftCertificateStatusCancelled:
		return true
	}
	return false
}

// GiftCertificate tracks a face amount and a separately held remaining
// balance, both integer cents. Invariants enforced on every write:
// 0 <= balance <= amount, and status redeemed implies balance 0.
type GiftCertificate struct {
	ID             int64                 `json:"id"`
	Code           string                `json:"code"`
	Amount         int64                 `json:"amount"`
	Balance        int64                 `json:"balance"`
	Status         GiftCertificateStatus `json:"status"`
	RecipientName  string                `json:"recipient_name,omitempty"`
	RecipientEmail string                `json:"recipient_email,omitempty"`
	Message        string                `json:"message,omitempty"`
	OrderID        *int64                `json:"order_id,omitempty"`
	OrderItemID    *int64                `json:"order_item_id,omitempty"`
	ExpiresAt      *time.Time            `json:"expires_at,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// ValidateBalance checks the balance/status invariants
func (g *GiftCertificate) ValidateBalance() error {
	if g.Balance < 0 {
		return NewValidationError("balance must not be negative")
	}
	if g.Balance > g.Amount {
		return NewValidationError("balance must not exceed the face amount")
	}
	if g.Status == GiftCertificateStatusRedeemed && g.Balance != 0 {
		return NewValidationError("a redeemed certificate must have a zero balance")
	}
	return nil
}

// CreateGiftCertificateRequest issues a new certificate
type CreateGiftCertificateRequest struct {
	Amount         int64      `json:"amount"`
	RecipientName  string     `json:"recipient_name,omitempty"`
	RecipientEmail string     `json:"recipient_email,omitempty"`
	Message        string     `json:"message,omitempty"`
	OrderID        *int64     `json:"order_id,omitempty"`
	OrderItemID    *int64     `json:"order_item_id,omitempty"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
}

// Validate checks the create payload
func (r *CreateGiftCertificateRequest) Validate() error {
	if r.Amount <= 0 {
		return NewValidationError("amount must be positive")
	}
	if r.RecipientEmail != "" && !govalidator.IsEmail(r.RecipientEmail) {
		return NewValidationError("recipient email is invalid")
	}
	return nil
}

// UpdateGiftCertificateRequest is the manual admin override for balance
// and/or status. Nil fields are left untouched.
type UpdateGiftCertificateRequest struct {
	ID      int64                  `json:"id"`
	Balance *int64                 `json:"balance,omitempty"`
	Status  *GiftCertificateStatus `json:"status,omitempty"`
}

// Validate checks the update payload
func (r *UpdateGiftCertificateRequest) Validate() error {
	if r.ID <= 0 {
		return NewValidationError("id is required")
	}
	if r.Balance == nil && r.Status == nil {
		return NewValidationError("nothing to update")
	}
	if r.Status != nil && !r.Status.IsValid() {
		return NewValidationError("invalid gift certificate status")
	}
	return nil
}

// RedeemGiftCertificateRequest decrements a certificate's balance
type RedeemGiftCertificateRequest struct {
	Code   string `json:"code"`
	Amount int64  `json:"amount"`
}

// Validate checks the redeem payload
func (r *RedeemGiftCertificateRequest) Validate() error {
	if r.Code == "" {
		return NewValidationError("code is required")
	}
	if r.Amount <= 0 {
		return NewValidationError("amount must be positive")
	}
	return nil
}

// GiftCertificateRepository persists certificates
type GiftCertificateRepository interface {
	Create(ctx context.Context, cert *GiftCertificate) error
	GetByID(ctx context.Context, id int64) (*GiftCertificate, error)
	GetByCode(ctx context.Context, code string) (*GiftCertificate, error)
	List(ctx context.Context) ([]*GiftCertificate, error)
	Update(ctx context.Context, cert *GiftCertificate) error
	// Redeem atomically decrements the balance of an active certificate and
	// flips it to redeemed when the balance reaches zero. Returns the
	// updated certificate, or ErrNotFound when no active row with enough
	// balance matched.
	Redeem(ctx context.Context, code string, amount int64) (*GiftCertificate, error)
}

// GiftCertificateService implements issuance, manual override and redemption
type GiftCertificateService interface {
	Create(ctx context.Context, request *CreateGiftCertificateRequest) (*GiftCertificate, error)
	List(ctx context.Context) ([]*GiftCertificate, error)
	Update(ctx context.Context, request *UpdateGiftCertificateRequest) (*GiftCertificate, error)
	Redeem(ctx context.Context, request *RedeemGiftCertificateRequest) (*GiftCertificate, error)
}
