package service

import (
	"context"
	"fmt"
	"time"

	"github.com/chromacraft/chromacraft/internal/domain"
	"github.com/chromacraft/chromacraft/pkg/logger"
	"github.com/chromacraft/chromacraft/pkg/mailer"
)

// GiftCertificateService handles issuance, manual admin overrides, and
// redemption of gift certificates
type GiftCertificateService struct {
	repo   domain.GiftCertificateRepository
	mailer mailer.Mailer
	logger logger.Logger
}

// NewGiftCertificateService creates a new gift certificate service
func NewGiftCertificateService(
	repo domain.GiftCertificateRepository,
	mailService mailer.Mailer,
	logger logger.Logger,
) *GiftCertificateService {
	return &GiftCertificateService{
		repo:   repo,
		mailer: mailService,
		logger: logger,
	}
}

// Create issues a certificate with a fresh code and the balance equal to the
// face amount. When a recipient email is given, delivery is fire-and-forget:
// a mail failure is logged, not surfaced.
func (s *GiftCertificateService) Create(ctx context.Context, request *domain.CreateGiftCertificateRequest) (*domain.GiftCertificate, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	code, err := domain.GenerateGiftCode()
	if err != nil {
		return nil, err
	}

	cert := &domain.GiftCertificate{
		Code:           code,
		Amount:         request.Amount,
		Balance:        request.Amount,
		Status:         domain.GiftCertificateStatusActive,
		RecipientName:  request.RecipientName,
		RecipientEmail: request.RecipientEmail,
		Message:        request.Message,
		OrderID:        request.OrderID,
		OrderItemID:    request.OrderItemID,
		ExpiresAt:      request.ExpiresAt,
	}

	if err := s.repo.Create(ctx, cert); err != nil {
		return nil, err
	}

	if cert.RecipientEmail != "" {
		go func() {
			if err := s.mailer.SendGiftCertificate(cert.RecipientEmail, cert.RecipientName, cert.Code, cert.Amount, cert.Message); err != nil {
				s.logger.WithField("gift_certificate_id", cert.ID).Error(fmt.Sprintf("Failed to send gift certificate email: %v", err))
			}
		}()
	}

	return cert, nil
}

// List retrieves all certificates, newest first
func (s *GiftCertificateService) List(ctx context.Context) ([]*domain.GiftCertificate, error) {
	return s.repo.List(ctx)
}

// Update applies a manual admin override to balance and/or status, enforcing
// the balance invariants before persisting
func (s *GiftCertificateService) Update(ctx context.Context, request *domain.UpdateGiftCertificateRequest) (*domain.GiftCertificate, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	cert, err := s.repo.GetByID(ctx, request.ID)
	if err != nil {
		return nil, err
	}

	if request.Balance != nil {
		cert.Balance = *request.Balance
	}
	if request.Status != nil {
		cert.Status = *request.Status
	}

	if err := cert.ValidateBalance(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, cert); err != nil {
		return nil, err
	}

	return cert, nil
}

// Redeem decrements an active certificate's balance by the given amount. The
// repository performs the decrement atomically; this layer turns the generic
// not-found from the conditional update into the precise rejection reason.
func (s *GiftCertificateService) Redeem(ctx context.Context, request *domain.RedeemGiftCertificateRequest) (*domain.GiftCertificate, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	cert, err := s.repo.Redeem(ctx, request.Code, request.Amount)
	if err == nil {
		return cert, nil
	}
	if !domain.IsNotFound(err) {
		return nil, err
	}

	// The conditional update matched no row; explain why
	existing, getErr := s.repo.GetByCode(ctx, request.Code)
	if getErr != nil {
		return nil, getErr
	}
	if existing.Status != domain.GiftCertificateStatusActive {
		return nil, domain.NewValidationError(fmt.Sprintf("gift certificate is %s", existing.Status))
	}
	if existing.ExpiresAt != nil && existing.ExpiresAt.Before(time.Now()) {
		return nil, domain.NewValidationError("gift certificate has expired")
	}
	if existing.Balance < request.Amount {
		return nil, domain.NewValidationError("insufficient gift certificate balance")
	}
	return nil, err
}
