package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/chromacraft/chromacraft/internal/domain"
	"github.com/chromacraft/chromacraft/pkg/logger"
	"github.com/chromacraft/chromacraft/pkg/mailer"
	"github.com/chromacraft/chromacraft/pkg/notifier"
	"github.com/chromacraft/chromacraft/pkg/storage"
)

// sideEffectTimeout bounds the post-commit mail/notify/upload work so a slow
// external service cannot hold goroutines forever
const sideEffectTimeout = 30 * time.Second

// QuoteService handles the public quote intake and the admin status workflow
type QuoteService struct {
	repo       domain.QuoteRepository
	storage    storage.BlobStorage
	mailer     mailer.Mailer
	notifier   notifier.Notifier
	logger     logger.Logger
	alertEmail string
}

// NewQuoteService creates a new quote service
func NewQuoteService(
	repo domain.QuoteRepository,
	blobStorage storage.BlobStorage,
	mailService mailer.Mailer,
	ownerNotifier notifier.Notifier,
	logger logger.Logger,
	alertEmail string,
) *QuoteService {
	return &QuoteService{
		repo:       repo,
		storage:    blobStorage,
		mailer:     mailService,
		notifier:   ownerNotifier,
		logger:     logger,
		alertEmail: alertEmail,
	}
}

// Submit validates and persists a quote request, stores any uploaded files,
// and kicks off the notification side effects. The quote row is the source of
// truth: failures in file storage, email, or the owner notification are
// logged and swallowed so the customer still gets a success response.
func (s *QuoteService) Submit(ctx context.Context, request *domain.SubmitQuoteRequest) (*domain.QuoteSubmission, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	quote := &domain.QuoteSubmission{
		CustomerName:  request.CustomerName,
		CustomerEmail: request.CustomerEmail,
		CustomerPhone: request.CustomerPhone,
		VehicleType:   request.VehicleType,
		VehicleMake:   request.VehicleMake,
		VehicleModel:  request.VehicleModel,
		VehicleYear:   request.VehicleYear,
		ServiceType:   request.ServiceType,
		Finish:        request.Finish,
		Description:   request.Description,
		Budget:        request.Budget,
		Timeline:      request.Timeline,
		Status:        domain.QuoteStatusNew,
	}

	if err := s.repo.CreateQuote(ctx, quote); err != nil {
		return nil, fmt.Errorf("failed to create quote: %w", err)
	}

	s.storeUploads(ctx, quote.ID, request.Files)

	go s.notifySubmission(quote)

	return quote, nil
}

// storeUploads decodes and stores each attachment. A bad or unstorable file
// is logged and skipped; it never fails the submission.
func (s *QuoteService) storeUploads(ctx context.Context, quoteID int64, uploads []domain.QuoteUpload) {
	for i, upload := range uploads {
		data, err := base64.StdEncoding.DecodeString(upload.Data)
		if err != nil {
			s.logger.WithFields(map[string]interface{}{
				"quote_id": quoteID,
				"filename": upload.Filename,
			}).Warn("Skipping quote file with invalid base64 payload")
			continue
		}

		key := fmt.Sprintf("quotes/%d/%d-%s", quoteID, i, upload.Filename)
		result, err := s.storage.Put(ctx, key, data, upload.MimeType)
		if err != nil {
			s.logger.WithFields(map[string]interface{}{
				"quote_id": quoteID,
				"filename": upload.Filename,
				"error":    err.Error(),
			}).Error("Failed to store quote file")
			continue
		}

		file := &domain.QuoteFile{
			QuoteID:    quoteID,
			StorageKey: result.Key,
			URL:        result.URL,
			Filename:   upload.Filename,
			MimeType:   upload.MimeType,
			SizeBytes:  int64(len(data)),
		}
		if err := s.repo.CreateQuoteFile(ctx, file); err != nil {
			s.logger.WithFields(map[string]interface{}{
				"quote_id": quoteID,
				"filename": upload.Filename,
				"error":    err.Error(),
			}).Error("Failed to record quote file")
		}
	}
}

func (s *QuoteService) notifySubmission(quote *domain.QuoteSubmission) {
	ctx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
	defer cancel()

	if err := s.mailer.SendQuoteConfirmation(quote.CustomerEmail, quote.CustomerName, quote.ID); err != nil {
		s.logger.WithField("quote_id", quote.ID).Error(fmt.Sprintf("Failed to send quote confirmation: %v", err))
	}

	if s.alertEmail != "" {
		if err := s.mailer.SendQuoteAlert(s.alertEmail, quote.CustomerName, quote.VehicleType, quote.ServiceType, quote.ID); err != nil {
			s.logger.WithField("quote_id", quote.ID).Error(fmt.Sprintf("Failed to send quote alert: %v", err))
		}
	}

	title := fmt.Sprintf("New quote request #%d", quote.ID)
	body := fmt.Sprintf("%s — %s / %s", quote.CustomerName, quote.VehicleType, quote.ServiceType)
	if err := s.notifier.NotifyOwner(ctx, title, body); err != nil {
		s.logger.WithField("quote_id", quote.ID).Error(fmt.Sprintf("Failed to notify owner: %v", err))
	}
}

// Get retrieves a quote with its uploaded files
func (s *QuoteService) Get(ctx context.Context, id int64) (*domain.QuoteWithFiles, error) {
	quote, err := s.repo.GetQuote(ctx, id)
	if err != nil {
		return nil, err
	}

	files, err := s.repo.GetQuoteFiles(ctx, id)
	if err != nil {
		return nil, err
	}

	return &domain.QuoteWithFiles{Quote: quote, Files: files}, nil
}

// List retrieves quotes per the filter, newest first
func (s *QuoteService) List(ctx context.Context, filter domain.QuoteListFilter) ([]*domain.QuoteSubmission, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, domain.NewValidationError("invalid quote status")
	}
	return s.repo.ListQuotes(ctx, filter)
}

// UpdateStatus sets a quote's workflow status and returns the updated quote
func (s *QuoteService) UpdateStatus(ctx context.Context, request *domain.UpdateQuoteStatusRequest) (*domain.QuoteSubmission, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateQuoteStatus(ctx, request.ID, request.Status); err != nil {
		return nil, err
	}

	return s.repo.GetQuote(ctx, request.ID)
}
