package service

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chromacraft/chromacraft/internal/domain"
	"github.com/chromacraft/chromacraft/internal/domain/mocks"
	"github.com/chromacraft/chromacraft/pkg/logger"
	"github.com/chromacraft/chromacraft/pkg/mailer"
	pkgmocks "github.com/chromacraft/chromacraft/pkg/mocks"
	"github.com/chromacraft/chromacraft/pkg/notifier"
	"github.com/chromacraft/chromacraft/pkg/storage"
)

func validSubmitQuoteRequest() *domain.SubmitQuoteRequest {
	return &domain.SubmitQuoteRequest{
		CustomerName:  "Dana Reyes",
		CustomerEmail: "dana@example.com",
		VehicleType:   "motorcycle",
		ServiceType:   "custom paint",
	}
}

func newQuoteServiceForTest(repo domain.QuoteRepository, blob storage.BlobStorage) *QuoteService {
	// console side effects keep the fire-and-forget goroutine off the mock
	// controller
	return NewQuoteService(repo, blob, mailer.NewConsoleMailer(), notifier.NewConsoleNotifier(), logger.NewLogger(), "owner@example.com")
}

func TestQuoteServiceSubmit(t *testing.T) {
	t.Run("persists the quote with status new", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockQuoteRepository(ctrl)
		repo.EXPECT().
			CreateQuote(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, quote *domain.QuoteSubmission) error {
				assert.Equal(t, domain.QuoteStatusNew, quote.Status)
				assert.Equal(t, "Dana Reyes", quote.CustomerName)
				quote.ID = 7
				return nil
			})

		svc := newQuoteServiceForTest(repo, storage.NewMemoryStorage("http://localhost/files"))

		quote, err := svc.Submit(context.Background(), validSubmitQuoteRequest())
		require.NoError(t, err)
		assert.Equal(t, int64(7), quote.ID)
		assert.Equal(t, domain.QuoteStatusNew, quote.Status)
	})

	t.Run("stores uploaded files under the quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		payload := []byte("fake image bytes")
		request := validSubmitQuoteRequest()
		request.Files = []domain.QuoteUpload{
			{
				Filename: "tank.jpg",
				MimeType: "image/jpeg",
				Data:     base64.StdEncoding.EncodeToString(payload),
			},
		}

		repo := mocks.NewMockQuoteRepository(ctrl)
		repo.EXPECT().
			CreateQuote(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, quote *domain.QuoteSubmission) error {
				quote.ID = 12
				return nil
			})
		repo.EXPECT().
			CreateQuoteFile(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, file *domain.QuoteFile) error {
				assert.Equal(t, int64(12), file.QuoteID)
				assert.Equal(t, "quotes/12/0-tank.jpg", file.StorageKey)
				assert.Equal(t, "tank.jpg", file.Filename)
				assert.Equal(t, int64(len(payload)), file.SizeBytes)
				return nil
			})

		blob := storage.NewMemoryStorage("http://localhost/files")
		svc := newQuoteServiceForTest(repo, blob)

		_, err := svc.Submit(context.Background(), request)
		require.NoError(t, err)

		stored, ok := blob.Get("quotes/12/0-tank.jpg")
		require.True(t, ok)
		assert.Equal(t, payload, stored)
	})

	t.Run("a file with invalid base64 is skipped, not fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		request := validSubmitQuoteRequest()
		request.Files = []domain.QuoteUpload{
			{Filename: "bad.jpg", MimeType: "image/jpeg", Data: "!!! not base64 !!!"},
		}

		repo := mocks.NewMockQuoteRepository(ctrl)
		repo.EXPECT().
			CreateQuote(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, quote *domain.QuoteSubmission) error {
				quote.ID = 3
				return nil
			})
		// no CreateQuoteFile expectation: the bad file must be dropped

		svc := newQuoteServiceForTest(repo, storage.NewMemoryStorage("http://localhost/files"))

		quote, err := svc.Submit(context.Background(), request)
		require.NoError(t, err)
		assert.Equal(t, int64(3), quote.ID)
	})

	t.Run("a storage failure drops the file and logs it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		payload := []byte("fake image bytes")
		request := validSubmitQuoteRequest()
		request.Files = []domain.QuoteUpload{
			{
				Filename: "tank.jpg",
				MimeType: "image/jpeg",
				Data:     base64.StdEncoding.EncodeToString(payload),
			},
		}

		repo := mocks.NewMockQuoteRepository(ctrl)
		repo.EXPECT().
			CreateQuote(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, quote *domain.QuoteSubmission) error {
				quote.ID = 21
				return nil
			})
		// no CreateQuoteFile expectation: the unstored file is never recorded

		blob := pkgmocks.NewMockBlobStorage(ctrl)
		blob.EXPECT().
			Put(gomock.Any(), "quotes/21/0-tank.jpg", payload, "image/jpeg").
			Return(nil, errors.New("bucket unavailable"))

		log := pkgmocks.NewMockLogger(ctrl)
		log.EXPECT().WithFields(gomock.Any()).Return(log)
		log.EXPECT().Error("Failed to store quote file")

		svc := NewQuoteService(repo, blob, mailer.NewConsoleMailer(), notifier.NewConsoleNotifier(), log, "owner@example.com")

		quote, err := svc.Submit(context.Background(), request)
		require.NoError(t, err)
		assert.Equal(t, int64(21), quote.ID)
	})

	t.Run("invalid request never reaches the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockQuoteRepository(ctrl)
		svc := newQuoteServiceForTest(repo, storage.NewMemoryStorage("http://localhost/files"))

		request := validSubmitQuoteRequest()
		request.CustomerEmail = "nope"
		_, err := svc.Submit(context.Background(), request)
		require.Error(t, err)
		assert.True(t, domain.IsValidationError(err))
	})
}

func TestQuoteServiceGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quote := &domain.QuoteSubmission{ID: 9, CustomerName: "Dana Reyes"}
	files := []*domain.QuoteFile{{ID: 1, QuoteID: 9, Filename: "tank.jpg"}}

	repo := mocks.NewMockQuoteRepository(ctrl)
	repo.EXPECT().GetQuote(gomock.Any(), int64(9)).Return(quote, nil)
	repo.EXPECT().GetQuoteFiles(gomock.Any(), int64(9)).Return(files, nil)

	svc := newQuoteServiceForTest(repo, storage.NewMemoryStorage("http://localhost/files"))

	bundle, err := svc.Get(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, quote, bundle.Quote)
	assert.Equal(t, files, bundle.Files)
}

func TestQuoteServiceList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockQuoteRepository(ctrl)
	svc := newQuoteServiceForTest(repo, storage.NewMemoryStorage("http://localhost/files"))

	t.Run("rejects an invalid status filter", func(t *testing.T) {
		bad := domain.QuoteStatus("bogus")
		_, err := svc.List(context.Background(), domain.QuoteListFilter{Status: &bad})
		require.Error(t, err)
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("passes the filter through", func(t *testing.T) {
		status := domain.QuoteStatusNew
		filter := domain.QuoteListFilter{Status: &status, Limit: 10}
		repo.EXPECT().ListQuotes(gomock.Any(), filter).Return([]*domain.QuoteSubmission{}, nil)

		quotes, err := svc.List(context.Background(), filter)
		require.NoError(t, err)
		assert.Empty(t, quotes)
	})
}

func TestQuoteServiceUpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockQuoteRepository(ctrl)
	svc := newQuoteServiceForTest(repo, storage.NewMemoryStorage("http://localhost/files"))

	t.Run("updates and returns the quote", func(t *testing.T) {
		updated := &domain.QuoteSubmission{ID: 4, Status: domain.QuoteStatusReviewed}
		repo.EXPECT().UpdateQuoteStatus(gomock.Any(), int64(4), domain.QuoteStatusReviewed).Return(nil)
		repo.EXPECT().GetQuote(gomock.Any(), int64(4)).Return(updated, nil)

		quote, err := svc.UpdateStatus(context.Background(), &domain.UpdateQuoteStatusRequest{
			ID: 4, Status: domain.QuoteStatusReviewed,
		})
		require.NoError(t, err)
		assert.Equal(t, updated, quote)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		_, err := svc.UpdateStatus(context.Background(), &domain.UpdateQuoteStatusRequest{
			ID: 4, Status: domain.QuoteStatus("bogus"),
		})
		require.Error(t, err)
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("missing quote surfaces as not found", func(t *testing.T) {
		repo.EXPECT().
			UpdateQuoteStatus(gomock.Any(), int64(99), domain.QuoteStatusQuoted).
			Return(domain.NewNotFoundError("quote", "99"))

		_, err := svc.UpdateStatus(context.Background(), &domain.UpdateQuoteStatusRequest{
			ID: 99, Status: domain.QuoteStatusQuoted,
		})
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})
}
