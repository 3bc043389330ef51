package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chromacraft/chromacraft/internal/domain"
)

func TestQuoteRepositoryCreateQuote(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewQuoteRepository(db)

	mock.ExpectQuery("INSERT INTO quote_submissions").
		WithArgs(
			"Dana Reyes", "dana@example.com", "", "motorcycle", "", "", "",
			"custom paint", "", "", "", "",
			domain.QuoteStatusNew, sqlmock.AnyArg(), sqlmock.AnyArg(),
		).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	quote := &domain.QuoteSubmission{
		CustomerName:  "Dana Reyes",
		CustomerEmail: "dana@example.com",
		VehicleType:   "motorcycle",
		ServiceType:   "custom paint",
	}

	require.NoError(t, repo.CreateQuote(context.Background(), quote))
	assert.Equal(t, int64(7), quote.ID)
	assert.Equal(t, domain.QuoteStatusNew, quote.Status)
	assert.False(t, quote.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuoteRepositoryGetQuote(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewQuoteRepository(db)
	now := time.Now().UTC()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{
			"id", "customer_name", "customer_email", "customer_phone",
			"vehicle_type", "vehicle_make", "vehicle_model", "vehicle_year",
			"service_type", "finish", "description", "budget", "timeline",
			"status", "created_at", "updated_at",
		}).AddRow(
			int64(7), "Dana Reyes", "dana@example.com", "",
			"motorcycle", "", "", "",
			"custom paint", "", "", "", "",
			"new", now, now,
		)

		mock.ExpectQuery("SELECT (.+) FROM quote_submissions").
			WithArgs(int64(7)).
			WillReturnRows(rows)

		quote, err := repo.GetQuote(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, int64(7), quote.ID)
		assert.Equal(t, domain.QuoteStatusNew, quote.Status)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM quote_submissions").
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetQuote(context.Background(), 99)
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuoteRepositoryListQuotes(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewQuoteRepository(db)
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "customer_name", "customer_email", "customer_phone",
		"vehicle_type", "vehicle_make", "vehicle_model", "vehicle_year",
		"service_type", "finish", "description", "budget", "timeline",
		"status", "created_at", "updated_at",
	}).AddRow(
		int64(2), "Kim Soto", "kim@example.com", "",
		"car", "", "", "",
		"restoration", "", "", "", "",
		"new", now, now,
	)

	status := domain.QuoteStatusNew
	mock.ExpectQuery(`SELECT (.+) FROM quote_submissions WHERE status = \$1 ORDER BY created_at DESC LIMIT 10 OFFSET 20`).
		WithArgs("new").
		WillReturnRows(rows)

	quotes, err := repo.ListQuotes(context.Background(), domain.QuoteListFilter{
		Status: &status,
		Limit:  10,
		Offset: 20,
	})
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, "Kim Soto", quotes[0].CustomerName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuoteRepositoryUpdateQuoteStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewQuoteRepository(db)

	t.Run("updates the row", func(t *testing.T) {
		mock.ExpectExec("UPDATE quote_submissions").
			WithArgs(domain.QuoteStatusReviewed, sqlmock.AnyArg(), int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateQuoteStatus(context.Background(), 7, domain.QuoteStatusReviewed))
	})

	t.Run("zero rows affected is not found", func(t *testing.T) {
		mock.ExpectExec("UPDATE quote_submissions").
			WithArgs(domain.QuoteStatusReviewed, sqlmock.AnyArg(), int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateQuoteStatus(context.Background(), 99, domain.QuoteStatusReviewed)
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
