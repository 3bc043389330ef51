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

func giftCertificateRows(id int64, code string, balance int64, status string) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows([]string{
		"id", "code", "amount", "balance", "status",
		"recipient_name", "recipient_email", "message",
		"order_id", "order_item_id", "expires_at", "created_at", "updated_at",
	}).AddRow(id, code, int64(10000), balance, status, "", "", "", nil, nil, nil, now, now)
}

func TestGiftCertificateRepositoryCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewGiftCertificateRepository(db)

	mock.ExpectQuery("INSERT INTO gift_certificates").
		WithArgs(
			"GIFT-ABCDEFGH", int64(10000), int64(10000), domain.GiftCertificateStatusActive,
			"Kim", "kim@example.com", "", nil, nil, nil,
			sqlmock.AnyArg(), sqlmock.AnyArg(),
		).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	cert := &domain.GiftCertificate{
		Code:           "GIFT-ABCDEFGH",
		Amount:         10000,
		Balance:        10000,
		Status:         domain.GiftCertificateStatusActive,
		RecipientName:  "Kim",
		RecipientEmail: "kim@example.com",
	}

	require.NoError(t, repo.Create(context.Background(), cert))
	assert.Equal(t, int64(1), cert.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGiftCertificateRepositoryRedeem(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewGiftCertificateRepository(db)

	t.Run("decrements the balance", func(t *testing.T) {
		mock.ExpectQuery("UPDATE gift_certificates").
			WithArgs(int64(2500), sqlmock.AnyArg(), "GIFT-ABCDEFGH").
			WillReturnRows(giftCertificateRows(1, "GIFT-ABCDEFGH", 7500, "active"))

		cert, err := repo.Redeem(context.Background(), "GIFT-ABCDEFGH", 2500)
		require.NoError(t, err)
		assert.Equal(t, int64(7500), cert.Balance)
		assert.Equal(t, domain.GiftCertificateStatusActive, cert.Status)
	})

	t.Run("flips to redeemed on exhaustion", func(t *testing.T) {
		mock.ExpectQuery("UPDATE gift_certificates").
			WithArgs(int64(10000), sqlmock.AnyArg(), "GIFT-ABCDEFGH").
			WillReturnRows(giftCertificateRows(1, "GIFT-ABCDEFGH", 0, "redeemed"))

		cert, err := repo.Redeem(context.Background(), "GIFT-ABCDEFGH", 10000)
		require.NoError(t, err)
		assert.Equal(t, int64(0), cert.Balance)
		assert.Equal(t, domain.GiftCertificateStatusRedeemed, cert.Status)
	})

	t.Run("an expired certificate matches no row", func(t *testing.T) {
		// the WHERE clause must carry the expiry predicate so a certificate
		// past its expires_at cannot redeem while its status is still active
		mock.ExpectQuery(`UPDATE gift_certificates SET (.+) WHERE code = \$3 AND status = 'active' AND balance >= \$1 AND \(expires_at IS NULL OR expires_at > \$2\)`).
			WithArgs(int64(2500), sqlmock.AnyArg(), "GIFT-EXPIRED2").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.Redeem(context.Background(), "GIFT-EXPIRED2", 2500)
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("no matching row is not found", func(t *testing.T) {
		mock.ExpectQuery("UPDATE gift_certificates").
			WithArgs(int64(99999), sqlmock.AnyArg(), "GIFT-ABCDEFGH").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.Redeem(context.Background(), "GIFT-ABCDEFGH", 99999)
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGiftCertificateRepositoryGetByCode(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewGiftCertificateRepository(db)

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM gift_certificates WHERE code").
			WithArgs("GIFT-ABCDEFGH").
			WillReturnRows(giftCertificateRows(1, "GIFT-ABCDEFGH", 10000, "active"))

		cert, err := repo.GetByCode(context.Background(), "GIFT-ABCDEFGH")
		require.NoError(t, err)
		assert.Equal(t, "GIFT-ABCDEFGH", cert.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM gift_certificates WHERE code").
			WithArgs("GIFT-MISSING9").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByCode(context.Background(), "GIFT-MISSING9")
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGiftCertificateRepositoryUpdate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewGiftCertificateRepository(db)

	t.Run("updates balance and status", func(t *testing.T) {
		mock.ExpectExec("UPDATE gift_certificates").
			WithArgs(int64(500), domain.GiftCertificateStatusActive, sqlmock.AnyArg(), int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		cert := &domain.GiftCertificate{ID: 1, Balance: 500, Status: domain.GiftCertificateStatusActive}
		require.NoError(t, repo.Update(context.Background(), cert))
	})

	t.Run("zero rows affected is not found", func(t *testing.T) {
		mock.ExpectExec("UPDATE gift_certificates").
			WithArgs(int64(500), domain.GiftCertificateStatusActive, sqlmock.AnyArg(), int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		cert := &domain.GiftCertificate{ID: 99, Balance: 500, Status: domain.GiftCertificateStatusActive}
		err := repo.Update(context.Background(), cert)
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
