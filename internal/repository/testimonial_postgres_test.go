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

func testimonialRows(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "customer_name", "vehicle_info", "content", "rating",
		"is_approved", "is_featured", "display_order", "created_at", "updated_at",
	}).AddRow(
		int64(3), "Dana Reyes", "1972 Harley Shovelhead", "Flawless candy red.", 5,
		true, true, 1, now, now,
	)
}

func TestTestimonialRepositoryCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewTestimonialRepository(db)

	mock.ExpectQuery("INSERT INTO testimonials").
		WithArgs(
			"Dana Reyes", "1972 Harley Shovelhead", "Flawless candy red.", 5,
			false, false, 0, sqlmock.AnyArg(), sqlmock.AnyArg(),
		).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	testimonial := &domain.Testimonial{
		CustomerName: "Dana Reyes",
		VehicleInfo:  "1972 Harley Shovelhead",
		Content:      "Flawless candy red.",
		Rating:       5,
	}

	require.NoError(t, repo.Create(context.Background(), testimonial))
	assert.Equal(t, int64(3), testimonial.ID)
	assert.False(t, testimonial.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTestimonialRepositoryList(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewTestimonialRepository(db)
	now := time.Now().UTC()

	t.Run("approved only", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM testimonials WHERE is_approved = TRUE ORDER BY display_order, id`).
			WillReturnRows(testimonialRows(now))

		testimonials, err := repo.List(context.Background(), true)
		require.NoError(t, err)
		require.Len(t, testimonials, 1)
		assert.True(t, testimonials[0].IsApproved)
	})

	t.Run("all", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM testimonials ORDER BY display_order, id`).
			WillReturnRows(testimonialRows(now))

		testimonials, err := repo.List(context.Background(), false)
		require.NoError(t, err)
		require.Len(t, testimonials, 1)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTestimonialRepositoryUpdate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewTestimonialRepository(db)

	t.Run("updates the row", func(t *testing.T) {
		mock.ExpectExec("UPDATE testimonials").
			WithArgs(
				"Dana Reyes", "1972 Harley Shovelhead", "Flawless candy red.", 5,
				true, false, 2, sqlmock.AnyArg(), int64(3),
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		testimonial := &domain.Testimonial{
			ID:           3,
			CustomerName: "Dana Reyes",
			VehicleInfo:  "1972 Harley Shovelhead",
			Content:      "Flawless candy red.",
			Rating:       5,
			IsApproved:   true,
			DisplayOrder: 2,
		}
		require.NoError(t, repo.Update(context.Background(), testimonial))
	})

	t.Run("zero rows affected is not found", func(t *testing.T) {
		mock.ExpectExec("UPDATE testimonials").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(context.Background(), &domain.Testimonial{ID: 99})
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTestimonialRepositoryDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewTestimonialRepository(db)

	t.Run("deletes the row", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM testimonials").
			WithArgs(int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(context.Background(), 3))
	})

	t.Run("zero rows affected is not found", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM testimonials").
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), 99)
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
