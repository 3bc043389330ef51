package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chromacraft/chromacraft/internal/domain"
)

func TestOrderRepositoryCreateOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewOrderRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM orders`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(20)))
	mock.ExpectQuery("INSERT INTO order_items").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(31)))
	mock.ExpectQuery("INSERT INTO order_items").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(32)))
	mock.ExpectCommit()

	order := &domain.Order{
		CustomerName:    "Dana Reyes",
		CustomerEmail:   "dana@example.com",
		ShippingAddress: "1 Main St",
		Subtotal:        11500,
		Total:           13000,
	}
	items := []*domain.OrderItem{
		{ProductID: 1, ProductName: "Candy Apple Red Kit", Price: 5000, Quantity: 2, Total: 10000},
		{ProductID: 2, ProductName: "Clear Coat", Price: 1500, Quantity: 1, Total: 1500},
	}

	require.NoError(t, repo.CreateOrder(context.Background(), order, items))

	assert.Equal(t, int64(20), order.ID)
	// fifth order of the day
	expected := fmt.Sprintf("ORD-%s-005", time.Now().UTC().Format("20060102"))
	assert.Equal(t, expected, order.OrderNumber)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, domain.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, int64(20), items[0].OrderID)
	assert.Equal(t, int64(31), items[0].ID)
	assert.Equal(t, int64(32), items[1].ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepositoryCreateOrderRollsBackOnItemFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewOrderRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM orders`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectQuery("INSERT INTO order_items").
		WillReturnError(fmt.Errorf("constraint violation"))
	mock.ExpectRollback()

	order := &domain.Order{
		CustomerName:    "Dana Reyes",
		CustomerEmail:   "dana@example.com",
		ShippingAddress: "1 Main St",
	}
	items := []*domain.OrderItem{
		{ProductID: 1, ProductName: "Candy Apple Red Kit", Price: 5000, Quantity: 1, Total: 5000},
	}

	err = repo.CreateOrder(context.Background(), order, items)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create order item")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepositoryGetOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewOrderRepository(db)
	now := time.Now().UTC()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{
			"id", "order_number", "customer_name", "customer_email", "customer_phone",
			"shipping_address", "subtotal", "shipping_cost", "tax", "discount", "total",
			"status", "payment_status", "stripe_payment_id", "carrier", "tracking_number",
			"shipped_at", "delivered_at", "created_at", "updated_at",
		}).AddRow(
			int64(20), "ORD-20260901-005", "Dana Reyes", "dana@example.com", "",
			"1 Main St", int64(11500), int64(800), int64(950), int64(250), int64(13000),
			"pending", "pending", "", "", "",
			nil, nil, now, now,
		)

		mock.ExpectQuery("SELECT (.+) FROM orders WHERE id").
			WithArgs(int64(20)).
			WillReturnRows(rows)

		order, err := repo.GetOrder(context.Background(), 20)
		require.NoError(t, err)
		assert.Equal(t, "ORD-20260901-005", order.OrderNumber)
		assert.Equal(t, int64(13000), order.Total)
		assert.Nil(t, order.ShippedAt)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM orders WHERE id").
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetOrder(context.Background(), 99)
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepositoryListOrders(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewOrderRepository(db)
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "order_number", "customer_name", "customer_email", "customer_phone",
		"shipping_address", "subtotal", "shipping_cost", "tax", "discount", "total",
		"status", "payment_status", "stripe_payment_id", "carrier", "tracking_number",
		"shipped_at", "delivered_at", "created_at", "updated_at",
	}).AddRow(
		int64(20), "ORD-20260901-005", "Dana Reyes", "dana@example.com", "",
		"1 Main St", int64(11500), int64(800), int64(950), int64(250), int64(13000),
		"shipped", "paid", "", "UPS", "1Z999",
		now, nil, now, now,
	)

	status := domain.OrderStatusShipped
	payment := domain.PaymentStatusPaid
	mock.ExpectQuery(`SELECT (.+) FROM orders WHERE status = \$1 AND payment_status = \$2 ORDER BY created_at DESC LIMIT 10`).
		WithArgs("shipped", "paid").
		WillReturnRows(rows)

	orders, err := repo.ListOrders(context.Background(), domain.OrderListFilter{
		Status:        &status,
		PaymentStatus: &payment,
		Limit:         10,
	})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "1Z999", orders[0].TrackingNumber)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepositoryUpdateOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewOrderRepository(db)

	t.Run("updates the row", func(t *testing.T) {
		mock.ExpectExec("UPDATE orders").
			WithArgs(
				domain.OrderStatusShipped, domain.PaymentStatusPaid, "UPS", "1Z999",
				sqlmock.AnyArg(), nil, sqlmock.AnyArg(), int64(20),
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		shippedAt := time.Now().UTC()
		order := &domain.Order{
			ID:             20,
			Status:         domain.OrderStatusShipped,
			PaymentStatus:  domain.PaymentStatusPaid,
			Carrier:        "UPS",
			TrackingNumber: "1Z999",
			ShippedAt:      &shippedAt,
		}
		require.NoError(t, repo.UpdateOrder(context.Background(), order))
	})

	t.Run("zero rows affected is not found", func(t *testing.T) {
		mock.ExpectExec("UPDATE orders").
			WillReturnResult(sqlmock.NewResult(0, 0))

		order := &domain.Order{ID: 99, Status: domain.OrderStatusShipped, PaymentStatus: domain.PaymentStatusPaid}
		err := repo.UpdateOrder(context.Background(), order)
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
