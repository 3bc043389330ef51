package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chromacraft/chromacraft/internal/domain"
	"github.com/chromacraft/chromacraft/internal/domain/mocks"
	"github.com/chromacraft/chromacraft/pkg/logger"
	pkgmocks "github.com/chromacraft/chromacraft/pkg/mocks"
	"github.com/chromacraft/chromacraft/pkg/notifier"
)

func validCreateOrderRequest() *domain.CreateOrderRequest {
	return &domain.CreateOrderRequest{
		CustomerName:    "Dana Reyes",
		CustomerEmail:   "dana@example.com",
		ShippingAddress: "1 Main St, Springfield",
		Items: []domain.OrderItemInput{
			{ProductID: 1, ProductName: "Candy Apple Red Kit", Price: 5000, Quantity: 2},
			{ProductID: 2, ProductName: "Clear Coat", Price: 1500, Quantity: 1},
		},
		ShippingCost: 800,
		Tax:          950,
		Discount:     250,
	}
}

func newOrderServiceForTest(repo domain.OrderRepository) *OrderService {
	return NewOrderService(repo, notifier.NewConsoleNotifier(), logger.NewLogger())
}

func TestOrderServiceCreate(t *testing.T) {
	t.Run("recomputes money fields server side", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockOrderRepository(ctrl)
		repo.EXPECT().
			CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, order *domain.Order, items []*domain.OrderItem) error {
				assert.Equal(t, int64(11500), order.Subtotal)
				assert.Equal(t, int64(13000), order.Total) // 11500 + 800 + 950 - 250
				assert.Equal(t, domain.OrderStatusPending, order.Status)
				assert.Equal(t, domain.PaymentStatusPending, order.PaymentStatus)
				require.Len(t, items, 2)
				assert.Equal(t, int64(10000), items[0].Total)
				order.ID = 1
				order.OrderNumber = "ORD-20260901-0001"
				return nil
			})

		svc := newOrderServiceForTest(repo)

		result, err := svc.Create(context.Background(), validCreateOrderRequest())
		require.NoError(t, err)
		assert.Equal(t, "ORD-20260901-0001", result.Order.OrderNumber)
		assert.Len(t, result.Items, 2)
	})

	t.Run("notifies the owner of a new order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockOrderRepository(ctrl)
		repo.EXPECT().
			CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, order *domain.Order, _ []*domain.OrderItem) error {
				order.ID = 6
				order.OrderNumber = "ORD-20260901-0006"
				return nil
			})

		// the notification runs on its own goroutine, so the expectation
		// signals back before the controller is finished
		notified := make(chan struct{})
		owner := pkgmocks.NewMockNotifier(ctrl)
		owner.EXPECT().
			NotifyOwner(gomock.Any(), "New order ORD-20260901-0006", "Dana Reyes — $130.00").
			DoAndReturn(func(_ context.Context, _, _ string) error {
				close(notified)
				return nil
			})

		svc := NewOrderService(repo, owner, logger.NewLogger())

		_, err := svc.Create(context.Background(), validCreateOrderRequest())
		require.NoError(t, err)

		select {
		case <-notified:
		case <-time.After(time.Second):
			t.Fatal("owner was never notified of the order")
		}
	})

	t.Run("accepts a client total that matches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockOrderRepository(ctrl)
		repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		request := validCreateOrderRequest()
		clientTotal := int64(13000)
		request.Total = &clientTotal

		svc := newOrderServiceForTest(repo)
		_, err := svc.Create(context.Background(), request)
		require.NoError(t, err)
	})

	t.Run("rejects a client total that disagrees", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockOrderRepository(ctrl)
		svc := newOrderServiceForTest(repo)

		request := validCreateOrderRequest()
		clientTotal := int64(9999)
		request.Total = &clientTotal

		_, err := svc.Create(context.Background(), request)
		require.Error(t, err)
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("rejects an explicit zero total on a priced order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockOrderRepository(ctrl)
		svc := newOrderServiceForTest(repo)

		// zero is a real disagreement, not an omitted total
		request := validCreateOrderRequest()
		clientTotal := int64(0)
		request.Total = &clientTotal

		_, err := svc.Create(context.Background(), request)
		require.Error(t, err)
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("rejects a discount that drives the total negative", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockOrderRepository(ctrl)
		svc := newOrderServiceForTest(repo)

		request := validCreateOrderRequest()
		request.Discount = 100000

		_, err := svc.Create(context.Background(), request)
		require.Error(t, err)
		assert.True(t, domain.IsValidationError(err))
	})
}

func TestOrderServiceGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	order := &domain.Order{ID: 3, OrderNumber: "ORD-20260901-0003"}
	items := []*domain.OrderItem{{ID: 1, OrderID: 3}}

	repo := mocks.NewMockOrderRepository(ctrl)
	repo.EXPECT().GetOrder(gomock.Any(), int64(3)).Return(order, nil)
	repo.EXPECT().GetOrderItems(gomock.Any(), int64(3)).Return(items, nil)

	svc := newOrderServiceForTest(repo)

	result, err := svc.Get(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, order, result.Order)
	assert.Equal(t, items, result.Items)
}

func TestOrderServiceList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockOrderRepository(ctrl)
	svc := newOrderServiceForTest(repo)

	bad := domain.OrderStatus("bogus")
	_, err := svc.List(context.Background(), domain.OrderListFilter{Status: &bad})
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))

	badPay := domain.PaymentStatus("bogus")
	_, err = svc.List(context.Background(), domain.OrderListFilter{PaymentStatus: &badPay})
	require.Error(t, err)

	status := domain.OrderStatusShipped
	filter := domain.OrderListFilter{Status: &status, Limit: 20}
	repo.EXPECT().ListOrders(gomock.Any(), filter).Return([]*domain.Order{}, nil)

	orders, err := svc.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderServiceUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockOrderRepository(ctrl)
	svc := newOrderServiceForTest(repo)

	t.Run("applies only the provided fields", func(t *testing.T) {
		existing := &domain.Order{
			ID:            8,
			Status:        domain.OrderStatusProcessing,
			PaymentStatus: domain.PaymentStatusPaid,
			Carrier:       "UPS",
		}
		repo.EXPECT().GetOrder(gomock.Any(), int64(8)).Return(existing, nil)
		repo.EXPECT().
			UpdateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, order *domain.Order) error {
				assert.Equal(t, domain.OrderStatusShipped, order.Status)
				assert.Equal(t, domain.PaymentStatusPaid, order.PaymentStatus)
				assert.Equal(t, "UPS", order.Carrier)
				assert.Equal(t, "1Z999", order.TrackingNumber)
				require.NotNil(t, order.ShippedAt)
				assert.Nil(t, order.DeliveredAt)
				return nil
			})

		status := domain.OrderStatusShipped
		tracking := "1Z999"
		shippedAt := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

		order, err := svc.Update(context.Background(), &domain.UpdateOrderRequest{
			ID:             8,
			Status:         &status,
			TrackingNumber: &tracking,
			ShippedAt:      &shippedAt,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusShipped, order.Status)
	})

	t.Run("missing order surfaces as not found", func(t *testing.T) {
		repo.EXPECT().GetOrder(gomock.Any(), int64(99)).Return(nil, domain.NewNotFoundError("order", "99"))

		status := domain.OrderStatusShipped
		_, err := svc.Update(context.Background(), &domain.UpdateOrderRequest{ID: 99, Status: &status})
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})
}
