package service

import (
	"context"
	"fmt"

	"github.com/chromacraft/chromacraft/internal/domain"
	"github.com/chromacraft/chromacraft/pkg/logger"
	"github.com/chromacraft/chromacraft/pkg/notifier"
)

// OrderService handles checkout and admin fulfillment
type OrderService struct {
	repo     domain.OrderRepository
	notifier notifier.Notifier
	logger   logger.Logger
}

// NewOrderService creates a new order service
func NewOrderService(repo domain.OrderRepository, ownerNotifier notifier.Notifier, logger logger.Logger) *OrderService {
	return &OrderService{
		repo:     repo,
		notifier: ownerNotifier,
		logger:   logger,
	}
}

// Create validates the request, recomputes the money fields server-side, and
// persists the order with its line items. A client-supplied total that
// disagrees with subtotal + shipping + tax - discount is rejected.
func (s *OrderService) Create(ctx context.Context, request *domain.CreateOrderRequest) (*domain.OrderWithItems, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	subtotal := request.Subtotal()
	total := subtotal + request.ShippingCost + request.Tax - request.Discount
	if total < 0 {
		return nil, domain.NewValidationError("order total must not be negative")
	}
	if request.Total != nil && *request.Total != total {
		return nil, domain.NewValidationError("total does not match subtotal + shipping + tax - discount")
	}

	order := &domain.Order{
		CustomerName:    request.CustomerName,
		CustomerEmail:   request.CustomerEmail,
		CustomerPhone:   request.CustomerPhone,
		ShippingAddress: request.ShippingAddress,
		Subtotal:        subtotal,
		ShippingCost:    request.ShippingCost,
		Tax:             request.Tax,
		Discount:        request.Discount,
		Total:           total,
		Status:          domain.OrderStatusPending,
		PaymentStatus:   domain.PaymentStatusPending,
	}

	items := make([]*domain.OrderItem, 0, len(request.Items))
	for _, input := range request.Items {
		items = append(items, &domain.OrderItem{
			ProductID:   input.ProductID,
			VariantID:   input.VariantID,
			ProductName: input.ProductName,
			VariantName: input.VariantName,
			Price:       input.Price,
			Quantity:    input.Quantity,
			Total:       input.Price * int64(input.Quantity),
		})
	}

	if err := s.repo.CreateOrder(ctx, order, items); err != nil {
		return nil, err
	}

	go s.notifyOrder(order)

	return &domain.OrderWithItems{Order: order, Items: items}, nil
}

func (s *OrderService) notifyOrder(order *domain.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
	defer cancel()

	title := fmt.Sprintf("New order %s", order.OrderNumber)
	body := fmt.Sprintf("%s — $%.2f", order.CustomerName, float64(order.Total)/100)
	if err := s.notifier.NotifyOwner(ctx, title, body); err != nil {
		s.logger.WithField("order_id", order.ID).Error(fmt.Sprintf("Failed to notify owner: %v", err))
	}
}

// Get retrieves an order with its line items
func (s *OrderService) Get(ctx context.Context, id int64) (*domain.OrderWithItems, error) {
	order, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.GetOrderItems(ctx, id)
	if err != nil {
		return nil, err
	}

	return &domain.OrderWithItems{Order: order, Items: items}, nil
}

// List retrieves orders per the filter, newest first
func (s *OrderService) List(ctx context.Context, filter domain.OrderListFilter) ([]*domain.Order, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, domain.NewValidationError("invalid order status")
	}
	if filter.PaymentStatus != nil && !filter.PaymentStatus.IsValid() {
		return nil, domain.NewValidationError("invalid payment status")
	}
	return s.repo.ListOrders(ctx, filter)
}

// Update applies admin fulfillment changes. Nil request fields leave the
// corresponding order fields untouched; timestamps are only ever set
// explicitly, never derived from status changes.
func (s *OrderService) Update(ctx context.Context, request *domain.UpdateOrderRequest) (*domain.Order, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	order, err := s.repo.GetOrder(ctx, request.ID)
	if err != nil {
		return nil, err
	}

	if request.Status != nil {
		order.Status = *request.Status
	}
	if request.PaymentStatus != nil {
		order.PaymentStatus = *request.PaymentStatus
	}
	if request.Carrier != nil {
		order.Carrier = *request.Carrier
	}
	if request.TrackingNumber != nil {
		order.TrackingNumber = *request.TrackingNumber
	}
	if request.ShippedAt != nil {
		order.ShippedAt = request.ShippedAt
	}
	if request.DeliveredAt != nil {
		order.DeliveredAt = request.DeliveredAt
	}

	if err := s.repo.UpdateOrder(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}
