package domain

import (
	"context"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_order_repository.go -package mocks github.com/chromacraft/chromacraft/internal/domain OrderRepository
//go:generate mockgen -destination mocks/mock_order_service.go -package mocks github.com/chromacraft/chromacraft/internal/domain OrderService

// OrderStatus is the fulfillment state of an order. As with quotes, any
// status may be set directly by an admin; only set membership is checked.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValid reports whether the status is one of the enumerated values
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// PaymentStatus is an independent axis from fulfillment status
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// IsValid reports whether the status is one of the enumerated values
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// Order is an immutable snapshot of a completed cart. All money fields are
// integer cents. ShippedAt/DeliveredAt are set manually by admin updates,
// never auto-populated on status changes.
type Order struct {
	ID              int64         `json:"id"`
	OrderNumber     string        `json:"order_number"`
	CustomerName    string        `json:"customer_name"`
	CustomerEmail   string        `json:"customer_email"`
	CustomerPhone   string        `json:"customer_phone,omitempty"`
	ShippingAddress string        `json:"shipping_address"`
	Subtotal        int64         `json:"subtotal"`
	ShippingCost    int64         `json:"shipping_cost"`
	Tax             int64         `json:"tax"`
	Discount        int64         `json:"discount"`
	Total           int64         `json:"total"`
	Status          OrderStatus   `json:"status"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	StripePaymentID string        `json:"stripe_payment_id,omitempty"`
	Carrier         string        `json:"carrier,omitempty"`
	TrackingNumber  string        `json:"tracking_number,omitempty"`
	ShippedAt       *time.Time    `json:"shipped_at,omitempty"`
	DeliveredAt     *time.Time    `json:"delivered_at,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// OrderItem is a denormalized line-item snapshot so later catalog edits
// don't retroactively alter historical orders
type OrderItem struct {
	ID          int64  `json:"id"`
	OrderID     int64  `json:"order_id"`
	ProductID   int64  `json:"product_id"`
	VariantID   *int64 `json:"variant_id,omitempty"`
	ProductName string `json:"product_name"`
	VariantName string `json:"variant_name,omitempty"`
	Price       int64  `json:"price"`
	Quantity    int    `json:"quantity"`
	Total       int64  `json:"total"`
}

// OrderItemInput is one line of a create-order request
type OrderItemInput struct {
	ProductID   int64  `json:"product_id"`
	VariantID   *int64 `json:"variant_id,omitempty"`
	ProductName string `json:"product_name"`
	VariantName string `json:"variant_name,omitempty"`
	Price       int64  `json:"price"`
	Quantity    int    `json:"quantity"`
}

// CreateOrderRequest creates an order from pre-built line items. The server
// recomputes the subtotal and total; when the client supplies a total it must
// match subtotal + shipping + tax - discount or the order is rejected. A nil
// Total means the client did not send one.
type CreateOrderRequest struct {
	CustomerName    string           `json:"customer_name"`
	CustomerEmail   string           `json:"customer_email"`
	CustomerPhone   string           `json:"customer_phone,omitempty"`
	ShippingAddress string           `json:"shipping_address"`
	Items           []OrderItemInput `json:"items"`
	ShippingCost    int64            `json:"shipping_cost"`
	Tax             int64            `json:"tax"`
	Discount        int64            `json:"discount"`
	Total           *int64           `json:"total,omitempty"`
}

// Validate checks the create payload
func (r *CreateOrderRequest) Validate() error {
	if strings.TrimSpace(r.CustomerName) == "" {
		return NewValidationError("name is required")
	}
	if !govalidator.IsEmail(r.CustomerEmail) {
		return NewValidationError("a valid email is required")
	}
	if strings.TrimSpace(r.ShippingAddress) == "" {
		return NewValidationError("shipping address is required")
	}
	if len(r.Items) == 0 {
		return NewValidationError("order must contain at least one item")
	}
	for _, item := range r.Items {
		if item.ProductID <= 0 {
			return NewValidationError("item product_id is required")
		}
		if strings.TrimSpace(item.ProductName) == "" {
			return NewValidationError("item product name is required")
		}
		if item.Quantity <= 0 {
			return NewValidationError("item quantity must be positive")
		}
		if item.Price < 0 {
			return NewValidationError("item price must not be negative")
		}
	}
	if r.ShippingCost < 0 || r.Tax < 0 || r.Discount < 0 {
		return NewValidationError("money fields must not be negative")
	}
	return nil
}

// Subtotal computes the sum of line totals
func (r *CreateOrderRequest) Subtotal() int64 {
	var subtotal int64
	for _, item := range r.Items {
		subtotal += item.Price * int64(item.Quantity)
	}
	return subtotal
}

// UpdateOrderRequest is the admin fulfillment update. Nil fields are left
// untouched.
type UpdateOrderRequest struct {
	ID             int64          `json:"id"`
	Status         *OrderStatus   `json:"status,omitempty"`
	PaymentStatus  *PaymentStatus `json:"payment_status,omitempty"`
	Carrier        *string        `json:"carrier,omitempty"`
	TrackingNumber *string        `json:"tracking_number,omitempty"`
	ShippedAt      *time.Time     `json:"shipped_at,omitempty"`
	DeliveredAt    *time.Time     `json:"delivered_at,omitempty"`
}

// Validate checks the update payload
func (r *UpdateOrderRequest) Validate() error {
	if r.ID <= 0 {
		return NewValidationError("id is required")
	}
	if r.Status != nil && !r.Status.IsValid() {
		return NewValidationError("invalid order status")
	}
	if r.PaymentStatus != nil && !r.PaymentStatus.IsValid() {
		return NewValidationError("invalid payment status")
	}
	return nil
}

// OrderListFilter narrows and pages the admin order list
type OrderListFilter struct {
	Status        *OrderStatus
	PaymentStatus *PaymentStatus
	Limit         int
	Offset        int
}

// OrderWithItems bundles an order with its line items
type OrderWithItems struct {
	Order *Order       `json:"order"`
	Items []*OrderItem `json:"items"`
}

// OrderService implements checkout and admin fulfillment
type OrderService interface {
	Create(ctx context.Context, request *CreateOrderRequest) (*OrderWithItems, error)
	Get(ctx context.Context, id int64) (*OrderWithItems, error)
	List(ctx context.Context, filter OrderListFilter) ([]*Order, error)
	Update(ctx context.Context, request *UpdateOrderRequest) (*Order, error)
}

// OrderRepository persists orders and their line items
type OrderRepository interface {
	// CreateOrder inserts the order and its items in one transaction and
	// assigns the order number
	CreateOrder(ctx context.Context, order *Order, items []*OrderItem) error
	GetOrder(ctx context.Context, id int64) (*Order, error)
	GetOrderItems(ctx context.Context, orderID int64) ([]*OrderItem, error)
	ListOrders(ctx context.Context, filter OrderListFilter) ([]*Order, error)
	UpdateOrder(ctx context.Context, order *Order) error
}
