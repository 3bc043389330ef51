package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/chromacraft/chromacraft/internal/domain"
)

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new PostgreSQL order repository
func NewOrderRepository(db *sql.DB) domain.OrderRepository {
	return &orderRepository{db: db}
}

const orderColumns = `id, order_number, customer_name, customer_email, customer_phone,
	shipping_address, subtotal, shipping_cost, tax, discount, total,
	status, payment_status, stripe_payment_id, carrier, tracking_number,
	shipped_at, delivered_at, created_at, updated_at`

// CreateOrder inserts the order and its line items in one transaction and
// assigns the human-readable order number (ORD-YYYYMMDD-NNN). The per-day
// counter is read inside the transaction; two orders committing in the same
// instant could still collide on the unique order_number, which surfaces as
// an insert error rather than a duplicate.
func (r *orderRepository) CreateOrder(ctx context.Context, order *domain.Order, items []*domain.OrderItem) error {
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now
	if order.Status == "" {
		order.Status = domain.OrderStatusPending
	}
	if order.PaymentStatus == "" {
		order.PaymentStatus = domain.PaymentStatusPending
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var todayCount int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM orders WHERE created_at >= $1`,
		now.Truncate(24*time.Hour),
	).Scan(&todayCount)
	if err != nil {
		return fmt.Errorf("failed to count today's orders: %w", err)
	}

	order.OrderNumber = fmt.Sprintf("ORD-%s-%03d", now.Format("20060102"), todayCount+1)

	query := `
		INSERT INTO orders (
			order_number, customer_name, customer_email, customer_phone,
			shipping_address, subtotal, shipping_cost, tax, discount, total,
			status, payment_status, stripe_payment_id, carrier, tracking_number,
			shipped_at, delivered_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id
	`

	err = tx.QueryRowContext(ctx, query,
		order.OrderNumber,
		order.CustomerName,
		order.CustomerEmail,
		order.CustomerPhone,
		order.ShippingAddress,
		order.Subtotal,
		order.ShippingCost,
		order.Tax,
		order.Discount,
		order.Total,
		order.Status,
		order.PaymentStatus,
		order.StripePaymentID,
		order.Carrier,
		order.TrackingNumber,
		order.ShippedAt,
		order.DeliveredAt,
		order.CreatedAt,
		order.UpdatedAt,
	).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	for _, item := range items {
		item.OrderID = order.ID
		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_items (
				order_id, product_id, variant_id, product_name, variant_name,
				price, quantity, total
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id
		`,
			item.OrderID,
			item.ProductID,
			item.VariantID,
			item.ProductName,
			item.VariantName,
			item.Price,
			item.Quantity,
			item.Total,
		).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("failed to create order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetOrder retrieves an order by id
func (r *orderRepository) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE id = $1`, orderColumns)

	var order domain.Order
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID,
		&order.OrderNumber,
		&order.CustomerName,
		&order.CustomerEmail,
		&order.CustomerPhone,
		&order.ShippingAddress,
		&order.Subtotal,
		&order.ShippingCost,
		&order.Tax,
		&order.Discount,
		&order.Total,
		&order.Status,
		&order.PaymentStatus,
		&order.StripePaymentID,
		&order.Carrier,
		&order.TrackingNumber,
		&order.ShippedAt,
		&order.DeliveredAt,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFoundError("order", strconv.FormatInt(id, 10))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return &order, nil
}

// GetOrderItems retrieves the line items of an order
func (r *orderRepository) GetOrderItems(ctx context.Context, orderID int64) ([]*domain.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, variant_id, product_name,
			COALESCE(variant_name, ''), price, quantity, total
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}
	defer rows.Close()

	items := []*domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.VariantID,
			&item.ProductName,
			&item.VariantName,
			&item.Price,
			&item.Quantity,
			&item.Total,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate order items: %w", err)
	}

	return items, nil
}

// ListOrders retrieves orders, optionally filtered and paged
func (r *orderRepository) ListOrders(ctx context.Context, filter domain.OrderListFilter) ([]*domain.Order, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	builder := psql.Select(
		"id", "order_number", "customer_name", "customer_email", "customer_phone",
		"shipping_address", "subtotal", "shipping_cost", "tax", "discount", "total",
		"status", "payment_status", "stripe_payment_id", "carrier", "tracking_number",
		"shipped_at", "delivered_at", "created_at", "updated_at",
	).From("orders").OrderBy("created_at DESC")

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": string(*filter.Status)})
	}
	if filter.PaymentStatus != nil {
		builder = builder.Where(sq.Eq{"payment_status": string(*filter.PaymentStatus)})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build order list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := []*domain.Order{}
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(
			&order.ID,
			&order.OrderNumber,
			&order.CustomerName,
			&order.CustomerEmail,
			&order.CustomerPhone,
			&order.ShippingAddress,
			&order.Subtotal,
			&order.ShippingCost,
			&order.Tax,
			&order.Discount,
			&order.Total,
			&order.Status,
			&order.PaymentStatus,
			&order.StripePaymentID,
			&order.Carrier,
			&order.TrackingNumber,
			&order.ShippedAt,
			&order.DeliveredAt,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, &order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders: %w", err)
	}

	return orders, nil
}

// UpdateOrder persists admin fulfillment changes
func (r *orderRepository) UpdateOrder(ctx context.Context, order *domain.Order) error {
	order.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE orders
		SET status = $1, payment_status = $2, carrier = $3, tracking_number = $4,
			shipped_at = $5, delivered_at = $6, updated_at = $7
		WHERE id = $8
	`

	result, err := r.db.ExecContext(ctx, query,
		order.Status,
		order.PaymentStatus,
		order.Carrier,
		order.TrackingNumber,
		order.ShippedAt,
		order.DeliveredAt,
		order.UpdatedAt,
		order.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError("order", strconv.FormatInt(order.ID, 10))
	}

	return nil
}
