package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/chromacraft/chromacraft/internal/domain"
)

type cartRepository struct {
	db *sql.DB
}

// NewCartRepository creates a new PostgreSQL cart repository
func NewCartRepository(db *sql.DB) domain.CartRepository {
	return &cartRepository{db: db}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// AddItem upserts a cart row: a row matching (owner, product, variant) gains
// the requested quantity, otherwise a new row is inserted with the given
// frozen price. The ON CONFLICT targets make the upsert atomic under
// concurrent adds for the same owner.
func (r *cartRepository) AddItem(ctx context.Context, owner domain.CartOwner, item *domain.CartItem) error {
	now := time.Now().UTC()
	item.UserID = owner.UserID()
	item.SessionID = owner.SessionID()
	item.CreatedAt = now
	item.UpdatedAt = now

	conflictTarget := `(owner_key, product_id) WHERE variant_id IS NULL`
	if item.VariantID != nil {
		conflictTarget = `(owner_key, product_id, variant_id) WHERE variant_id IS NOT NULL`
	}

	query := fmt.Sprintf(`
		INSERT INTO cart_items (
			user_id, session_id, product_id, variant_id, price, quantity, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT %s
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = EXCLUDED.updated_at
		RETURNING id, price, quantity
	`, conflictTarget)

	err := r.db.QueryRowContext(ctx, query,
		nullString(item.UserID),
		nullString(item.SessionID),
		item.ProductID,
		item.VariantID,
		item.Price,
		item.Quantity,
		item.CreatedAt,
		item.UpdatedAt,
	).Scan(&item.ID, &item.Price, &item.Quantity)
	if err != nil {
		return fmt.Errorf("failed to add cart item: %w", err)
	}

	return nil
}

// GetItem retrieves a cart row by id
func (r *cartRepository) GetItem(ctx context.Context, id int64) (*domain.CartItem, error) {
	query := `
		SELECT id, COALESCE(user_id, ''), COALESCE(session_id, ''),
			product_id, variant_id, price, quantity, created_at, updated_at
		FROM cart_items
		WHERE id = $1
	`

	var item domain.CartItem
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID,
		&item.UserID,
		&item.SessionID,
		&item.ProductID,
		&item.VariantID,
		&item.Price,
		&item.Quantity,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFoundError("cart item", strconv.FormatInt(id, 10))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}

	return &item, nil
}

// SetItemQuantity sets a row's quantity to exactly the given value
func (r *cartRepository) SetItemQuantity(ctx context.Context, id int64, quantity int) error {
	query := `
		UPDATE cart_items
		SET quantity = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query, quantity, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError("cart item", strconv.FormatInt(id, 10))
	}

	return nil
}

// DeleteItem removes a cart row
func (r *cartRepository) DeleteItem(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError("cart item", strconv.FormatInt(id, 10))
	}

	return nil
}

func ownerCondition(owner domain.CartOwner) (string, string) {
	if owner.IsAuthenticated() {
		return "user_id = $1", owner.UserID()
	}
	return "session_id = $1", owner.SessionID()
}

// ListItems retrieves all cart rows for an owner
func (r *cartRepository) ListItems(ctx context.Context, owner domain.CartOwner) ([]*domain.CartItem, error) {
	condition, arg := ownerCondition(owner)
	query := fmt.Sprintf(`
		SELECT id, COALESCE(user_id, ''), COALESCE(session_id, ''),
			product_id, variant_id, price, quantity, created_at, updated_at
		FROM cart_items
		WHERE %s
		ORDER BY id
	`, condition)

	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	defer rows.Close()

	items := []*domain.CartItem{}
	for rows.Next() {
		var item domain.CartItem
		err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.SessionID,
			&item.ProductID,
			&item.VariantID,
			&item.Price,
			&item.Quantity,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cart items: %w", err)
	}

	return items, nil
}

// ClearCart removes all cart rows for an owner
func (r *cartRepository) ClearCart(ctx context.Context, owner domain.CartOwner) error {
	condition, arg := ownerCondition(owner)
	query := fmt.Sprintf(`DELETE FROM cart_items WHERE %s`, condition)

	if _, err := r.db.ExecContext(ctx, query, arg); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}
