package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination mocks/mock_cart_repository.go -package mocks github.com/chromacraft/chromacraft/internal/domain CartRepository
//go:generate mockgen -destination mocks/mock_cart_service.go -package mocks github.com/chromacraft/chromacraft/internal/domain CartService

// CartOwner identifies who a cart row belongs to: either an authenticated
// user or an anonymous browser session, never both and never neither. The
// fields are unexported so a zero or doubly-set owner cannot be constructed
// outside the two constructors.
type CartOwner struct {
	userID    string
	sessionID string
}

// AuthenticatedOwner builds a cart owner from a user id
func AuthenticatedOwner(userID string) (CartOwner, error) {
	if userID == "" {
		return CartOwner{}, NewValidationError("user id is required")
	}
	return CartOwner{userID: userID}, nil
}

// AnonymousOwner builds a cart owner from a session id
func AnonymousOwner(sessionID string) (CartOwner, error) {
	if sessionID == "" {
		return CartOwner{}, NewValidationError("session id is required")
	}
	return CartOwner{sessionID: sessionID}, nil
}

// IsAuthenticated reports whether the owner is a signed-in user
func (o CartOwner) IsAuthenticated() bool {
	return o.userID != ""
}

// UserID returns the user id, empty for anonymous owners
func (o CartOwner) UserID() string {
	return o.userID
}

// SessionID returns the session id, empty for authenticated owners
func (o CartOwner) SessionID() string {
	return o.sessionID
}

// IsZero reports whether the owner was never set
func (o CartOwner) IsZero() bool {
	return o.userID == "" && o.sessionID == ""
}

// CartOwnerInput is the wire form of a cart owner. Exactly one of the two
// fields must be set.
type CartOwnerInput struct {
	UserID    string `json:"user_id,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

// Owner converts the wire form into a CartOwner, enforcing the XOR
func (i CartOwnerInput) Owner() (CartOwner, error) {
	if i.UserID != "" && i.SessionID != "" {
		return CartOwner{}, NewValidationError("cart owner must be a user or a session, not both")
	}
	if i.UserID != "" {
		return AuthenticatedOwner(i.UserID)
	}
	if i.SessionID != "" {
		return AnonymousOwner(i.SessionID)
	}
	return CartOwner{}, NewValidationError("cart owner is required")
}

// CartItem is an ephemeral line in a cart. Price is frozen at add-time and
// never re-derived from the catalog.
type CartItem struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id,omitempty"`
	SessionID string    `json:"session_id,omitempty"`
	ProductID int64     `json:"product_id"`
	VariantID *int64    `json:"variant_id,omitempty"`
	Price     int64     `json:"price"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AddToCartRequest adds quantity of a product (or variant) to a cart
type AddToCartRequest struct {
	Owner     CartOwnerInput `json:"owner"`
	ProductID int64          `json:"product_id"`
	VariantID *int64         `json:"variant_id,omitempty"`
	Quantity  int            `json:"quantity"`
	Price     int64          `json:"price"`
}

// Validate checks the add payload
func (r *AddToCartRequest) Validate() error {
	if _, err := r.Owner.Owner(); err != nil {
		return err
	}
	if r.ProductID <= 0 {
		return NewValidationError("product_id is required")
	}
	if r.Quantity <= 0 {
		return NewValidationError("quantity must be positive")
	}
	if r.Price < 0 {
		return NewValidationError("price must not be negative")
	}
	return nil
}

// UpdateCartItemRequest sets a row's quantity; zero or less deletes the row
type UpdateCartItemRequest struct {
	ID       int64 `json:"id"`
	Quantity int   `json:"quantity"`
}

// Validate checks the update payload
func (r *UpdateCartItemRequest) Validate() error {
	if r.ID <= 0 {
		return NewValidationError("id is required")
	}
	return nil
}

// CartService implements cart mutations for users and anonymous sessions
type CartService interface {
	Add(ctx context.Context, request *AddToCartRequest) (*CartItem, error)
	// Update sets a row's quantity; zero or less deletes the row and returns
	// a nil item
	Update(ctx context.Context, request *UpdateCartItemRequest) (*CartItem, error)
	List(ctx context.Context, input CartOwnerInput) ([]*CartItem, error)
	Clear(ctx context.Context, input CartOwnerInput) error
}

// CartRepository persists cart rows. AddItem must be an atomic upsert on
// (owner, product, variant): a matching row gains quantity, otherwise a new
// row is inserted with the given frozen price.
type CartRepository interface {
	AddItem(ctx context.Context, owner CartOwner, item *CartItem) error
	GetItem(ctx context.Context, id int64) (*CartItem, error)
	SetItemQuantity(ctx context.Context, id int64, quantity int) error
	DeleteItem(ctx context.Context, id int64) error
	ListItems(ctx context.Context, owner CartOwner) ([]*CartItem, error)
	ClearCart(ctx context.Context, owner CartOwner) error
}
