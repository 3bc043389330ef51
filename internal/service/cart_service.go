package service

import (
	"context"

	"github.com/chromacraft/chromacraft/internal/domain"
	"github.com/chromacraft/chromacraft/pkg/logger"
)

// CartService handles cart mutations for both authenticated users and
// anonymous sessions
type CartService struct {
	repo   domain.CartRepository
	logger logger.Logger
}

// NewCartService creates a new cart service
func NewCartService(repo domain.CartRepository, logger logger.Logger) *CartService {
	return &CartService{
		repo:   repo,
		logger: logger,
	}
}

// Add upserts a cart row for the owner. An existing (owner, product, variant)
// row gains the requested quantity; the row's price stays frozen at its
// original add-time value.
func (s *CartService) Add(ctx context.Context, request *domain.AddToCartRequest) (*domain.CartItem, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	owner, err := request.Owner.Owner()
	if err != nil {
		return nil, err
	}

	item := &domain.CartItem{
		ProductID: request.ProductID,
		VariantID: request.VariantID,
		Price:     request.Price,
		Quantity:  request.Quantity,
	}

	if err := s.repo.AddItem(ctx, owner, item); err != nil {
		return nil, err
	}

	return item, nil
}

// Update sets a row's quantity. Zero or a negative quantity deletes the row;
// the response reports which happened via the returned item being nil.
func (s *CartService) Update(ctx context.Context, request *domain.UpdateCartItemRequest) (*domain.CartItem, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	if request.Quantity <= 0 {
		if err := s.repo.DeleteItem(ctx, request.ID); err != nil {
			return nil, err
		}
		return nil, nil
	}

	if err := s.repo.SetItemQuantity(ctx, request.ID, request.Quantity); err != nil {
		return nil, err
	}

	return s.repo.GetItem(ctx, request.ID)
}

// List retrieves all cart rows for the owner
func (s *CartService) List(ctx context.Context, input domain.CartOwnerInput) ([]*domain.CartItem, error) {
	owner, err := input.Owner()
	if err != nil {
		return nil, err
	}
	return s.repo.ListItems(ctx, owner)
}

// Clear removes all cart rows for the owner
func (s *CartService) Clear(ctx context.Context, input domain.CartOwnerInput) error {
	owner, err := input.Owner()
	if err != nil {
		return err
	}
	return s.repo.ClearCart(ctx, owner)
}
