package impl

import (
	"context"
	"fmt"

	"drogo/internal/catalog"
	"drogo/internal/domain/entity"
	"drogo/internal/domain/repository"
	"drogo/internal/usecase"

	"github.com/google/uuid"
)

type cartService struct {
	cartRepo repository.CartRepository
	catalog  *catalog.Catalog
}

// NewCartService creates a new cart service instance
func NewCartService(cartRepo repository.CartRepository, c *catalog.Catalog) usecase.CartUsecase {
	return &cartService{
		cartRepo: cartRepo,
		catalog:  c,
	}
}

// GetCart returns the user's cart with resolved lines and totals.
func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*usecase.CartView, error) {
	cart, err := s.loadCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.view(cart), nil
}

// AddItem adds qty units of a product to the cart.
func (s *cartService) AddItem(ctx context.Context, userID uuid.UUID, productID string, qty int) (*usecase.CartView, error) {
	if qty <= 0 {
		qty = 1
	}

	return s.mutate(ctx, userID, func(cart *entity.Cart) {
		cart.Add(productID, qty)
	})
}

// IncreaseItem bumps a product's quantity by one.
func (s *cartService) IncreaseItem(ctx context.Context, userID uuid.UUID, productID string) (*usecase.CartView, error) {
	return s.mutate(ctx, userID, func(cart *entity.Cart) {
		cart.Increase(productID)
	})
}

// DecreaseItem lowers a product's quantity by one, removing the line at zero.
func (s *cartService) DecreaseItem(ctx context.Context, userID uuid.UUID, productID string) (*usecase.CartView, error) {
	return s.mutate(ctx, userID, func(cart *entity.Cart) {
		cart.Decrease(productID)
	})
}

// RemoveItem drops a product line regardless of its quantity.
func (s *cartService) RemoveItem(ctx context.Context, userID uuid.UUID, productID string) (*usecase.CartView, error) {
	return s.mutate(ctx, userID, func(cart *entity.Cart) {
		cart.Remove(productID)
	})
}

// ClearCart empties the cart.
func (s *cartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	if err := s.cartRepo.ClearCart(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}

// mutate loads the cart, applies fn, persists the result and builds the view.
// The write happens before the view so callers always see the stored state.
func (s *cartService) mutate(ctx context.Context, userID uuid.UUID, fn func(cart *entity.Cart)) (*usecase.CartView, error) {
	cart, err := s.loadCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	fn(cart)

	if err := s.cartRepo.SaveCart(ctx, userID, cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}

	return s.view(cart), nil
}

func (s *cartService) loadCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := s.cartRepo.LoadCart(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	cart.Normalize()

	return cart, nil
}

// view resolves the cart against the catalog. Lines follow catalog order so
// the response is deterministic regardless of map iteration.
func (s *cartService) view(cart *entity.Cart) *usecase.CartView {
	lines := make([]entity.OrderItem, 0, len(cart.Items))
	for _, product := range s.catalog.List("") {
		qty := cart.Quantity(product.ID)
		if qty == 0 {
			continue
		}
		lines = append(lines, entity.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  qty,
			UnitPrice: product.Price,
			LineTotal: product.Price * qty,
		})
	}

	return &usecase.CartView{
		Items:  cart.Items,
		Lines:  lines,
		Totals: cart.Totals(s.catalog.ByID),
	}
}
