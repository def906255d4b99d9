package usecase

import (
	"context"

	"drogo/internal/domain/entity"
)

// CatalogUsecase defines the interface for product catalog use cases
type CatalogUsecase interface {
	// ListProducts returns the products, optionally filtered by category.
	ListProducts(ctx context.Context, category string) ([]entity.Product, error)

	// GetProduct retrieves a single product by id.
	GetProduct(ctx context.Context, productID string) (entity.Product, error)

	// ListCategories returns the distinct category tags, sorted.
	ListCategories(ctx context.Context) ([]string, error)

	// SetProductStock toggles the stock flag of a product. Admin path.
	SetProductStock(ctx context.Context, productID string, inStock bool) error
}
