// Package impl provides the concrete implementations of the use case
// interfaces.
package impl

import (
	"context"

	"drogo/internal/catalog"
	"drogo/internal/domain/entity"
	domainerrors "drogo/internal/domain/errors"
	"drogo/internal/usecase"
)

type catalogService struct {
	catalog *catalog.Catalog
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(c *catalog.Catalog) usecase.CatalogUsecase {
	return &catalogService{catalog: c}
}

// ListProducts returns the products, optionally filtered by category.
func (s *catalogService) ListProducts(_ context.Context, category string) ([]entity.Product, error) {
	return s.catalog.List(category), nil
}

// GetProduct retrieves a single product by id.
func (s *catalogService) GetProduct(_ context.Context, productID string) (entity.Product, error) {
	product, ok := s.catalog.ByID(productID)
	if !ok {
		return entity.Product{}, domainerrors.ErrProductNotFound.WithDetails(productID)
	}

	return product, nil
}

// ListCategories returns the distinct category tags, sorted.
func (s *catalogService) ListCategories(_ context.Context) ([]string, error) {
	return s.catalog.Categories(), nil
}

// SetProductStock toggles the stock flag of a product.
func (s *catalogService) SetProductStock(_ context.Context, productID string, inStock bool) error {
	if !s.catalog.SetStock(productID, inStock) {
		return domainerrors.ErrProductNotFound.WithDetails(productID)
	}

	return nil
}
