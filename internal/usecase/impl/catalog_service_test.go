package impl

import (
	"context"
	"testing"

	"drogo/internal/catalog"
	domainerrors "drogo/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_GetProduct(t *testing.T) {
	service := NewCatalogService(catalog.New())

	product, err := service.GetProduct(context.Background(), "masala-chips")
	require.NoError(t, err)
	assert.Equal(t, 45, product.Price)

	_, err = service.GetProduct(context.Background(), "no-such-id")
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PRODUCT_NOT_FOUND", appErr.ErrorCode())
}

func TestCatalogService_ListProducts(t *testing.T) {
	service := NewCatalogService(catalog.New())

	all, err := service.ListProducts(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 12)

	meds, err := service.ListProducts(context.Background(), "pharmacy")
	require.NoError(t, err)
	require.NotEmpty(t, meds)
	for _, p := range meds {
		assert.Equal(t, "pharmacy", p.Category)
	}
}

func TestCatalogService_SetProductStock(t *testing.T) {
	service := NewCatalogService(catalog.New())

	require.NoError(t, service.SetProductStock(context.Background(), "dog-treats", false))

	product, err := service.GetProduct(context.Background(), "dog-treats")
	require.NoError(t, err)
	assert.False(t, product.InStock)

	err = service.SetProductStock(context.Background(), "no-such-id", true)
	assert.Error(t, err)
}
