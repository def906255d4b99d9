package handler

import (
	"net/http"

	"drogo/internal/delivery/http/response"
	"drogo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for product catalog handlers.
type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

type setStockRequest struct {
	InStock *bool `json:"in_stock" validate:"required"`
}

// ListProducts returns the catalog, optionally filtered by ?category=.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// GetProduct returns one product by id.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.uc.GetProduct(c.Request().Context(), c.Param("productID"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// ListCategories returns the distinct category tags.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// SetProductStock toggles a product's stock flag. Admin only.
func (h *CatalogHandler) SetProductStock(c echo.Context) error {
	var req setStockRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid stock input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.SetProductStock(c.Request().Context(), c.Param("productID"), *req.InStock); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Stock updated")
}
