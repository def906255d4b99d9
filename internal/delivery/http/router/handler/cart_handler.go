package handler

import (
	"net/http"

	"drogo/internal/delivery/http/response"
	"drogo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart handlers. Every route requires a
// signed-in user.
type CartHandler struct {
	uc usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type addItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// GetCart returns the user's cart with resolved lines and totals.
func (h *CartHandler) GetCart(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "SIGN_IN_REQUIRED", "Please sign in")
	}

	view, err := h.uc.GetCart(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// AddItem adds a product to the cart. A missing quantity defaults to one.
func (h *CartHandler) AddItem(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "SIGN_IN_REQUIRED", "Please sign in")
	}

	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	view, err := h.uc.AddItem(c.Request().Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Item added")
}

// IncreaseItem bumps a product's quantity by one.
func (h *CartHandler) IncreaseItem(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "SIGN_IN_REQUIRED", "Please sign in")
	}

	view, err := h.uc.IncreaseItem(c.Request().Context(), userID, c.Param("productID"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// DecreaseItem lowers a product's quantity by one, removing the line at zero.
func (h *CartHandler) DecreaseItem(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "SIGN_IN_REQUIRED", "Please sign in")
	}

	view, err := h.uc.DecreaseItem(c.Request().Context(), userID, c.Param("productID"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// RemoveItem drops a product line regardless of quantity.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "SIGN_IN_REQUIRED", "Please sign in")
	}

	view, err := h.uc.RemoveItem(c.Request().Context(), userID, c.Param("productID"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Item removed")
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "SIGN_IN_REQUIRED", "Please sign in")
	}

	if err := h.uc.ClearCart(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart cleared")
}
