package handler

import (
	"net/http"

	"drogo/internal/delivery/http/response"
	"drogo/internal/domain/entity"
	"drogo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order lifecycle handlers.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// orderResponse augments an order with its presentation status info.
type orderResponse struct {
	*entity.Order
	Reference  string            `json:"reference"`
	StatusInfo entity.StatusInfo `json:"status_info"`
}

func toOrderResponse(order *entity.Order) *orderResponse {
	if order == nil {
		return nil
	}

	return &orderResponse{
		Order:      order,
		Reference:  order.Reference(),
		StatusInfo: order.Status.Info(),
	}
}

func toOrderResponses(orders []*entity.Order) []*orderResponse {
	out := make([]*orderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, toOrderResponse(order))
	}

	return out
}

// PlaceOrder checks out the signed-in user's cart.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "SIGN_IN_REQUIRED", "Please sign in")
	}

	order, err := h.uc.PlaceOrder(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toOrderResponse(order), "Order placed")
}

// ListOrders returns the signed-in user's order history, newest first.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "SIGN_IN_REQUIRED", "Please sign in")
	}

	orders, err := h.uc.GetUserOrders(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponses(orders), "")
}

// CurrentOrder returns the user's in-flight order, or null when none.
func (h *OrderHandler) CurrentOrder(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "SIGN_IN_REQUIRED", "Please sign in")
	}

	order, err := h.uc.CurrentOrder(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order), "")
}

// GetOrder returns one of the signed-in user's orders by id.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "SIGN_IN_REQUIRED", "Please sign in")
	}

	orderID, err := uuid.Parse(c.Param("orderID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	order, err := h.uc.GetOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order), "")
}

// CancelOrder cancels a non-terminal order of the signed-in user.
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "SIGN_IN_REQUIRED", "Please sign in")
	}

	orderID, err := uuid.Parse(c.Param("orderID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	order, err := h.uc.CancelOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order), "Order cancelled")
}

// UpdateStatus applies a status change. Admin only.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("orderID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.uc.UpdateStatus(c.Request().Context(), orderID, entity.OrderStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order), "Status updated")
}

// PickupQR streams the pickup QR code as a PNG image.
func (h *OrderHandler) PickupQR(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "SIGN_IN_REQUIRED", "Please sign in")
	}

	orderID, err := uuid.Parse(c.Param("orderID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	png, err := h.uc.PickupQR(c.Request().Context(), userID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

type confirmPickupRequest struct {
	QRData string `json:"qr_data" validate:"required"`
}

// ConfirmPickup resolves a scanned pickup QR payload and marks the order
// delivered. Admin only.
func (h *OrderHandler) ConfirmPickup(c echo.Context) error {
	var req confirmPickupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pickup input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.uc.ConfirmPickup(c.Request().Context(), req.QRData)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order), "Pickup confirmed")
}
