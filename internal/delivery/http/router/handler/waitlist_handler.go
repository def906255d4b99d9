package handler

import (
	"net/http"

	"drogo/internal/delivery/http/response"
	"drogo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WaitlistHandler holds dependencies for the waitlist handler.
type WaitlistHandler struct {
	uc usecase.WaitlistUsecase
}

// NewWaitlistHandler is the constructor for WaitlistHandler, injected by Fx.
func NewWaitlistHandler(uc usecase.WaitlistUsecase) *WaitlistHandler {
	return &WaitlistHandler{uc: uc}
}

type joinWaitlistRequest struct {
	Name                   string `json:"name" validate:"required"`
	Email                  string `json:"email" validate:"required,email"`
	Phone                  string `json:"phone"`
	Address                string `json:"address"`
	PreferredDeliveryItems string `json:"preferred_delivery_items"`
}

// Join records a delivery-intent submission from outside the service area.
func (h *WaitlistHandler) Join(c echo.Context) error {
	var req joinWaitlistRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid waitlist input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	entry, err := h.uc.Join(c.Request().Context(), usecase.JoinWaitlistInput{
		Name:                   req.Name,
		Email:                  req.Email,
		Phone:                  req.Phone,
		Address:                req.Address,
		PreferredDeliveryItems: req.PreferredDeliveryItems,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, entry, "Added to waitlist")
}
