package handler

import (
	"net/http"

	"drogo/internal/delivery/http/response"
	"drogo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the admin dashboard handlers. All
// routes require the "admin" role.
type AdminHandler struct {
	uc usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// ListAllOrders returns every order, newest first.
func (h *AdminHandler) ListAllOrders(c echo.Context) error {
	orders, err := h.uc.ListAllOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponses(orders), "")
}

// GetAnalytics returns the dashboard summary.
func (h *AdminHandler) GetAnalytics(c echo.Context) error {
	analytics, err := h.uc.GetAnalytics(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, analytics, "")
}

// ListWaitlist returns every waitlist submission, newest first.
func (h *AdminHandler) ListWaitlist(c echo.Context) error {
	entries, err := h.uc.ListWaitlist(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "")
}
