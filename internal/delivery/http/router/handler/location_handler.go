package handler

import (
	"net/http"
	"strconv"

	"drogo/internal/delivery/http/response"
	"drogo/internal/domain/entity"
	"drogo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LocationHandler holds dependencies for delivery location handlers.
type LocationHandler struct {
	uc usecase.LocationUsecase
}

// NewLocationHandler is the constructor for LocationHandler, injected by Fx.
func NewLocationHandler(uc usecase.LocationUsecase) *LocationHandler {
	return &LocationHandler{uc: uc}
}

// ListSpots returns the delivery spot list.
func (h *LocationHandler) ListSpots(c echo.Context) error {
	spots, err := h.uc.ListSpots(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, spots, "")
}

// NearestSpot returns the available spot closest to ?lat=&lng=.
func (h *LocationHandler) NearestSpot(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameter 'lat' must be a number")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameter 'lng' must be a number")
	}

	spot, err := h.uc.NearestSpot(c.Request().Context(), entity.GeoPoint{Latitude: lat, Longitude: lng})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, spot, "")
}

// SuggestAddresses returns seed addresses matching ?q=.
func (h *LocationHandler) SuggestAddresses(c echo.Context) error {
	addresses, err := h.uc.SuggestAddresses(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, addresses, "")
}

// GetSelection returns the user's current delivery selection.
func (h *LocationHandler) GetSelection(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "SIGN_IN_REQUIRED", "Please sign in")
	}

	selection, err := h.uc.GetSelection(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, selection, "")
}

// UpdateSelection applies partial changes to the user's delivery selection.
func (h *LocationHandler) UpdateSelection(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "SIGN_IN_REQUIRED", "Please sign in")
	}

	var input usecase.UpdateSelectionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid selection input")
	}

	selection, err := h.uc.UpdateSelection(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, selection, "Selection updated")
}

// ClearSelection resets the user's delivery selection.
func (h *LocationHandler) ClearSelection(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "SIGN_IN_REQUIRED", "Please sign in")
	}

	if err := h.uc.ClearSelection(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Selection cleared")
}
