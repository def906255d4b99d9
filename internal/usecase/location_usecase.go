package usecase

import (
	"context"

	"drogo/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateSelectionInput represents the input for updating a delivery selection
type UpdateSelectionInput struct {
	SelectedAddress   *string          `json:"selected_address,omitempty"`
	TerraceAccessible *bool            `json:"terrace_accessible,omitempty"`
	UserLocation      *entity.GeoPoint `json:"user_location,omitempty"`
	SpotID            *string          `json:"spot_id,omitempty"`
}

// LocationUsecase defines the interface for delivery location use cases
type LocationUsecase interface {
	// ListSpots returns the delivery spot list.
	ListSpots(ctx context.Context) ([]entity.DeliverySpot, error)

	// GetSelection retrieves the user's current delivery selection.
	GetSelection(ctx context.Context, userID uuid.UUID) (*entity.LocationSelection, error)

	// UpdateSelection applies partial changes to the user's selection and
	// persists the result. Selecting a spot snapshots it into the selection.
	UpdateSelection(ctx context.Context, userID uuid.UUID, input *UpdateSelectionInput) (*entity.LocationSelection, error)

	// ClearSelection resets the user's selection.
	ClearSelection(ctx context.Context, userID uuid.UUID) error

	// NearestSpot returns the available spot closest to the given point by
	// great-circle distance.
	NearestSpot(ctx context.Context, point entity.GeoPoint) (*entity.DeliverySpot, error)

	// SuggestAddresses returns seed addresses matching the query substring,
	// case-insensitively. An empty query returns the full list.
	SuggestAddresses(ctx context.Context, query string) ([]string, error)
}
