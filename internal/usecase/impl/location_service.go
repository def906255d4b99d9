package impl

import (
	"context"
	"fmt"
	"strings"

	"drogo/internal/catalog"
	"drogo/internal/domain/entity"
	domainerrors "drogo/internal/domain/errors"
	"drogo/internal/domain/repository"
	"drogo/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

type locationService struct {
	locationRepo repository.LocationRepository
}

// NewLocationService creates a new location service instance
func NewLocationService(locationRepo repository.LocationRepository) usecase.LocationUsecase {
	return &locationService{locationRepo: locationRepo}
}

// ListSpots returns the delivery spot list.
func (s *locationService) ListSpots(_ context.Context) ([]entity.DeliverySpot, error) {
	return catalog.DeliverySpots(), nil
}

// GetSelection retrieves the user's current delivery selection.
func (s *locationService) GetSelection(ctx context.Context, userID uuid.UUID) (*entity.LocationSelection, error) {
	selection, err := s.locationRepo.LoadSelection(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load selection: %w", err)
	}

	return selection, nil
}

// UpdateSelection applies partial changes to the user's selection and
// persists the result.
func (s *locationService) UpdateSelection(ctx context.Context, userID uuid.UUID, input *usecase.UpdateSelectionInput) (*entity.LocationSelection, error) {
	selection, err := s.locationRepo.LoadSelection(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load selection: %w", err)
	}

	if input.SelectedAddress != nil {
		selection.SelectedAddress = *input.SelectedAddress
	}
	if input.TerraceAccessible != nil {
		selection.TerraceAccessible = *input.TerraceAccessible
	}
	if input.UserLocation != nil {
		selection.UserLocation = input.UserLocation
	}
	if input.SpotID != nil {
		spot, ok := catalog.SpotByID(*input.SpotID)
		if !ok {
			return nil, domainerrors.ErrSpotNotFound.WithDetails(*input.SpotID)
		}
		if !spot.Available {
			return nil, domainerrors.ErrSpotUnavailable.WithDetails(*input.SpotID)
		}
		selection.SelectedSpot = &spot
	}

	if err := s.locationRepo.SaveSelection(ctx, userID, selection); err != nil {
		return nil, fmt.Errorf("failed to save selection: %w", err)
	}

	return selection, nil
}

// ClearSelection resets the user's selection.
func (s *locationService) ClearSelection(ctx context.Context, userID uuid.UUID) error {
	if err := s.locationRepo.ClearSelection(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear selection: %w", err)
	}

	return nil
}

// NearestSpot returns the available spot closest to the given point by
// great-circle distance.
func (s *locationService) NearestSpot(_ context.Context, point entity.GeoPoint) (*entity.DeliverySpot, error) {
	from := orb.Point{point.Longitude, point.Latitude}

	var nearest *entity.DeliverySpot
	var best float64
	for _, spot := range catalog.DeliverySpots() {
		if !spot.Available {
			continue
		}
		dist := geo.DistanceHaversine(from, orb.Point{spot.Longitude, spot.Latitude})
		if nearest == nil || dist < best {
			copied := spot
			nearest = &copied
			best = dist
		}
	}
	if nearest == nil {
		return nil, domainerrors.ErrSpotNotFound
	}

	return nearest, nil
}

// SuggestAddresses returns seed addresses matching the query substring,
// case-insensitively. An empty query returns the full list.
func (s *locationService) SuggestAddresses(_ context.Context, query string) ([]string, error) {
	addresses := catalog.SampleAddresses()
	if query == "" {
		return addresses, nil
	}

	needle := strings.ToLower(query)
	matched := make([]string, 0, len(addresses))
	for _, addr := range addresses {
		if strings.Contains(strings.ToLower(addr), needle) {
			matched = append(matched, addr)
		}
	}

	return matched, nil
}
