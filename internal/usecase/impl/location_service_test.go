package impl

import (
	"context"
	"testing"

	"drogo/internal/domain/entity"
	domainerrors "drogo/internal/domain/errors"
	mockRepo "drogo/internal/mocks/repository"
	"drogo/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type locationServiceFixtures struct {
	service usecase.LocationUsecase
	locRepo *mockRepo.MockLocationRepository
}

func createTestLocationService(t *testing.T) locationServiceFixtures {
	locRepo := mockRepo.NewMockLocationRepository(t)
	service := NewLocationService(locRepo)

	return locationServiceFixtures{
		service: service,
		locRepo: locRepo,
	}
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestLocationService_ListSpots(t *testing.T) {
	fx := createTestLocationService(t)

	spots, err := fx.service.ListSpots(context.Background())
	require.NoError(t, err)
	assert.Len(t, spots, 7)
}

func TestLocationService_UpdateSelection_SnapshotsSpot(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.locRepo.EXPECT().LoadSelection(ctx, userID).Return(&entity.LocationSelection{}, nil)
	fx.locRepo.EXPECT().
		SaveSelection(ctx, userID, mock.AnythingOfType("*entity.LocationSelection")).
		Return(nil)

	selection, err := fx.service.UpdateSelection(ctx, userID, &usecase.UpdateSelectionInput{
		SelectedAddress: strPtr("Lokhandwala Complex, Andheri West"),
		SpotID:          strPtr("spot_4"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Lokhandwala Complex, Andheri West", selection.SelectedAddress)
	require.NotNil(t, selection.SelectedSpot)
	assert.Equal(t, "Lokhandwala Complex", selection.SelectedSpot.Name)
	assert.False(t, selection.TerraceAccessible)
}

func TestLocationService_UpdateSelection_PartialLeavesRestIntact(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()

	existing := &entity.LocationSelection{SelectedAddress: "Versova Beach, Mumbai"}
	fx.locRepo.EXPECT().LoadSelection(ctx, userID).Return(existing, nil)
	fx.locRepo.EXPECT().
		SaveSelection(ctx, userID, mock.AnythingOfType("*entity.LocationSelection")).
		Return(nil)

	selection, err := fx.service.UpdateSelection(ctx, userID, &usecase.UpdateSelectionInput{
		TerraceAccessible: boolPtr(true),
	})
	require.NoError(t, err)

	assert.Equal(t, "Versova Beach, Mumbai", selection.SelectedAddress)
	assert.True(t, selection.TerraceAccessible)
}

func TestLocationService_UpdateSelection_UnknownSpot(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.locRepo.EXPECT().LoadSelection(ctx, userID).Return(&entity.LocationSelection{}, nil)

	selection, err := fx.service.UpdateSelection(ctx, userID, &usecase.UpdateSelectionInput{
		SpotID: strPtr("spot_999"),
	})
	assert.Nil(t, selection)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SPOT_NOT_FOUND", appErr.ErrorCode())
}

func TestLocationService_NearestSpot(t *testing.T) {
	fx := createTestLocationService(t)

	// Standing at the metro station entrance.
	spot, err := fx.service.NearestSpot(context.Background(), entity.GeoPoint{
		Latitude:  19.1198,
		Longitude: 72.8465,
	})
	require.NoError(t, err)
	assert.Equal(t, "spot_1", spot.ID)

	// Near Versova beach.
	spot, err = fx.service.NearestSpot(context.Background(), entity.GeoPoint{
		Latitude:  19.1310,
		Longitude: 72.8140,
	})
	require.NoError(t, err)
	assert.Equal(t, "spot_5", spot.ID)
}

func TestLocationService_SuggestAddresses(t *testing.T) {
	fx := createTestLocationService(t)

	all, err := fx.service.SuggestAddresses(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 7)

	matched, err := fx.service.SuggestAddresses(context.Background(), "versova")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Contains(t, matched[0], "Versova")

	none, err := fx.service.SuggestAddresses(context.Background(), "bandra")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestLocationService_ClearSelection(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.locRepo.EXPECT().ClearSelection(ctx, userID).Return(nil)

	require.NoError(t, fx.service.ClearSelection(ctx, userID))
}
