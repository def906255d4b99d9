package localstore

import (
	"context"

	"drogo/internal/domain/entity"
	domainerrors "drogo/internal/domain/errors"
	"drogo/internal/domain/repository"

	"github.com/google/uuid"
)

func locationKey(userID uuid.UUID) string {
	return "locations/" + userID.String() + ".json"
}

// locationRepository implements the repository.LocationRepository interface
// over the local document store.
type locationRepository struct {
	store *Store
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(store *Store) repository.LocationRepository {
	return &locationRepository{store: store}
}

// SaveSelection overwrites the stored delivery selection for a user.
func (repo *locationRepository) SaveSelection(ctx context.Context, userID uuid.UUID, selection *entity.LocationSelection) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if err := repo.store.writeDoc(ctx, locationKey(userID), selection); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save delivery selection")
	}

	return nil
}

// LoadSelection retrieves a user's selection. A missing or unreadable
// document loads as the zero selection, never as an error.
func (repo *locationRepository) LoadSelection(ctx context.Context, userID uuid.UUID) (*entity.LocationSelection, error) {
	var selection entity.LocationSelection
	found, err := repo.store.readDoc(ctx, locationKey(userID), &selection)
	if err != nil {
		return nil, err
	}
	if !found {
		return &entity.LocationSelection{}, nil
	}

	return &selection, nil
}

// ClearSelection removes the stored selection for a user.
func (repo *locationRepository) ClearSelection(ctx context.Context, userID uuid.UUID) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if err := repo.store.deleteDoc(ctx, locationKey(userID)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear delivery selection")
	}

	return nil
}
