package postgres

import (
	"context"

	"drogo/internal/domain/entity"
	domainerrors "drogo/internal/domain/errors"
	"drogo/internal/domain/repository"
	"drogo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// SaveSelection overwrites the stored delivery selection for a user.
func (repo *locationRepository) SaveSelection(ctx context.Context, userID uuid.UUID, selection *entity.LocationSelection) error {
	selectionM := &model.LocationSelectionModel{
		UserID:            userID,
		SelectedAddress:   selection.SelectedAddress,
		TerraceAccessible: selection.TerraceAccessible,
		UserLocation:      selection.UserLocation,
		SelectedSpot:      selection.SelectedSpot,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"selected_address", "terrace_accessible", "user_location", "selected_spot", "updated_at",
			}),
		}).
		Create(selectionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save delivery selection")
	}

	return nil
}

// LoadSelection retrieves a user's selection. A missing row loads as the
// zero selection.
func (repo *locationRepository) LoadSelection(ctx context.Context, userID uuid.UUID) (*entity.LocationSelection, error) {
	var selectionM model.LocationSelectionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&selectionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &entity.LocationSelection{}, nil
		}

		return nil, errors.Wrap(err, "failed to load delivery selection")
	}

	return &entity.LocationSelection{
		SelectedAddress:   selectionM.SelectedAddress,
		TerraceAccessible: selectionM.TerraceAccessible,
		UserLocation:      selectionM.UserLocation,
		SelectedSpot:      selectionM.SelectedSpot,
	}, nil
}

// ClearSelection removes the stored selection for a user.
func (repo *locationRepository) ClearSelection(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.LocationSelectionModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear delivery selection")
	}

	return nil
}
