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

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// SaveCart overwrites the stored cart for a user.
func (repo *cartRepository) SaveCart(ctx context.Context, userID uuid.UUID, cart *entity.Cart) error {
	cartM := &model.CartModel{
		UserID: userID,
		Items:  cart.Items,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"items", "updated_at"}),
		}).
		Create(cartM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save cart")
	}

	return nil
}

// LoadCart retrieves a user's cart. A missing cart loads as an empty one.
func (repo *cartRepository) LoadCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.NewCart(), nil
		}

		return nil, errors.Wrap(err, "failed to load cart")
	}

	cart := &entity.Cart{Items: cartM.Items}
	cart.Normalize()

	return cart, nil
}

// ClearCart removes the stored cart for a user.
func (repo *cartRepository) ClearCart(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart")
	}

	return nil
}
