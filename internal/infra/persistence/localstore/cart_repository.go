package localstore

import (
	"context"

	"drogo/internal/domain/entity"
	domainerrors "drogo/internal/domain/errors"
	"drogo/internal/domain/repository"

	"github.com/google/uuid"
)

func cartKey(userID uuid.UUID) string {
	return "carts/" + userID.String() + ".json"
}

// cartRepository implements the repository.CartRepository interface over
// the local document store. When created by the transaction manager, inTx
// is set and the store lock is already held.
type cartRepository struct {
	store *Store
	inTx  bool
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(store *Store) repository.CartRepository {
	return &cartRepository{store: store}
}

func (repo *cartRepository) lock() func() {
	if repo.inTx {
		return func() {}
	}
	repo.store.mu.Lock()

	return repo.store.mu.Unlock
}

// SaveCart overwrites the stored cart for a user.
func (repo *cartRepository) SaveCart(ctx context.Context, userID uuid.UUID, cart *entity.Cart) error {
	defer repo.lock()()

	if err := repo.store.writeDoc(ctx, cartKey(userID), cart); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save cart")
	}

	return nil
}

// LoadCart retrieves a user's cart. A missing or unreadable document loads
// as an empty cart, never as an error.
func (repo *cartRepository) LoadCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	var cart entity.Cart
	found, err := repo.store.readDoc(ctx, cartKey(userID), &cart)
	if err != nil {
		return nil, err
	}
	if !found {
		return entity.NewCart(), nil
	}

	cart.Normalize()

	return &cart, nil
}

// ClearCart removes the stored cart for a user.
func (repo *cartRepository) ClearCart(ctx context.Context, userID uuid.UUID) error {
	defer repo.lock()()

	if err := repo.store.deleteDoc(ctx, cartKey(userID)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart")
	}

	return nil
}
