package localstore

import (
	"context"
	"sort"
	"time"

	"drogo/internal/domain/entity"
	domainerrors "drogo/internal/domain/errors"
	"drogo/internal/domain/repository"

	"github.com/google/uuid"
)

const orderPrefix = "orders/"

func orderKey(id uuid.UUID) string {
	return orderPrefix + id.String() + ".json"
}

// orderRepository implements the repository.OrderRepository interface over
// the local document store. When created by the transaction manager, inTx
// is set and the store lock is already held.
type orderRepository struct {
	store *Store
	inTx  bool
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(store *Store) repository.OrderRepository {
	return &orderRepository{store: store}
}

func (repo *orderRepository) lock() func() {
	if repo.inTx {
		return func() {}
	}
	repo.store.mu.Lock()

	return repo.store.mu.Unlock
}

// CreateOrder persists a new order record.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	defer repo.lock()()

	if err := repo.store.writeDoc(ctx, orderKey(order.ID), order); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	return nil
}

// FindOrderByID retrieves an order by its unique ID.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	found, err := repo.store.readDoc(ctx, orderKey(id), &order)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, repository.ErrOrderNotFound
	}

	return &order, nil
}

// FindOrdersByUser retrieves a user's order history, newest first.
func (repo *orderRepository) FindOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := repo.readAllOrders(ctx)
	if err != nil {
		return nil, err
	}

	filtered := orders[:0]
	for _, order := range orders {
		if order.UserID == userID {
			filtered = append(filtered, order)
		}
	}

	return filtered, nil
}

// FindAllOrders retrieves every order, newest first.
func (repo *orderRepository) FindAllOrders(ctx context.Context) ([]*entity.Order, error) {
	return repo.readAllOrders(ctx)
}

// UpdateOrderStatus sets the status and updated timestamp of an order. The
// transition is re-checked against the stored status inside the lock, so a
// writer that raced a cancellation or a faster step cannot regress it.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus, updatedAt time.Time) error {
	defer repo.lock()()

	var order entity.Order
	found, err := repo.store.readDoc(ctx, orderKey(id), &order)
	if err != nil {
		return err
	}
	if !found {
		return repository.ErrOrderNotFound
	}

	if !order.Status.CanTransitionTo(status) {
		return repository.ErrInvalidStatusTransition
	}

	order.Status = status
	order.UpdatedAt = updatedAt

	if err := repo.store.writeDoc(ctx, orderKey(id), &order); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update order status")
	}

	return nil
}

// readAllOrders loads every order document, newest first. Corrupt documents
// are skipped, not fatal.
func (repo *orderRepository) readAllOrders(ctx context.Context) ([]*entity.Order, error) {
	keys, err := repo.store.listKeys(ctx, orderPrefix)
	if err != nil {
		return nil, err
	}

	orders := make([]*entity.Order, 0, len(keys))
	for _, key := range keys {
		var order entity.Order
		found, err := repo.store.readDoc(ctx, key, &order)
		if err != nil {
			return nil, err
		}
		if found {
			orders = append(orders, &order)
		}
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	return orders, nil
}
