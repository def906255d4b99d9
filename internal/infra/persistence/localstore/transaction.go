package localstore

import (
	"context"

	"drogo/internal/domain/repository"
)

// localTransactionManager implements the domain's TransactionManager
// interface for the document store. There is no rollback for JSON
// documents; atomicity here means exclusivity: the store lock is held for
// the whole callback so no other writer interleaves. Checkout validates
// everything before mutating, so a mid-callback failure leaves at most an
// order document without a cleared cart, which the next cart load tolerates.
type localTransactionManager struct {
	store *Store
}

// localRepositoryFactory yields repositories that share the already-held
// store lock.
type localRepositoryFactory struct {
	store *Store
}

// NewOrderRepository creates an order repository bound to the transaction.
func (f *localRepositoryFactory) NewOrderRepository() repository.OrderRepository {
	return &orderRepository{store: f.store, inTx: true}
}

// NewCartRepository creates a cart repository bound to the transaction.
func (f *localRepositoryFactory) NewCartRepository() repository.CartRepository {
	return &cartRepository{store: f.store, inTx: true}
}

// NewTransactionManager is the constructor for localTransactionManager.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &localTransactionManager{store: store}
}

// Execute runs the given function while holding the store's write lock.
func (tm *localTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	return fn(&localRepositoryFactory{store: tm.store})
}
