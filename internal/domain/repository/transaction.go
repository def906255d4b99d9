package repository

import "context"

// TransactionManager defines the interface for managing store transactions.
// This lets the use case layer run multi-step mutations atomically without
// depending on a specific driver like GORM; the local JSON store implements
// it with its document lock instead.
type TransactionManager interface {
	// Execute runs a function within a single transaction. If the function
	// returns an error, the transaction is rolled back; otherwise committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory yields repository instances bound to one transaction, so
// every operation inside the callback shares the same connection.
type RepositoryFactory interface {
	// NewOrderRepository returns an OrderRepository bound to the transaction.
	NewOrderRepository() OrderRepository

	// NewCartRepository returns a CartRepository bound to the transaction.
	NewCartRepository() CartRepository
}
