// Package persistence selects the storage backend and provides the domain
// repositories bound to it. The hosted deployment runs on PostgreSQL; local
// development defaults to a JSON document store on disk, so the service runs
// without any external infrastructure.
package persistence

import (
	"log/slog"

	"drogo/config"
	"drogo/internal/domain/constants"
	"drogo/internal/domain/repository"
	"drogo/internal/errors"
	"drogo/internal/infra/persistence/localstore"
	"drogo/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Result bundles the repository set of the selected backend.
type Result struct {
	fx.Out

	UserRepo     repository.UserRepository
	CartRepo     repository.CartRepository
	LocationRepo repository.LocationRepository
	OrderRepo    repository.OrderRepository
	WaitlistRepo repository.WaitlistRepository
	TxManager    repository.TransactionManager
}

// New builds the repository set for the configured storage provider.
func New(params Params) (Result, error) {
	switch params.Config.Storage.Provider {
	case constants.StorageProviderPostgres:
		return newPostgresRepositories(params)
	case constants.StorageProviderLocal, "":
		return newLocalRepositories(params)
	default:
		return Result{}, errors.Errorf("unknown storage provider: %s", params.Config.Storage.Provider)
	}
}

func newPostgresRepositories(params Params) (Result, error) {
	if params.Config.Postgres == nil {
		return Result{}, errors.New("postgres storage provider requires a postgres config block")
	}

	db, err := postgres.New(postgres.Params{
		Lifecycle: params.Lifecycle,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return Result{}, err
	}

	return Result{
		UserRepo:     postgres.NewUserRepository(db),
		CartRepo:     postgres.NewCartRepository(db),
		LocationRepo: postgres.NewLocationRepository(db),
		OrderRepo:    postgres.NewOrderRepository(db),
		WaitlistRepo: postgres.NewWaitlistRepository(db),
		TxManager:    postgres.NewTransactionManager(db),
	}, nil
}

func newLocalRepositories(params Params) (Result, error) {
	store, err := localstore.New(localstore.Params{
		Lifecycle: params.Lifecycle,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return Result{}, err
	}

	return Result{
		UserRepo:     localstore.NewUserRepository(store),
		CartRepo:     localstore.NewCartRepository(store),
		LocationRepo: localstore.NewLocationRepository(store),
		OrderRepo:    localstore.NewOrderRepository(store),
		WaitlistRepo: localstore.NewWaitlistRepository(store),
		TxManager:    localstore.NewTransactionManager(store),
	}, nil
}
