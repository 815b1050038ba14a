// Package persistence selects the identity storage driver from configuration.
package persistence

import (
	"log/slog"

	"lingo/config"
	"lingo/internal/domain/constants"
	"lingo/internal/domain/repository"
	"lingo/internal/errors"
	"lingo/internal/infra/persistence/memory"
	"lingo/internal/infra/persistence/postgres"
	"lingo/internal/infra/persistence/redis"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Result exposes the repositories of the selected driver to the Fx graph.
type Result struct {
	fx.Out

	IdentityRepo repository.IdentityRepository
	TxManager    repository.TransactionManager
}

// New builds the storage driver named by storage.driver.
func New(params Params) (Result, error) {
	driver := params.Config.Storage.Driver
	logger := params.Logger.With(slog.String("driver", driver))

	switch driver {
	case constants.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Result{}, err
		}
		logger.Info("Using PostgreSQL identity store")

		return Result{
			IdentityRepo: postgres.NewIdentityRepository(db),
			TxManager:    postgres.NewTransactionManager(db),
		}, nil

	case constants.StorageDriverRedis:
		client, err := redis.NewClient(redis.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Result{}, err
		}
		logger.Info("Using Redis identity store")

		return Result{
			IdentityRepo: redis.NewIdentityRepository(client),
			TxManager:    redis.NewTransactionManager(client),
		}, nil

	case constants.StorageDriverMemory:
		store := memory.NewStore()
		logger.Warn("Using in-memory identity store, data is lost on restart")

		return Result{
			IdentityRepo: memory.NewIdentityRepository(store),
			TxManager:    memory.NewTransactionManager(store),
		}, nil

	default:
		return Result{}, errors.Errorf("unsupported storage driver %q", driver)
	}
}
