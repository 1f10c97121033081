// Package persistence selects the store behind the repository interfaces.
package persistence

import (
	"log/slog"

	"curator/config"
	"curator/internal/domain/constants"
	"curator/internal/domain/repository"
	"curator/internal/errors"
	"curator/internal/infra/backend"
	"curator/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the dependencies of the store
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories are the store-bound repositories provided to the usecases
type Repositories struct {
	fx.Out

	Locations repository.LocationRepository
	Products  repository.ProductRepository
	Titles    repository.TitleRepository
	TxManager repository.TransactionManager
}

// New opens the configured store: postgres tables or the admin backend.
func New(params Params) (Repositories, error) {
	provider := constants.StoreProviderPostgres
	if params.Config.Store != nil && params.Config.Store.Provider != "" {
		provider = params.Config.Store.Provider
	}

	switch provider {
	case constants.StoreProviderPostgres:
		if params.Config.Postgres == nil {
			return Repositories{}, errors.New("postgres configuration is required for postgres store")
		}
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}
		params.Logger.Info("Using postgres store")

		return Repositories{
			Locations: postgres.NewLocationRepository(db),
			Products:  postgres.NewProductRepository(db),
			Titles:    postgres.NewTitleRepository(db),
			TxManager: postgres.NewTransactionManager(db),
		}, nil

	case constants.StoreProviderBackend:
		client, err := backend.NewClient(params.Config.Backend, params.Logger)
		if err != nil {
			return Repositories{}, errors.Wrap(err, "failed to create backend client")
		}
		params.Logger.Info("Using admin backend store", slog.String("baseUrl", params.Config.Backend.BaseURL))

		return Repositories{
			Locations: backend.NewLocationRepository(client),
			Products:  backend.NewProductRepository(client),
			Titles:    backend.NewTitleRepository(client),
			TxManager: backend.NewTransactionManager(client),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown store provider: %s", provider)
	}
}

// Module provides the store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
