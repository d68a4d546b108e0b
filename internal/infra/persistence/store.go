// Package persistence selects the document backend holding users and notifications.
package persistence

import (
	"log/slog"

	"pawpost/config"
	"pawpost/internal/domain/repository"
	firebaseinfra "pawpost/internal/infra/firebase"
	"pawpost/internal/infra/persistence/firestore"
	"pawpost/internal/infra/persistence/memory"
	"pawpost/internal/infra/persistence/postgres"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the repositories, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
	App    *firebase.App `optional:"true"`
}

// Repositories are the repositories of the configured store
type Repositories struct {
	fx.Out

	Users         repository.UserRepository
	Notifications repository.NotificationRepository
}

// NewRepositories opens the configured store
func NewRepositories(params Params) (Repositories, error) {
	provider := config.StoreProviderMemory
	if params.Config.Store != nil && params.Config.Store.Provider != "" {
		provider = params.Config.Store.Provider
	}

	params.Logger.Info("Opening document store", slog.String("provider", provider))

	switch provider {
	case config.StoreProviderMemory:
		return Repositories{
			Users:         memory.NewUserRepository(),
			Notifications: memory.NewNotificationRepository(),
		}, nil

	case config.StoreProviderFirestore:
		client, err := firebaseinfra.NewFirestoreClient(params.Lc, params.App)
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Users:         firestore.NewUserRepository(client),
			Notifications: firestore.NewNotificationRepository(client),
		}, nil

	case config.StoreProviderPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Users:         postgres.NewUserRepository(db),
			Notifications: postgres.NewNotificationRepository(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown store provider: %s", provider)
	}
}
