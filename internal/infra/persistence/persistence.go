// Package persistence selects the document store backing the repositories.
package persistence

import (
	"context"
	"log/slog"

	"refuge/config"
	"refuge/internal/domain/lifecycle"
	"refuge/internal/domain/repository"
	"refuge/internal/errors"
	"refuge/internal/infra/firebase"
	"refuge/internal/infra/persistence/firestore"
	"refuge/internal/infra/persistence/memory"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Logger   *slog.Logger
	Firebase *firebase.App
}

// Repositories are the document store repositories provided to the application.
type Repositories struct {
	fx.Out

	Animals  repository.AnimalRepository
	Requests repository.AdoptionRequestRepository
	Profiles repository.ProfileRepository
}

// New creates the repositories of the store selected by store.driver.
func New(params Params) (Repositories, error) {
	driver := params.Config.Store.Driver
	logger := params.Logger.With(slog.String("component", "store"), slog.String("driver", driver))

	switch driver {
	case config.DriverMemory:
		store := memory.NewStore()
		logger.Info("Using in-memory document store")

		return Repositories{
			Animals:  memory.NewAnimalRepository(store),
			Requests: memory.NewAdoptionRequestRepository(store),
			Profiles: memory.NewProfileRepository(store),
		}, nil

	case config.DriverFirestore:
		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		client, err := params.Firebase.Firestore(ctx)
		if err != nil {
			return Repositories{}, err
		}

		params.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				logger.Info("Closing Firestore client")

				return client.Close()
			},
		})
		logger.Info("Using Firestore document store", slog.String("project_id", params.Firebase.ProjectID()))

		return Repositories{
			Animals:  firestore.NewAnimalRepository(client),
			Requests: firestore.NewAdoptionRequestRepository(client),
			Profiles: firestore.NewProfileRepository(client),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unsupported store driver: %s", driver)
	}
}
