// Package kvstore implements the device-local key-value storage the favorites
// list is persisted in.
package kvstore

import (
	"context"
	"log/slog"

	"refuge/config"
	"refuge/internal/domain/repository"
	"refuge/internal/errors"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// closer is implemented by stores that hold a connection.
type closer interface {
	Close() error
}

// New creates the key-value store selected by favorites.driver and ties its
// connection to the application lifecycle.
func New(params Params) (repository.KeyValueStore, error) {
	cfg := params.Config.Favorites
	logger := params.Logger.With(slog.String("component", "kvstore"), slog.String("driver", cfg.Driver))

	var (
		store repository.KeyValueStore
		err   error
	)
	switch cfg.Driver {
	case config.DriverSQLite:
		store, err = OpenSQLite(cfg.SQLitePath)
	case config.DriverRedis:
		store = NewRedis(cfg)
	case config.DriverMemory:
		store = NewMemory()
	default:
		return nil, errors.Errorf("unsupported favorites driver: %s", cfg.Driver)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to open favorites store")
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if pinger, ok := store.(interface{ Ping(context.Context) error }); ok {
				if err := pinger.Ping(ctx); err != nil {
					return errors.Wrap(err, "failed to reach favorites store")
				}
			}
			logger.InfoContext(ctx, "favorites store ready")

			return nil
		},
		OnStop: func(_ context.Context) error {
			if c, ok := store.(closer); ok {
				return c.Close()
			}

			return nil
		},
	})

	return store, nil
}
