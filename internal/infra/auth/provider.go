package auth

import (
	"context"
	"log/slog"

	"refuge/config"
	"refuge/internal/domain/lifecycle"
	"refuge/internal/domain/service"
	"refuge/internal/errors"
	"refuge/internal/infra/firebase"

	"go.uber.org/fx"
)

// ProviderParams holds dependencies for the IdentityProvider, injected by Fx
type ProviderParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Firebase *firebase.App
}

// NewIdentityProvider creates the identity provider selected by identity.driver.
func NewIdentityProvider(params ProviderParams) (service.IdentityProvider, error) {
	cfg := params.Config.Identity

	switch cfg.Driver {
	case config.DriverLocal:
		params.Logger.Info("Using local identity provider")

		return NewLocalProvider(NewBcryptHasher(cfg.BcryptCost), params.Logger)

	case config.DriverFirebase:
		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		admin, err := params.Firebase.Auth(ctx)
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Using Firebase identity provider", slog.String("project_id", params.Firebase.ProjectID()))

		return NewFirebaseProvider(ctx, admin, params.Firebase.APIKey(), params.Logger)

	default:
		return nil, errors.Errorf("unsupported identity driver: %s", cfg.Driver)
	}
}
