// Package firebase initializes the Firebase project clients shared by the
// document store, identity and messaging adapters.
package firebase

import (
	"context"
	"log/slog"
	"sync"

	"refuge/config"
	"refuge/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// App initializes the Firebase application on first use, so deployments that
// run on local drivers never need credentials.
type App struct {
	cfg    *config.FirebaseConfig
	logger *slog.Logger

	once sync.Once
	app  *firebase.App
	err  error
}

// NewApp creates the lazily initialized Firebase application.
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	fbCfg := cfg.Firebase
	if fbCfg == nil {
		fbCfg = &config.FirebaseConfig{}
	}

	return &App{
		cfg:    fbCfg,
		logger: logger.With(slog.String("component", "firebase")),
	}
}

// ClientOptions returns the credentials options shared by every Google client.
func (a *App) ClientOptions() []option.ClientOption {
	if a.cfg.CredentialsPath == "" {
		return nil
	}

	return []option.ClientOption{option.WithCredentialsFile(a.cfg.CredentialsPath)}
}

// ProjectID returns the configured project.
func (a *App) ProjectID() string {
	return a.cfg.ProjectID
}

// APIKey returns the Web API key used for password sign-in.
func (a *App) APIKey() string {
	return a.cfg.APIKey
}

func (a *App) get(ctx context.Context) (*firebase.App, error) {
	a.once.Do(func() {
		var fbCfg *firebase.Config
		if a.cfg.ProjectID != "" {
			fbCfg = &firebase.Config{ProjectID: a.cfg.ProjectID}
		}

		a.app, a.err = firebase.NewApp(ctx, fbCfg, a.ClientOptions()...)
		if a.err != nil {
			a.err = errors.Wrap(a.err, "failed to initialize Firebase app")

			return
		}
		a.logger.Info("Firebase app initialized", slog.String("project_id", a.cfg.ProjectID))
	})

	return a.app, a.err
}

// Firestore returns a new document store client. The caller closes it.
func (a *App) Firestore(ctx context.Context) (*firestore.Client, error) {
	app, err := a.get(ctx)
	if err != nil {
		return nil, err
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get firestore client")
	}

	return client, nil
}

// Auth returns the identity admin client.
func (a *App) Auth(ctx context.Context) (*auth.Client, error) {
	app, err := a.get(ctx)
	if err != nil {
		return nil, err
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return client, nil
}

// Messaging returns the cloud messaging client.
func (a *App) Messaging(ctx context.Context) (*messaging.Client, error) {
	app, err := a.get(ctx)
	if err != nil {
		return nil, err
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return client, nil
}
