// Package pubsub publishes adoption events for asynchronous fan-out.
package pubsub

import (
	"context"
	"log/slog"

	"refuge/config"
	"refuge/internal/domain/service"
	"refuge/internal/infra/firebase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops events when no transport is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishAdoptionRequested(_ context.Context, event *service.AdoptionRequestedEvent) error {
	p.logger.Debug("Event publishing disabled", slog.String("event_id", event.EventID))

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc       fx.Lifecycle
	Ctx      context.Context
	Config   *config.Config
	Logger   *slog.Logger
	Firebase *firebase.App
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.Notification
	logger := params.Logger

	var publisher service.EventPublisher
	var err error

	switch cfg.Provider {
	case config.NotificationLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case config.NotificationPubSub:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for pubsub provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for pubsub provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger,
			params.Firebase.ClientOptions()...)
		if err != nil {
			return nil, err
		}

	default:
		logger.Info("Event publishing not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}
