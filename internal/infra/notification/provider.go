package notification

import (
	"context"
	"log/slog"

	"refuge/config"
	"refuge/internal/domain/entity"
	"refuge/internal/domain/service"
	"refuge/internal/infra/firebase"

	"go.uber.org/fx"
)

type noopService struct {
	logger *slog.Logger
}

func (s *noopService) NotifyAdoptionRequested(ctx context.Context, request *entity.AdoptionRequest) error {
	s.logger.DebugContext(ctx, "notifications disabled, skipping", slog.String("request_id", request.ID))

	return nil
}

func (s *noopService) Close() error {
	return nil
}

// Params holds dependencies for the NotificationService, injected by Fx
type Params struct {
	fx.In

	Ctx       context.Context
	Config    *config.Config
	Logger    *slog.Logger
	Firebase  *firebase.App
	Publisher service.EventPublisher
}

// NewNotificationService creates the notifier selected by notification.provider.
func NewNotificationService(params Params) (service.NotificationService, error) {
	logger := params.Logger.With(slog.String("component", "notification"))

	switch params.Config.Notification.Provider {
	case config.NotificationFCM:
		client, err := params.Firebase.Messaging(params.Ctx)
		if err != nil {
			return nil, err
		}

		return NewFirebaseService(client, logger), nil

	case config.NotificationPubSub, config.NotificationLocal:
		return NewPublisherService(params.Publisher), nil

	default:
		return &noopService{logger: logger}, nil
	}
}
