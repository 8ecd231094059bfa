package notification

import (
	"context"
	"log/slog"

	"refuge/internal/domain/entity"
	"refuge/internal/domain/service"
	"refuge/internal/errors"

	"firebase.google.com/go/v4/messaging"
)

// messageSender is the part of the messaging client the notifier uses.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client messageSender
	logger *slog.Logger
}

// NewFirebaseService creates a notifier that pushes through Firebase Cloud Messaging topics.
func NewFirebaseService(client messageSender, logger *slog.Logger) service.NotificationService {
	return &firebaseService{
		client: client,
		logger: logger,
	}
}

// NotifyAdoptionRequested sends both notifications. Every message is attempted;
// the failures are returned together.
func (s *firebaseService) NotifyAdoptionRequested(ctx context.Context, request *entity.AdoptionRequest) error {
	var errs []error
	for _, m := range adoptionMessages(request) {
		id, err := s.client.Send(ctx, &messaging.Message{
			Topic: m.topic,
			Notification: &messaging.Notification{
				Title: m.title,
				Body:  m.body,
			},
			Data: messageData(request),
		})
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "failed to send notification to %s", m.topic))

			continue
		}

		s.logger.DebugContext(ctx, "notification sent",
			slog.String("topic", m.topic),
			slog.String("message_id", id),
		)
	}

	return errors.Join(errs...)
}

func (s *firebaseService) Close() error {
	return nil
}
