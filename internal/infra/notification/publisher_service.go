package notification

import (
	"context"
	"time"

	deliverycontext "refuge/internal/delivery/context"
	"refuge/internal/domain/entity"
	"refuge/internal/domain/service"

	"github.com/google/uuid"
)

// publisherService hands notifications to a downstream worker as events.
type publisherService struct {
	publisher service.EventPublisher
	now       func() time.Time
}

// NewPublisherService creates a notifier that publishes adoption events.
func NewPublisherService(publisher service.EventPublisher) service.NotificationService {
	return &publisherService{publisher: publisher, now: time.Now}
}

func (s *publisherService) NotifyAdoptionRequested(ctx context.Context, request *entity.AdoptionRequest) error {
	return s.publisher.PublishAdoptionRequested(ctx, &service.AdoptionRequestedEvent{
		EventID:    uuid.NewString(),
		RequestID:  request.ID,
		AnimalID:   request.AnimalID,
		AnimalName: request.AnimalName,
		UserID:     request.UserID,
		UserEmail:  request.UserEmail,
		RefugeID:   request.RefugeID,
		OccurredAt: s.now().UTC(),
		TraceID:    deliverycontext.GetRequestIDFromContext(ctx),
	})
}

// Close is a no-op: the publisher is closed by its own lifecycle hook.
func (s *publisherService) Close() error {
	return nil
}
