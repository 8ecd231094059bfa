package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	deliverycontext "refuge/internal/delivery/context"
	"refuge/internal/domain/entity"
	"refuge/internal/domain/service"
	"refuge/internal/errors"
	mockService "refuge/internal/mocks/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	sent    []*messaging.Message
	failFor string
}

func (r *recordingSender) Send(_ context.Context, m *messaging.Message) (string, error) {
	if m.Topic == r.failFor {
		return "", errors.New("unavailable")
	}
	r.sent = append(r.sent, m)

	return "projects/p/messages/1", nil
}

func testRequest() *entity.AdoptionRequest {
	return &entity.AdoptionRequest{
		ID:         "req-1",
		AnimalID:   "animal-1",
		AnimalName: "Filou",
		UserID:     "user-1",
		UserEmail:  "marie@example.fr",
		RefugeID:   "refuge-a",
		Status:     entity.StatusPending,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFirebaseService_NotifiesBothParties(t *testing.T) {
	sender := &recordingSender{}
	notifier := NewFirebaseService(sender, discardLogger())

	require.NoError(t, notifier.NotifyAdoptionRequested(context.Background(), testRequest()))
	require.Len(t, sender.sent, 2)

	assert.Equal(t, "user-user-1", sender.sent[0].Topic)
	assert.Equal(t, "Demande envoyée", sender.sent[0].Notification.Title)
	assert.Contains(t, sender.sent[0].Notification.Body, "Filou")

	assert.Equal(t, "refuge-refuge-a", sender.sent[1].Topic)
	assert.Equal(t, "marie@example.fr souhaite adopter Filou", sender.sent[1].Notification.Body)
	assert.Equal(t, "req-1", sender.sent[1].Data["request_id"])
}

func TestFirebaseService_AttemptsEveryMessage(t *testing.T) {
	sender := &recordingSender{failFor: "user-user-1"}
	notifier := NewFirebaseService(sender, discardLogger())

	err := notifier.NotifyAdoptionRequested(context.Background(), testRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user-user-1")
	require.Len(t, sender.sent, 1, "the shelter is still notified")
	assert.Equal(t, "refuge-refuge-a", sender.sent[0].Topic)
}

func TestPublisherService_PublishesEvent(t *testing.T) {
	publisher := mockService.NewMockEventPublisher(t)
	notifier := NewPublisherService(publisher)

	var event *service.AdoptionRequestedEvent
	publisher.EXPECT().PublishAdoptionRequested(mock.Anything, mock.Anything).
		Run(func(_ context.Context, e *service.AdoptionRequestedEvent) { event = e }).
		Return(nil).
		Once()

	ctx := deliverycontext.WithRequestID(context.Background(), "trace-9")
	require.NoError(t, notifier.NotifyAdoptionRequested(ctx, testRequest()))
	require.NotNil(t, event)

	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, "req-1", event.RequestID)
	assert.Equal(t, "refuge-a", event.RefugeID)
	assert.Equal(t, "trace-9", event.TraceID)
	assert.False(t, event.OccurredAt.IsZero())
	assert.NoError(t, notifier.Close(), "the publisher is closed by its own hook")
}

func TestPublisherService_PublishFailure(t *testing.T) {
	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().PublishAdoptionRequested(mock.Anything, mock.Anything).
		Return(errors.New("topic not found"))

	err := NewPublisherService(publisher).NotifyAdoptionRequested(context.Background(), testRequest())
	assert.EqualError(t, err, "topic not found")
}
