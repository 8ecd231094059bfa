package pubsub

import (
	"encoding/json"

	"refuge/internal/domain/service"

	"github.com/pkg/errors"
)

// message is an adoption event ready for the wire. Events of one shelter
// share an ordering key so its subscribers see requests in submission order.
type message struct {
	data        []byte
	attributes  map[string]string
	orderingKey string
}

func newMessage(event *service.AdoptionRequestedEvent) (*message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		"event_id":  event.EventID,
		"refuge_id": event.RefugeID,
		"user_id":   event.UserID,
	}
	if event.TraceID != "" {
		attributes["trace_id"] = event.TraceID
	}

	return &message{
		data:        data,
		attributes:  attributes,
		orderingKey: event.RefugeID,
	}, nil
}
