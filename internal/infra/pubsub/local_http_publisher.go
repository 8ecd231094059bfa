package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "refuge/internal/delivery/context"
	"refuge/internal/domain/service"

	"github.com/pkg/errors"
)

// localSubscription names the subscription in the push envelope.
const localSubscription = "projects/local/subscriptions/adoption-requests-sub"

// localHTTPPublisher posts each event to an endpoint in the envelope Pub/Sub
// uses for push subscriptions, so a push consumer can be run locally.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PushMessage is the Pub/Sub push envelope.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		OrderingKey string            `json:"orderingKey,omitempty"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

// PublishAdoptionRequested fails on any non-2xx answer from the endpoint.
func (p *localHTTPPublisher) PublishAdoptionRequested(ctx context.Context, event *service.AdoptionRequestedEvent) error {
	msg, err := newMessage(event)
	if err != nil {
		return err
	}

	var push PushMessage
	push.Subscription = localSubscription
	push.Message.Data = base64.StdEncoding.EncodeToString(msg.data)
	push.Message.Attributes = msg.attributes
	push.Message.MessageID = event.EventID
	push.Message.OrderingKey = msg.orderingKey
	push.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(push)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.TraceID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.TraceID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "push event %s", event.EventID)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("push endpoint %s answered %d", p.endpoint, resp.StatusCode)
	}

	p.logger.Debug("Adoption event pushed",
		slog.String("endpoint", p.endpoint),
		slog.String("event_id", event.EventID),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	return nil
}
