package service

import (
	"context"
	"time"
)

// AdoptionRequestedEvent is published when a user submits an adoption request.
type AdoptionRequestedEvent struct {
	EventID    string    `json:"event_id"`
	RequestID  string    `json:"request_id"`
	AnimalID   string    `json:"animal_id"`
	AnimalName string    `json:"animal_name"`
	UserID     string    `json:"user_id"`
	UserEmail  string    `json:"user_email"`
	RefugeID   string    `json:"refuge_id"`
	OccurredAt time.Time `json:"occurred_at"`
	TraceID    string    `json:"trace_id,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAdoptionRequested publishes the event for asynchronous fan-out
	PublishAdoptionRequested(ctx context.Context, event *AdoptionRequestedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
