package service

import (
	"context"

	"refuge/internal/domain/entity"
)

// NotificationService tells the people involved that an adoption request was created.
type NotificationService interface {
	// NotifyAdoptionRequested notifies the requester that the request was sent
	// and the shelter that a new request arrived.
	NotifyAdoptionRequested(ctx context.Context, request *entity.AdoptionRequest) error

	// Close releases any resources held by the notifier
	Close() error
}
