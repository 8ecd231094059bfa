package repository

import (
	"context"

	"refuge/internal/domain/entity"
	"refuge/internal/live"
)

// Adoption request document field names used in filters.
const (
	RequestFieldUserID   = "userId"
	RequestFieldRefugeID = "refugeId"
)

// AdoptionRequestRepository defines the operations on the adoption request collection.
// Requests are never updated or deleted by this client.
type AdoptionRequestRepository interface {
	// Watch streams every request matching the equality filter.
	Watch(ctx context.Context, filter Filter) *live.Feed[[]*entity.AdoptionRequest]

	// Create persists a new request and returns its identifier. Implementations
	// always store the pending status whatever the entity carries.
	Create(ctx context.Context, request *entity.AdoptionRequest) (string, error)
}
