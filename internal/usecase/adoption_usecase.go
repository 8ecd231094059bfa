package usecase

import (
	"context"

	"refuge/internal/domain/entity"
	"refuge/internal/live"
)

// AdoptionUsecase defines the adoption request workflow and its live views.
type AdoptionUsecase interface {
	// Submit creates a pending request from requester for an animal and
	// returns its identifier.
	Submit(ctx context.Context, requester *entity.Principal, input *SubmitAdoptionInput) (string, error)

	RequestsByUser(ctx context.Context, userID string) *live.Feed[[]*entity.AdoptionRequest]
	RequestsByShelter(ctx context.Context, shelterID string) *live.Feed[[]*entity.AdoptionRequest]

	// MyRequests streams the requests sent by the signed-in user.
	MyRequests(ctx context.Context) (*live.Feed[[]*entity.AdoptionRequest], error)

	// ShelterRequests streams the requests received by the signed-in shelter.
	ShelterRequests(ctx context.Context) (*live.Feed[[]*entity.AdoptionRequest], error)
}

// SubmitAdoptionInput defines the data of an adoption request. Status is
// accepted for compatibility and always replaced by pending.
type SubmitAdoptionInput struct {
	AnimalID string               `json:"animalId" validate:"required"`
	Message  string               `json:"message"`
	Status   entity.RequestStatus `json:"status,omitempty"`
}
