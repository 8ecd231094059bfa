package memory

import (
	"context"

	"refuge/internal/domain/entity"
	"refuge/internal/domain/repository"
	"refuge/internal/errors"
	"refuge/internal/live"
)

type adoptionRequestRepository struct {
	store *Store
}

// NewAdoptionRequestRepository returns the adoption request collection of store.
func NewAdoptionRequestRepository(store *Store) repository.AdoptionRequestRepository {
	return &adoptionRequestRepository{store: store}
}

func (repo *adoptionRequestRepository) Watch(ctx context.Context, filter repository.Filter) *live.Feed[[]*entity.AdoptionRequest] {
	return watchQuery(ctx, repo.store.requests, filter, toRequestEntity)
}

func (repo *adoptionRequestRepository) Create(ctx context.Context, request *entity.AdoptionRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.WithStack(err)
	}

	id := newID()
	repo.store.requests.insert(id, requestDoc{
		AnimalID:   request.AnimalID,
		AnimalName: request.AnimalName,
		UserID:     request.UserID,
		UserEmail:  request.UserEmail,
		RefugeID:   request.RefugeID,
		Message:    request.Message,
		Status:     entity.StatusPending,
		CreatedAt:  repo.store.timestamp(),
	})

	return id, nil
}
