package firestore

import (
	"context"

	"refuge/internal/domain/entity"
	"refuge/internal/domain/repository"
	"refuge/internal/live"

	gcfirestore "cloud.google.com/go/firestore"
)

type adoptionRequestRepository struct {
	client *gcfirestore.Client
}

// NewAdoptionRequestRepository returns the adoption request collection of client.
func NewAdoptionRequestRepository(client *gcfirestore.Client) repository.AdoptionRequestRepository {
	return &adoptionRequestRepository{client: client}
}

func (repo *adoptionRequestRepository) Watch(ctx context.Context, filter repository.Filter) *live.Feed[[]*entity.AdoptionRequest] {
	q := repo.client.Collection(requestsCollection).Where(filter.Field, "==", filter.Value)

	return watchQuery(ctx, q, "watch adoption requests where "+filter.Field, decodeRequest)
}

func (repo *adoptionRequestRepository) Create(ctx context.Context, request *entity.AdoptionRequest) (string, error) {
	ref, _, err := repo.client.Collection(requestsCollection).Add(ctx, toRequestModel(request))
	if err != nil {
		return "", backingError("create adoption request", err)
	}

	return ref.ID, nil
}
