// Package firestore contains the implementation of the persistence layer on
// the Cloud Firestore document database.
package firestore

import (
	"context"
	"fmt"

	"refuge/internal/domain/entity"
	"refuge/internal/domain/repository"
	"refuge/internal/live"

	gcfirestore "cloud.google.com/go/firestore"
)

type animalRepository struct {
	client *gcfirestore.Client
}

// NewAnimalRepository returns the animal collection of client.
func NewAnimalRepository(client *gcfirestore.Client) repository.AnimalRepository {
	return &animalRepository{client: client}
}

func (repo *animalRepository) collection() *gcfirestore.CollectionRef {
	return repo.client.Collection(animalsCollection)
}

func (repo *animalRepository) Watch(ctx context.Context, filter repository.Filter) *live.Feed[[]*entity.Animal] {
	q := repo.collection().Where(filter.Field, "==", filter.Value)

	return watchQuery(ctx, q, fmt.Sprintf("watch animals where %s", filter.Field), decodeAnimal)
}

func (repo *animalRepository) WatchByID(ctx context.Context, id string) *live.Feed[*entity.Animal] {
	return watchDocument(ctx, repo.collection().Doc(id), "watch animal "+id, decodeAnimal,
		func() (*entity.Animal, bool) { return nil, false })
}

func (repo *animalRepository) FindByID(ctx context.Context, id string) (*entity.Animal, error) {
	snap, err := repo.collection().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrAnimalNotFound
		}

		return nil, backingError("get animal "+id, err)
	}

	animal, err := decodeAnimal(snap)
	if err != nil {
		return nil, backingError("get animal "+id, err)
	}

	return animal, nil
}

func (repo *animalRepository) Create(ctx context.Context, animal *entity.Animal) (string, error) {
	ref, _, err := repo.collection().Add(ctx, toAnimalModel(animal))
	if err != nil {
		return "", backingError("create animal", err)
	}

	return ref.ID, nil
}

func (repo *animalRepository) Update(ctx context.Context, id string, update *entity.AnimalUpdate) error {
	updates := animalUpdates(update)
	if len(updates) == 0 {
		return nil
	}

	if _, err := repo.collection().Doc(id).Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return repository.ErrAnimalNotFound
		}

		return backingError("update animal "+id, err)
	}

	return nil
}

func (repo *animalRepository) Delete(ctx context.Context, id string) error {
	if _, err := repo.collection().Doc(id).Delete(ctx, gcfirestore.Exists); err != nil {
		if isNotFound(err) {
			return repository.ErrAnimalNotFound
		}

		return backingError("delete animal "+id, err)
	}

	return nil
}
