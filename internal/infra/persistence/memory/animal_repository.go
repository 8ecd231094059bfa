package memory

import (
	"context"

	"refuge/internal/domain/entity"
	"refuge/internal/domain/repository"
	"refuge/internal/errors"
	"refuge/internal/live"
)

type animalRepository struct {
	store *Store
}

// NewAnimalRepository returns the animal collection of store.
func NewAnimalRepository(store *Store) repository.AnimalRepository {
	return &animalRepository{store: store}
}

func (repo *animalRepository) Watch(ctx context.Context, filter repository.Filter) *live.Feed[[]*entity.Animal] {
	return watchQuery(ctx, repo.store.animals, filter, toAnimalEntity)
}

func (repo *animalRepository) WatchByID(ctx context.Context, id string) *live.Feed[*entity.Animal] {
	return watchDocument(ctx, repo.store.animals, id, toAnimalEntity, func() (*entity.Animal, bool) {
		return nil, false
	})
}

func (repo *animalRepository) FindByID(ctx context.Context, id string) (*entity.Animal, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	doc, ok := repo.store.animals.get(id)
	if !ok {
		return nil, repository.ErrAnimalNotFound
	}

	return toAnimalEntity(id, doc), nil
}

func (repo *animalRepository) Create(ctx context.Context, animal *entity.Animal) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.WithStack(err)
	}

	doc := toAnimalDoc(animal)
	doc.CreatedAt = repo.store.timestamp()

	id := newID()
	repo.store.animals.insert(id, doc)

	return id, nil
}

func (repo *animalRepository) Update(ctx context.Context, id string, update *entity.AnimalUpdate) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	ok := repo.store.animals.modify(id, func(doc *animalDoc) {
		a := toAnimalEntity(id, *doc)
		update.Apply(a)
		updated := toAnimalDoc(a)
		// Identity, ownership and creation time are not updatable.
		updated.RefugeID, updated.CreatedAt = doc.RefugeID, doc.CreatedAt
		*doc = updated
	})
	if !ok {
		return repository.ErrAnimalNotFound
	}

	return nil
}

func (repo *animalRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	if !repo.store.animals.remove(id) {
		return repository.ErrAnimalNotFound
	}

	return nil
}
