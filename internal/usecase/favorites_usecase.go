package usecase

import "context"

// FavoritesUsecase defines the device-local favorites list. Every operation
// reads and rewrites the whole list; concurrent writers may lose updates.
type FavoritesUsecase interface {
	List(ctx context.Context) ([]string, error)
	Add(ctx context.Context, animalID string) error
	Remove(ctx context.Context, animalID string) error
	Contains(ctx context.Context, animalID string) (bool, error)

	// Toggle flips membership of animalID and returns the new membership.
	Toggle(ctx context.Context, animalID string) (bool, error)
}
