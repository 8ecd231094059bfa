// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"refuge/internal/domain/entity"
	"refuge/internal/live"

	"github.com/pkg/errors"
)

// ErrAnimalNotFound is returned when an animal document does not exist.
var ErrAnimalNotFound = errors.New("animal not found")

// Animal document field names used in filters.
const (
	AnimalFieldAvailable = "available"
	AnimalFieldRefugeID  = "refugeId"
)

// AnimalRepository defines the operations on the animal collection.
type AnimalRepository interface {
	// Watch streams every animal matching the equality filter. A new full
	// snapshot is emitted whenever the matching set changes.
	Watch(ctx context.Context, filter Filter) *live.Feed[[]*entity.Animal]

	// WatchByID streams one animal. Nothing is emitted while it does not exist.
	WatchByID(ctx context.Context, id string) *live.Feed[*entity.Animal]

	// FindByID reads one animal once.
	FindByID(ctx context.Context, id string) (*entity.Animal, error)

	// Create persists a new animal and returns the store-assigned identifier.
	// The creation timestamp is assigned by the store.
	Create(ctx context.Context, animal *entity.Animal) (string, error)

	// Update applies a partial update to an existing animal.
	Update(ctx context.Context, id string, update *entity.AnimalUpdate) error

	// Delete removes an animal.
	Delete(ctx context.Context, id string) error
}
