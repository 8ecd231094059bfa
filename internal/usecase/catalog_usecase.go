// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"refuge/internal/domain/entity"
	"refuge/internal/live"

	"github.com/paulmach/orb"
)

// CatalogUsecase defines the live animal views and the shelter write operations.
type CatalogUsecase interface {
	// AvailableAnimals streams every animal open for adoption.
	AvailableAnimals(ctx context.Context) *live.Feed[[]*entity.Animal]

	// AnimalByID streams one animal. Nothing is emitted while it does not exist.
	AnimalByID(ctx context.Context, id string) *live.Feed[*entity.Animal]

	// AnimalsByShelter streams every animal of a shelter, available or not.
	AnimalsByShelter(ctx context.Context, shelterID string) *live.Feed[[]*entity.Animal]

	// ShelterAnimals streams the animals of the signed-in shelter.
	ShelterAnimals(ctx context.Context) (*live.Feed[[]*entity.Animal], error)

	// NearbyAnimals streams available animals within radiusMeters of center, nearest first.
	NearbyAnimals(ctx context.Context, center orb.Point, radiusMeters float64) *live.Feed[[]*NearbyAnimal]

	// FavoriteAnimals streams the available animals in the favorites list as it
	// stood when the view was opened.
	FavoriteAnimals(ctx context.Context) (*live.Feed[[]*entity.Animal], error)

	CreateAnimal(ctx context.Context, input *CreateAnimalInput) (string, error)
	UpdateAnimal(ctx context.Context, id string, update *entity.AnimalUpdate) error
	ToggleAvailability(ctx context.Context, id string) (bool, error)
	DeleteAnimal(ctx context.Context, id string) error

	// ShareCode renders a PNG QR code of the animal's deep link.
	ShareCode(ctx context.Context, id string) ([]byte, error)
}

// --- Input DTOs ---

// CreateAnimalInput defines the data a shelter enters to list an animal.
// Exactly one of Image or Photo is expected; Photo is encoded by the media codec.
type CreateAnimalInput struct {
	Name        string              `json:"name" validate:"required"`
	Type        string              `json:"type" validate:"required"`
	Breed       string              `json:"breed" validate:"required"`
	Age         int                 `json:"age" validate:"gte=0"`
	Description string              `json:"description" validate:"min=20"`
	Image       entity.EncodedImage `json:"image,omitempty"`
	Photo       []byte              `json:"photo,omitempty"`
	Location    *orb.Point          `json:"location,omitempty"`
}

// --- Output DTOs ---

// NearbyAnimal is an animal with its distance from the searched point.
type NearbyAnimal struct {
	Animal         *entity.Animal `json:"animal"`
	DistanceMeters float64        `json:"distanceMeters"`
	Distance       string         `json:"distance"`
	AgeLabel       string         `json:"ageLabel"`
}
