package firestore

import (
	"errors"
	"testing"
	"time"

	"refuge/internal/domain/entity"
	domainerrors "refuge/internal/domain/errors"

	gcfirestore "cloud.google.com/go/firestore"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestAnimalModel_RoundTrip(t *testing.T) {
	created := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	animal := &entity.Animal{
		Name:        "Filou",
		Type:        "chat",
		Breed:       "Européen",
		Age:         3,
		Description: "Très câlin, aime les enfants",
		Image:       "data:image/jpeg;base64,AAAA",
		RefugeID:    "refuge-a",
		RefugeName:  "SPA Lyon",
		Location:    &orb.Point{4.83, 45.76},
		Available:   true,
	}

	m := toAnimalModel(animal)
	assert.Equal(t, "data:image/jpeg;base64,AAAA", m.ImageURL)
	require.NotNil(t, m.Latitude)
	assert.InDelta(t, 45.76, *m.Latitude, 1e-9)
	assert.True(t, m.CreatedAt.IsZero(), "creation time is left to the server")

	m.CreatedAt = created
	back := m.toEntity("abc")
	assert.Equal(t, "abc", back.ID)
	assert.Equal(t, created, back.CreatedAt)
	require.NotNil(t, back.Location)
	assert.Equal(t, *animal.Location, *back.Location)
	assert.Equal(t, animal.Image, back.Image)
}

func TestAnimalModel_WithoutLocation(t *testing.T) {
	m := toAnimalModel(&entity.Animal{Name: "Rex"})
	assert.Nil(t, m.Latitude)
	assert.Nil(t, m.Longitude)
	assert.Nil(t, m.toEntity("x").Location)
}

func TestAnimalUpdates(t *testing.T) {
	name := "Rex"
	available := false
	loc := orb.Point{2.35, 48.85}

	updates := animalUpdates(&entity.AnimalUpdate{Name: &name, Available: &available, Location: &loc})

	paths := map[string]any{}
	for _, u := range updates {
		paths[u.Path] = u.Value
	}
	assert.Equal(t, map[string]any{
		"name":      "Rex",
		"available": false,
		"latitude":  48.85,
		"longitude": 2.35,
	}, paths)

	assert.Empty(t, animalUpdates(&entity.AnimalUpdate{}))
	assert.IsType(t, []gcfirestore.Update{}, animalUpdates(&entity.AnimalUpdate{Name: &name}))
}

func TestRequestModel_ForcesPending(t *testing.T) {
	m := toRequestModel(&entity.AdoptionRequest{AnimalID: "a1", UserID: "u1", Status: entity.StatusApproved})
	assert.Equal(t, "pending", m.Status)
	assert.Equal(t, entity.StatusPending, m.toEntity("r1").Status)
}

func TestProfileModel_RoundTrip(t *testing.T) {
	p := &entity.UserProfile{UID: "u1", Email: "a@b.fr", Role: entity.RoleRefuge, RefugeName: "SPA"}
	back := toProfileModel(p).toEntity("u1")
	assert.Equal(t, p, back)
}

func TestErrorMapping(t *testing.T) {
	assert.True(t, isNotFound(status.Error(codes.NotFound, "no such document")))
	assert.False(t, isNotFound(status.Error(codes.Unavailable, "try later")))
	assert.False(t, isNotFound(errors.New("plain")))

	err := backingError("create animal", status.Error(codes.Unavailable, "try later"))
	assert.Equal(t, domainerrors.CodeBackingService, domainerrors.Kind(err))
	assert.Equal(t, codes.Unavailable, status.Code(errors.Unwrap(err)))
}
