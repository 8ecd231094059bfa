package firestore

import (
	"context"

	"refuge/internal/domain/entity"
	"refuge/internal/domain/repository"
	"refuge/internal/live"

	gcfirestore "cloud.google.com/go/firestore"
)

type profileRepository struct {
	client *gcfirestore.Client
}

// NewProfileRepository returns the user profile collection of client.
func NewProfileRepository(client *gcfirestore.Client) repository.ProfileRepository {
	return &profileRepository{client: client}
}

func (repo *profileRepository) Watch(ctx context.Context, uid string) *live.Feed[*entity.UserProfile] {
	return watchDocument(ctx, repo.client.Collection(usersCollection).Doc(uid), "watch profile "+uid, decodeProfile,
		func() (*entity.UserProfile, bool) { return nil, true })
}

func (repo *profileRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	if _, err := repo.client.Collection(usersCollection).Doc(profile.UID).Set(ctx, toProfileModel(profile)); err != nil {
		return backingError("create profile "+profile.UID, err)
	}

	return nil
}
