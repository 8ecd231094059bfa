package memory

import (
	"context"

	"refuge/internal/domain/entity"
	"refuge/internal/domain/repository"
	"refuge/internal/errors"
	"refuge/internal/live"
)

type profileRepository struct {
	store *Store
}

// NewProfileRepository returns the profile collection of store.
func NewProfileRepository(store *Store) repository.ProfileRepository {
	return &profileRepository{store: store}
}

func (repo *profileRepository) Watch(ctx context.Context, uid string) *live.Feed[*entity.UserProfile] {
	return watchDocument(ctx, repo.store.profiles, uid, toProfileEntity, func() (*entity.UserProfile, bool) {
		return nil, true
	})
}

func (repo *profileRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	createdAt := profile.CreatedAt
	if createdAt.IsZero() {
		createdAt = repo.store.timestamp()
	}

	repo.store.profiles.insert(profile.UID, profileDoc{
		Email:         profile.Email,
		Role:          profile.Role,
		CreatedAt:     createdAt,
		DisplayName:   profile.DisplayName,
		RefugeName:    profile.RefugeName,
		RefugeAddress: profile.RefugeAddress,
		RefugePhone:   profile.RefugePhone,
	})

	return nil
}
