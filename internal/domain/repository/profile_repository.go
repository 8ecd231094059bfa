package repository

import (
	"context"

	"refuge/internal/domain/entity"
	"refuge/internal/live"
)

// ProfileRepository defines the operations on user profile documents, keyed by identity subject.
type ProfileRepository interface {
	// Watch streams the profile of uid, emitting nil while the document does not exist.
	Watch(ctx context.Context, uid string) *live.Feed[*entity.UserProfile]

	// Create writes the profile document under profile.UID.
	Create(ctx context.Context, profile *entity.UserProfile) error
}
