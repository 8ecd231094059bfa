package usecase

import (
	"context"

	"refuge/internal/domain/entity"
	"refuge/internal/live"
)

// SessionUsecase binds the identity provider's principal to its profile document.
type SessionUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.Principal, error)
	SignIn(ctx context.Context, input *SignInInput) (*entity.Principal, error)
	SignOut(ctx context.Context) error

	// CurrentPrincipal returns the signed-in principal, or nil when anonymous.
	CurrentPrincipal() *entity.Principal

	// CurrentProfile returns the profile of the signed-in principal, or nil
	// when anonymous or while the profile document is not yet written.
	CurrentProfile() *entity.UserProfile

	// Principal streams the signed-in principal, nil meaning anonymous.
	Principal(ctx context.Context) *live.Feed[*entity.Principal]

	// Profile streams the profile of the signed-in principal. It emits nil when
	// anonymous and is re-derived from scratch on every principal change.
	// Values are coalesced: a subscriber that reads slowly across a quick
	// sign-out and sign-in may miss the intermediate nil, but never receives
	// a profile that belongs to an earlier principal after a later one.
	Profile(ctx context.Context) *live.Feed[*entity.UserProfile]

	IsShelter(ctx context.Context) *live.Feed[bool]
	IsUser(ctx context.Context) *live.Feed[bool]

	// Close stops following the identity provider.
	Close()
}

// --- Input DTOs ---

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	Email         string      `json:"email" validate:"required,email"`
	Password      string      `json:"password" validate:"required,min=6"`
	Role          entity.Role `json:"role" validate:"required,role"`
	DisplayName   string      `json:"displayName" validate:"required_if=Role user"`
	RefugeName    string      `json:"refugeName" validate:"required_if=Role refuge"`
	RefugeAddress string      `json:"refugeAddress"`
	RefugePhone   string      `json:"refugePhone"`
}

// SignInInput defines the credentials of an existing account.
type SignInInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
