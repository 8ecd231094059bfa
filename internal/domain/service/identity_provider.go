// Package service defines interfaces for core, stateless domain logic and the
// external collaborators the application consumes.
package service

import (
	"context"

	"refuge/internal/domain/entity"
	"refuge/internal/live"

	"github.com/pkg/errors"
)

// Identity provider failures. Providers return them wrapped in a
// BackingServiceError; match them with errors.Is.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailInUse         = errors.New("email already in use")
)

// IdentityService names the identity provider in backing service errors.
const IdentityService = "identity"

// IdentityProvider is the authentication backend. It owns the current principal.
type IdentityProvider interface {
	// SignUp creates an account and signs it in.
	SignUp(ctx context.Context, email, password string) (*entity.Principal, error)

	// SignIn authenticates an existing account.
	SignIn(ctx context.Context, email, password string) (*entity.Principal, error)

	// SignOut forgets the current principal.
	SignOut(ctx context.Context) error

	// Current returns the signed-in principal, or nil when anonymous.
	Current() *entity.Principal

	// VerifyToken checks an ID token issued by this provider and returns its subject.
	VerifyToken(ctx context.Context, idToken string) (string, error)

	// Watch streams the current principal, nil meaning anonymous, starting with
	// the present state.
	Watch(ctx context.Context) *live.Feed[*entity.Principal]
}
