package auth

import (
	"context"
	"log/slog"
	"strings"

	"refuge/internal/domain/entity"
	domainerrors "refuge/internal/domain/errors"
	"refuge/internal/domain/service"
	"refuge/internal/errors"
	"refuge/internal/live"

	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// accountAdmin is the part of the Firebase admin client the provider uses.
type accountAdmin interface {
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// passwordSession exchanges credentials for an ID token.
type passwordSession interface {
	VerifyPassword(ctx context.Context, email, password string) (*signInResult, error)
}

type signInResult struct {
	UID     string
	Email   string
	IDToken string
}

// identityToolkitSession signs in through the Identity Toolkit REST API, the
// same endpoint the client SDKs use.
type identityToolkitSession struct {
	relyingParty *identitytoolkit.RelyingpartyService
}

func newIdentityToolkitSession(ctx context.Context, apiKey string) (*identityToolkitSession, error) {
	svc, err := identitytoolkit.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create identity toolkit client")
	}

	return &identityToolkitSession{relyingParty: svc.Relyingparty}, nil
}

func (s *identityToolkitSession) VerifyPassword(ctx context.Context, email, password string) (*signInResult, error) {
	resp, err := s.relyingParty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	return &signInResult{UID: resp.LocalId, Email: resp.Email, IDToken: resp.IdToken}, nil
}

// firebaseProvider authenticates against Firebase Authentication.
type firebaseProvider struct {
	admin   accountAdmin
	session passwordSession
	current *live.Cell[*entity.Principal]
	logger  *slog.Logger
}

// NewFirebaseProvider creates an identity provider on the Firebase project.
func NewFirebaseProvider(ctx context.Context, admin *auth.Client, apiKey string, logger *slog.Logger) (service.IdentityProvider, error) {
	if apiKey == "" {
		return nil, errors.New("firebase.apiKey is required for password sign-in")
	}

	session, err := newIdentityToolkitSession(ctx, apiKey)
	if err != nil {
		return nil, err
	}

	return newFirebaseProvider(admin, session, logger), nil
}

func newFirebaseProvider(admin accountAdmin, session passwordSession, logger *slog.Logger) *firebaseProvider {
	return &firebaseProvider{
		admin:   admin,
		session: session,
		current: live.NewCell[*entity.Principal](nil),
		logger:  logger.With(slog.String("component", "identity"), slog.String("driver", "firebase")),
	}
}

func (p *firebaseProvider) SignUp(ctx context.Context, email, password string) (*entity.Principal, error) {
	user, err := p.admin.CreateUser(ctx, (&auth.UserToCreate{}).Email(email).Password(password))
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			err = errors.Join(service.ErrEmailInUse, err)
		}

		return nil, domainerrors.NewBackingServiceError(service.IdentityService, "sign up", err)
	}
	p.logger.InfoContext(ctx, "account created", slog.String("uid", user.UID))

	return p.SignIn(ctx, email, password)
}

func (p *firebaseProvider) SignIn(ctx context.Context, email, password string) (*entity.Principal, error) {
	result, err := p.session.VerifyPassword(ctx, email, password)
	if err != nil {
		if isCredentialError(err) {
			err = errors.Join(service.ErrInvalidCredentials, err)
		}

		return nil, domainerrors.NewBackingServiceError(service.IdentityService, "sign in", err)
	}

	expiresAt, err := tokenExpiry(result.IDToken)
	if err != nil {
		return nil, domainerrors.NewBackingServiceError(service.IdentityService, "sign in", err)
	}

	principal := &entity.Principal{
		UID:       result.UID,
		Email:     result.Email,
		IDToken:   result.IDToken,
		ExpiresAt: expiresAt,
	}
	p.current.Set(principal)
	p.logger.InfoContext(ctx, "signed in", slog.String("uid", principal.UID))

	return principal, nil
}

func (p *firebaseProvider) SignOut(ctx context.Context) error {
	if p.current.Get() == nil {
		return nil
	}

	p.current.Set(nil)
	p.logger.InfoContext(ctx, "signed out")

	return nil
}

func (p *firebaseProvider) Current() *entity.Principal {
	return p.current.Get()
}

func (p *firebaseProvider) VerifyToken(ctx context.Context, idToken string) (string, error) {
	token, err := p.admin.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", domainerrors.NewBackingServiceError(service.IdentityService, "verify token",
			errors.Join(service.ErrInvalidCredentials, err))
	}

	return token.UID, nil
}

func (p *firebaseProvider) Watch(ctx context.Context) *live.Feed[*entity.Principal] {
	return p.current.Subscribe(ctx)
}

// isCredentialError reports whether the Identity Toolkit rejected the credentials
// rather than failing.
func isCredentialError(err error) bool {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return false
	}

	switch {
	case strings.Contains(apiErr.Message, "INVALID_PASSWORD"),
		strings.Contains(apiErr.Message, "EMAIL_NOT_FOUND"),
		strings.Contains(apiErr.Message, "INVALID_LOGIN_CREDENTIALS"),
		strings.Contains(apiErr.Message, "USER_DISABLED"):
		return true
	default:
		return false
	}
}
