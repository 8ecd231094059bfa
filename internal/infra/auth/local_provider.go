package auth

import (
	"context"
	"crypto/rand"
	"log/slog"
	"strings"
	"sync"
	"time"

	"refuge/internal/domain/entity"
	domainerrors "refuge/internal/domain/errors"
	"refuge/internal/domain/service"
	"refuge/internal/errors"
	"refuge/internal/live"

	"github.com/google/uuid"
)

const localTokenTTL = time.Hour

type localAccount struct {
	uid          string
	email        string
	passwordHash string
}

// localProvider is an in-process identity provider for offline development.
// Accounts live as long as the process.
type localProvider struct {
	mu       sync.Mutex
	accounts map[string]*localAccount // by normalized email

	hasher  service.PasswordHasher
	tokens  *tokenIssuer
	current *live.Cell[*entity.Principal]
	logger  *slog.Logger
}

// NewLocalProvider creates an empty local identity provider.
func NewLocalProvider(hasher service.PasswordHasher, logger *slog.Logger) (service.IdentityProvider, error) {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, errors.Wrap(err, "failed to generate token secret")
	}

	return &localProvider{
		accounts: make(map[string]*localAccount),
		hasher:   hasher,
		tokens:   newTokenIssuer(secret, localTokenTTL),
		current:  live.NewCell[*entity.Principal](nil),
		logger:   logger.With(slog.String("component", "identity"), slog.String("driver", "local")),
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (p *localProvider) SignUp(ctx context.Context, email, password string) (*entity.Principal, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	key := normalizeEmail(email)
	hash, err := p.hasher.Hash(password)
	if err != nil {
		return nil, domainerrors.NewBackingServiceError(service.IdentityService, "sign up", err)
	}

	p.mu.Lock()
	if _, exists := p.accounts[key]; exists {
		p.mu.Unlock()

		return nil, domainerrors.NewBackingServiceError(service.IdentityService, "sign up", service.ErrEmailInUse)
	}
	account := &localAccount{uid: uuid.NewString(), email: key, passwordHash: hash}
	p.accounts[key] = account
	p.mu.Unlock()

	p.logger.InfoContext(ctx, "account created", slog.String("uid", account.uid))

	return p.signIn(ctx, account)
}

func (p *localProvider) SignIn(ctx context.Context, email, password string) (*entity.Principal, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	p.mu.Lock()
	account, ok := p.accounts[normalizeEmail(email)]
	p.mu.Unlock()

	if !ok || !p.hasher.Check(password, account.passwordHash) {
		return nil, domainerrors.NewBackingServiceError(service.IdentityService, "sign in", service.ErrInvalidCredentials)
	}

	return p.signIn(ctx, account)
}

func (p *localProvider) signIn(ctx context.Context, account *localAccount) (*entity.Principal, error) {
	token, expiresAt, err := p.tokens.Issue(account.uid, account.email)
	if err != nil {
		return nil, domainerrors.NewBackingServiceError(service.IdentityService, "sign in", err)
	}

	principal := &entity.Principal{
		UID:       account.uid,
		Email:     account.email,
		IDToken:   token,
		ExpiresAt: expiresAt,
	}
	p.current.Set(principal)
	p.logger.InfoContext(ctx, "signed in", slog.String("uid", account.uid))

	return principal, nil
}

func (p *localProvider) SignOut(ctx context.Context) error {
	if p.current.Get() == nil {
		return nil
	}

	p.current.Set(nil)
	p.logger.InfoContext(ctx, "signed out")

	return nil
}

func (p *localProvider) Current() *entity.Principal {
	return p.current.Get()
}

func (p *localProvider) VerifyToken(_ context.Context, idToken string) (string, error) {
	uid, err := p.tokens.Validate(idToken)
	if err != nil {
		return "", domainerrors.NewBackingServiceError(service.IdentityService, "verify token",
			errors.Join(service.ErrInvalidCredentials, err))
	}

	return uid, nil
}

func (p *localProvider) Watch(ctx context.Context) *live.Feed[*entity.Principal] {
	return p.current.Subscribe(ctx)
}
