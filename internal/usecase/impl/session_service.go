package impl

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	deliverycontext "refuge/internal/delivery/context"
	"refuge/internal/domain/entity"
	"refuge/internal/domain/repository"
	"refuge/internal/domain/service"
	"refuge/internal/live"
	"refuge/internal/usecase"
	"refuge/internal/validator"
)

// sessionService implements the SessionUsecase interface. It follows the
// identity provider and keeps two owned cells: the principal and the profile
// derived from it. Every principal change bumps the generation, resets the
// profile to nil and restarts the profile watch; emissions of an older
// generation are dropped.
type sessionService struct {
	identity service.IdentityProvider
	profiles repository.ProfileRepository
	validate *validator.Validator
	logger   *slog.Logger

	principal *live.Cell[*entity.Principal]
	profile   *live.Cell[*entity.UserProfile]

	mu         sync.Mutex // serialises bind
	boundUID   string
	generation atomic.Uint64
	stopWatch  context.CancelFunc

	ctx       context.Context
	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
}

// NewSessionService is the constructor for sessionService. It binds the
// current principal immediately and follows later changes until Close.
func NewSessionService(
	identity service.IdentityProvider,
	profiles repository.ProfileRepository,
	validate *validator.Validator,
	logger *slog.Logger,
) usecase.SessionUsecase {
	ctx, cancel := context.WithCancel(context.Background())
	srv := &sessionService{
		identity:  identity,
		profiles:  profiles,
		validate:  validate,
		logger:    logger,
		principal: live.NewCell[*entity.Principal](nil),
		profile:   live.NewCell[*entity.UserProfile](nil),
		ctx:       ctx,
		cancel:    cancel,
		done:      make(chan struct{}),
	}

	srv.bind()
	go srv.follow(identity.Watch(ctx))

	return srv
}

// Register creates an account, signs it in and writes its profile document.
func (srv *sessionService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.Principal, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if input == nil {
		return nil, errValidation("registration is required")
	}
	if err := srv.validate.Struct(input); err != nil {
		return nil, err
	}

	principal, err := srv.identity.SignUp(ctx, input.Email, input.Password)
	if err != nil {
		return nil, asBackingError(service.IdentityService, "sign up", err)
	}

	profile := &entity.UserProfile{
		UID:   principal.UID,
		Email: principal.Email,
		Role:  input.Role,
	}
	switch input.Role {
	case entity.RoleRefuge:
		profile.RefugeName = input.RefugeName
		profile.RefugeAddress = input.RefugeAddress
		profile.RefugePhone = input.RefugePhone
	case entity.RoleUser:
		profile.DisplayName = input.DisplayName
	}

	srv.bind()

	if err := srv.profiles.Create(ctx, profile); err != nil {
		logger.Warn("Account created without profile", "uid", principal.UID, "error", err)

		return nil, asBackingError(documentStore, "create profile", err)
	}

	logger.Info("Principal registered", "uid", principal.UID, "role", input.Role)

	return principal, nil
}

// SignIn authenticates an existing account.
func (srv *sessionService) SignIn(ctx context.Context, input *usecase.SignInInput) (*entity.Principal, error) {
	if input == nil {
		return nil, errValidation("credentials are required")
	}
	if err := srv.validate.Struct(input); err != nil {
		return nil, err
	}

	principal, err := srv.identity.SignIn(ctx, input.Email, input.Password)
	if err != nil {
		return nil, asBackingError(service.IdentityService, "sign in", err)
	}
	srv.bind()

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Principal signed in", "uid", principal.UID)

	return principal, nil
}

// SignOut forgets the current principal. The profile view emits nil at once.
func (srv *sessionService) SignOut(ctx context.Context) error {
	if err := srv.identity.SignOut(ctx); err != nil {
		return asBackingError(service.IdentityService, "sign out", err)
	}
	srv.bind()

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Principal signed out")

	return nil
}

func (srv *sessionService) CurrentPrincipal() *entity.Principal {
	return srv.identity.Current()
}

func (srv *sessionService) CurrentProfile() *entity.UserProfile {
	return srv.profile.Get()
}

func (srv *sessionService) Principal(ctx context.Context) *live.Feed[*entity.Principal] {
	return srv.principal.Subscribe(ctx)
}

func (srv *sessionService) Profile(ctx context.Context) *live.Feed[*entity.UserProfile] {
	return srv.profile.Subscribe(ctx)
}

// IsShelter emits false while anonymous or while the profile is not yet written.
func (srv *sessionService) IsShelter(ctx context.Context) *live.Feed[bool] {
	return live.Map(ctx, srv.Profile(ctx), func(p *entity.UserProfile) bool {
		return p.HasRole(entity.RoleRefuge)
	})
}

// IsUser emits false while anonymous or while the profile is not yet written.
func (srv *sessionService) IsUser(ctx context.Context) *live.Feed[bool] {
	return live.Map(ctx, srv.Profile(ctx), func(p *entity.UserProfile) bool {
		return p.HasRole(entity.RoleUser)
	})
}

// Close stops following the identity provider and the profile document.
func (srv *sessionService) Close() {
	srv.closeOnce.Do(func() {
		srv.cancel()
		<-srv.done

		srv.mu.Lock()
		defer srv.mu.Unlock()
		if srv.stopWatch != nil {
			srv.stopWatch()
			srv.stopWatch = nil
		}
	})
}

// follow rebinds on every identity emission. The provider's current value is
// used rather than the emitted one, so a late emission never resurrects a
// principal that has since signed out.
func (srv *sessionService) follow(principals *live.Feed[*entity.Principal]) {
	defer close(srv.done)
	defer principals.Close()

	for {
		select {
		case _, ok := <-principals.Updates():
			if !ok {
				if err := principals.Err(); err != nil {
					srv.logger.Warn("Identity feed ended", "error", err)
				}

				return
			}
			srv.bind()
		case <-srv.ctx.Done():
			return
		}
	}
}

// bind aligns both cells with the identity provider's current principal.
func (srv *sessionService) bind() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.ctx.Err() != nil {
		return
	}

	principal := srv.identity.Current()
	uid := ""
	if principal != nil {
		uid = principal.UID
	}

	if uid == srv.boundUID {
		srv.principal.Set(principal)

		return
	}

	if srv.stopWatch != nil {
		srv.stopWatch()
		srv.stopWatch = nil
	}
	generation := srv.generation.Add(1)
	srv.boundUID = uid
	srv.profile.Set(nil)
	srv.principal.Set(principal)

	srv.logger.Debug("Principal changed", "uid", uid, "generation", generation)

	if principal == nil {
		return
	}

	ctx, stop := context.WithCancel(srv.ctx)
	srv.stopWatch = stop
	go srv.watchProfile(ctx, generation, uid)
}

func (srv *sessionService) watchProfile(ctx context.Context, generation uint64, uid string) {
	profiles := srv.profiles.Watch(ctx, uid)
	defer profiles.Close()

	current := func(*entity.UserProfile) bool {
		return srv.generation.Load() == generation
	}

	for {
		select {
		case profile, ok := <-profiles.Updates():
			if !ok {
				if err := profiles.Err(); err != nil && ctx.Err() == nil {
					srv.logger.Warn("Profile feed ended", "uid", uid, "error", err)
				}

				return
			}
			srv.profile.CompareAndSet(current, profile)
		case <-ctx.Done():
			return
		}
	}
}
