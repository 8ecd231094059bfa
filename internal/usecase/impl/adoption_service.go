package impl

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"refuge/config"
	deliverycontext "refuge/internal/delivery/context"
	"refuge/internal/domain/entity"
	domainerrors "refuge/internal/domain/errors"
	"refuge/internal/domain/repository"
	"refuge/internal/domain/service"
	"refuge/internal/live"
	"refuge/internal/usecase"
	"refuge/internal/validator"
)

// defaultMinMessageLength applies when the configuration sets no minimum.
const defaultMinMessageLength = 10

// adoptionService implements the AdoptionUsecase interface.
type adoptionService struct {
	requests         repository.AdoptionRequestRepository
	animals          repository.AnimalRepository
	identity         service.IdentityProvider
	notifier         service.NotificationService
	validate         *validator.Validator
	minMessageLength int
	logger           *slog.Logger
}

// NewAdoptionService is the constructor for adoptionService.
func NewAdoptionService(
	requests repository.AdoptionRequestRepository,
	animals repository.AnimalRepository,
	identity service.IdentityProvider,
	notifier service.NotificationService,
	validate *validator.Validator,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AdoptionUsecase {
	minMessageLength := defaultMinMessageLength
	if cfg.Adoption != nil && cfg.Adoption.MinMessageLength > 0 {
		minMessageLength = cfg.Adoption.MinMessageLength
	}

	return &adoptionService{
		requests:         requests,
		animals:          animals,
		identity:         identity,
		notifier:         notifier,
		validate:         validate,
		minMessageLength: minMessageLength,
		logger:           logger,
	}
}

// Submit creates a pending adoption request. The message is checked before any
// backing service is called; animal name and shelter are copied from the animal
// as it is now. The minimum length counts characters (runes), untrimmed, so a
// message of emoji needs as many emoji as the minimum, not half as many as a
// UTF-16 length would allow.
func (srv *adoptionService) Submit(ctx context.Context, requester *entity.Principal, input *usecase.SubmitAdoptionInput) (string, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if input == nil {
		return "", domainerrors.ErrValidationFailed.WithDetails("adoption request is required")
	}
	if utf8.RuneCountInString(input.Message) < srv.minMessageLength {
		return "", domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("message must be at least %d characters", srv.minMessageLength),
		)
	}
	if err := srv.validate.Struct(input); err != nil {
		return "", err
	}
	if requester == nil || requester.UID == "" {
		return "", domainerrors.ErrNotFound.WithDetails("no requesting principal")
	}

	animal, err := srv.animals.FindByID(ctx, input.AnimalID)
	if err != nil {
		return "", animalError(err, "find animal")
	}

	if input.Status != "" && input.Status != entity.StatusPending {
		logger.Warn("Ignoring requested adoption status", "status", input.Status, "animalID", animal.ID)
	}

	request := &entity.AdoptionRequest{
		AnimalID:   animal.ID,
		AnimalName: animal.Name,
		UserID:     requester.UID,
		UserEmail:  requester.Email,
		RefugeID:   animal.RefugeID,
		Message:    input.Message,
		Status:     entity.StatusPending,
	}

	id, err := srv.requests.Create(ctx, request)
	if err != nil {
		return "", asBackingError(documentStore, "create adoption request", err)
	}
	request.ID = id

	logger.Info("Adoption request submitted",
		"requestID", id,
		"animalID", animal.ID,
		"refugeID", animal.RefugeID,
		"userID", requester.UID,
	)

	// Best effort: the request is already stored.
	if err := srv.notifier.NotifyAdoptionRequested(ctx, request); err != nil {
		logger.Warn("Failed to notify adoption request", "requestID", id, "error", err)
	}

	return id, nil
}

// RequestsByUser streams every request sent by userID.
func (srv *adoptionService) RequestsByUser(ctx context.Context, userID string) *live.Feed[[]*entity.AdoptionRequest] {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Watching user requests", "userID", userID)

	return srv.requests.Watch(ctx, repository.Where(repository.RequestFieldUserID, userID))
}

// RequestsByShelter streams every request received by shelterID.
func (srv *adoptionService) RequestsByShelter(ctx context.Context, shelterID string) *live.Feed[[]*entity.AdoptionRequest] {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Watching shelter requests", "refugeID", shelterID)

	return srv.requests.Watch(ctx, repository.Where(repository.RequestFieldRefugeID, shelterID))
}

// MyRequests streams the requests of the signed-in principal.
func (srv *adoptionService) MyRequests(ctx context.Context) (*live.Feed[[]*entity.AdoptionRequest], error) {
	principal, err := currentPrincipal(srv.identity)
	if err != nil {
		return nil, err
	}

	return srv.RequestsByUser(ctx, principal.UID), nil
}

// ShelterRequests streams the requests addressed to the signed-in principal.
func (srv *adoptionService) ShelterRequests(ctx context.Context) (*live.Feed[[]*entity.AdoptionRequest], error) {
	principal, err := currentPrincipal(srv.identity)
	if err != nil {
		return nil, err
	}

	return srv.RequestsByShelter(ctx, principal.UID), nil
}
