package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"

	"refuge/config"
	deliverycontext "refuge/internal/delivery/context"
	domainerrors "refuge/internal/domain/errors"
	"refuge/internal/domain/repository"
	"refuge/internal/usecase"
)

// favoritesStore names the local persistence in backing service errors.
const favoritesStore = "favorites"

// favoritesService implements the FavoritesUsecase interface on top of one
// JSON-encoded list stored under a single key.
type favoritesService struct {
	store  repository.KeyValueStore
	key    string
	logger *slog.Logger
}

// NewFavoritesService is the constructor for favoritesService.
func NewFavoritesService(
	store repository.KeyValueStore,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.FavoritesUsecase {
	return &favoritesService{
		store:  store,
		key:    cfg.Favorites.Key,
		logger: logger,
	}
}

// List returns the favorite animal identifiers in insertion order.
func (srv *favoritesService) List(ctx context.Context) ([]string, error) {
	return srv.read(ctx)
}

// Add appends animalID unless it is already present.
func (srv *favoritesService) Add(ctx context.Context, animalID string) error {
	if err := requireAnimalID(animalID); err != nil {
		return err
	}

	ids, err := srv.read(ctx)
	if err != nil {
		return err
	}
	if slices.Contains(ids, animalID) {
		return nil
	}

	return srv.write(ctx, append(ids, animalID))
}

// Remove drops animalID. Removing an absent identifier writes nothing.
func (srv *favoritesService) Remove(ctx context.Context, animalID string) error {
	if err := requireAnimalID(animalID); err != nil {
		return err
	}

	ids, err := srv.read(ctx)
	if err != nil {
		return err
	}
	if !slices.Contains(ids, animalID) {
		return nil
	}

	return srv.write(ctx, slices.DeleteFunc(ids, func(id string) bool { return id == animalID }))
}

// Contains reports whether animalID is a favorite.
func (srv *favoritesService) Contains(ctx context.Context, animalID string) (bool, error) {
	ids, err := srv.read(ctx)
	if err != nil {
		return false, err
	}

	return slices.Contains(ids, animalID), nil
}

// Toggle removes animalID when present and adds it otherwise.
func (srv *favoritesService) Toggle(ctx context.Context, animalID string) (bool, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	present, err := srv.Contains(ctx, animalID)
	if err != nil {
		return false, err
	}

	if present {
		if err := srv.Remove(ctx, animalID); err != nil {
			return false, err
		}
		logger.Debug("Removed favorite", "animalID", animalID)

		return false, nil
	}

	if err := srv.Add(ctx, animalID); err != nil {
		return false, err
	}
	logger.Debug("Added favorite", "animalID", animalID)

	return true, nil
}

func (srv *favoritesService) read(ctx context.Context) ([]string, error) {
	raw, ok, err := srv.store.Get(ctx, srv.key)
	if err != nil {
		return nil, asBackingError(favoritesStore, "get", err)
	}
	if !ok || raw == "" {
		return []string{}, nil
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, domainerrors.NewBackingServiceError(favoritesStore, "decode", err)
	}
	if ids == nil {
		ids = []string{}
	}

	return ids, nil
}

func (srv *favoritesService) write(ctx context.Context, ids []string) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return domainerrors.NewBackingServiceError(favoritesStore, "encode", err)
	}
	if err := srv.store.Set(ctx, srv.key, string(raw)); err != nil {
		return asBackingError(favoritesStore, "set", err)
	}

	return nil
}

func requireAnimalID(animalID string) error {
	if animalID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("animal id is required")
	}

	return nil
}
