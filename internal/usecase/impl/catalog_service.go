// Package impl contains the application-specific business rules implementations.
package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"unicode/utf8"

	"refuge/config"
	deliverycontext "refuge/internal/delivery/context"
	"refuge/internal/domain/entity"
	domainerrors "refuge/internal/domain/errors"
	"refuge/internal/domain/repository"
	"refuge/internal/domain/service"
	"refuge/internal/live"
	"refuge/internal/usecase"
	"refuge/internal/util"
	"refuge/internal/validator"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

const (
	// documentStore names the document store in backing service errors.
	documentStore = "store"

	// defaultRefugeName is listed when the shelter profile carries no name.
	defaultRefugeName = "Refuge"

	minDescriptionLength = 20
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	animals          repository.AnimalRepository
	profiles         repository.ProfileRepository
	identity         service.IdentityProvider
	encoder          service.ImageEncoder
	qrCode           service.QRCodeService
	favorites        usecase.FavoritesUsecase
	validate         *validator.Validator
	maxEncodedLength int
	logger           *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	animals repository.AnimalRepository,
	profiles repository.ProfileRepository,
	identity service.IdentityProvider,
	encoder service.ImageEncoder,
	qrCode service.QRCodeService,
	favorites usecase.FavoritesUsecase,
	validate *validator.Validator,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	maxEncodedLength := entity.MaxEncodedImageLength
	if cfg.Media != nil && cfg.Media.MaxEncodedLength > 0 {
		maxEncodedLength = cfg.Media.MaxEncodedLength
	}

	return &catalogService{
		animals:          animals,
		profiles:         profiles,
		identity:         identity,
		encoder:          encoder,
		qrCode:           qrCode,
		favorites:        favorites,
		validate:         validate,
		maxEncodedLength: maxEncodedLength,
		logger:           logger,
	}
}

// AvailableAnimals streams every animal open for adoption.
func (srv *catalogService) AvailableAnimals(ctx context.Context) *live.Feed[[]*entity.Animal] {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Watching available animals")

	return srv.animals.Watch(ctx, repository.Where(repository.AnimalFieldAvailable, true))
}

// AnimalByID streams one animal.
func (srv *catalogService) AnimalByID(ctx context.Context, id string) *live.Feed[*entity.Animal] {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Watching animal", "animalID", id)

	return srv.animals.WatchByID(ctx, id)
}

// AnimalsByShelter streams every animal listed by shelterID.
func (srv *catalogService) AnimalsByShelter(ctx context.Context, shelterID string) *live.Feed[[]*entity.Animal] {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Watching shelter animals", "refugeID", shelterID)

	return srv.animals.Watch(ctx, repository.Where(repository.AnimalFieldRefugeID, shelterID))
}

// ShelterAnimals streams the animals of the signed-in principal.
func (srv *catalogService) ShelterAnimals(ctx context.Context) (*live.Feed[[]*entity.Animal], error) {
	principal, err := currentPrincipal(srv.identity)
	if err != nil {
		return nil, err
	}

	return srv.AnimalsByShelter(ctx, principal.UID), nil
}

// NearbyAnimals streams available animals with a location within radiusMeters of center.
func (srv *catalogService) NearbyAnimals(ctx context.Context, center orb.Point, radiusMeters float64) *live.Feed[[]*usecase.NearbyAnimal] {
	return live.Map(ctx, srv.AvailableAnimals(ctx), func(animals []*entity.Animal) []*usecase.NearbyAnimal {
		nearby := make([]*usecase.NearbyAnimal, 0, len(animals))
		for _, animal := range animals {
			if animal.Location == nil {
				continue
			}
			distance := geo.Distance(center, *animal.Location)
			if distance > radiusMeters {
				continue
			}
			nearby = append(nearby, &usecase.NearbyAnimal{
				Animal:         animal,
				DistanceMeters: distance,
				Distance:       util.FormatDistance(distance),
				AgeLabel:       entity.AgeLabel(animal.Age),
			})
		}
		slices.SortStableFunc(nearby, func(a, b *usecase.NearbyAnimal) int {
			return cmp.Compare(a.DistanceMeters, b.DistanceMeters)
		})

		return nearby
	})
}

// FavoriteAnimals streams the available animals whose identifiers were in the
// favorites list when the view was opened.
func (srv *catalogService) FavoriteAnimals(ctx context.Context) (*live.Feed[[]*entity.Animal], error) {
	ids, err := srv.favorites.List(ctx)
	if err != nil {
		return nil, err
	}

	favorites := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		favorites[id] = struct{}{}
	}

	return live.Map(ctx, srv.AvailableAnimals(ctx), func(animals []*entity.Animal) []*entity.Animal {
		return slices.DeleteFunc(slices.Clone(animals), func(a *entity.Animal) bool {
			_, ok := favorites[a.ID]

			return !ok
		})
	}), nil
}

// CreateAnimal lists a new available animal for the signed-in shelter.
func (srv *catalogService) CreateAnimal(ctx context.Context, input *usecase.CreateAnimalInput) (string, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if input == nil {
		return "", domainerrors.ErrValidationFailed.WithDetails("animal is required")
	}
	if err := srv.validate.Struct(input); err != nil {
		return "", err
	}
	if input.Image == "" && len(input.Photo) == 0 {
		return "", domainerrors.ErrValidationFailed.WithDetails("image is required")
	}
	if input.Image != "" {
		if err := srv.checkImage(input.Image); err != nil {
			return "", err
		}
	}

	principal, err := currentPrincipal(srv.identity)
	if err != nil {
		return "", err
	}

	image := input.Image
	if image == "" {
		image, err = srv.encoder.Encode(ctx, input.Photo)
		if err != nil {
			return "", err
		}
		if err := srv.checkImage(image); err != nil {
			return "", err
		}
	}

	profile, err := live.First(ctx, srv.profiles.Watch(ctx, principal.UID))
	if err != nil {
		return "", asBackingError(documentStore, "read profile", err)
	}
	if profile.HasRole(entity.RoleUser) {
		return "", domainerrors.ErrValidationFailed.WithDetails("only shelters can list animals")
	}

	animal := &entity.Animal{
		Name:        input.Name,
		Type:        input.Type,
		Breed:       input.Breed,
		Age:         input.Age,
		Description: input.Description,
		Image:       image,
		RefugeID:    principal.UID,
		RefugeName:  defaultRefugeName,
		Location:    input.Location,
		Available:   true,
	}
	if profile != nil {
		if profile.RefugeName != "" {
			animal.RefugeName = profile.RefugeName
		}
		animal.RefugeAddress = profile.RefugeAddress
		animal.RefugePhone = profile.RefugePhone
	}

	id, err := srv.animals.Create(ctx, animal)
	if err != nil {
		return "", asBackingError(documentStore, "create animal", err)
	}

	logger.Info("Animal created",
		"animalID", id,
		"refugeID", principal.UID,
		"imageSize", util.FormatBytes(int64(image.Len())),
	)

	return id, nil
}

// UpdateAnimal applies a partial update to an animal of the signed-in shelter.
func (srv *catalogService) UpdateAnimal(ctx context.Context, id string, update *entity.AnimalUpdate) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if update == nil || update.IsEmpty() {
		return nil
	}
	if err := srv.checkUpdate(update); err != nil {
		return err
	}

	if _, err := srv.ownedAnimal(ctx, id); err != nil {
		return err
	}

	if err := srv.animals.Update(ctx, id, update); err != nil {
		return animalError(err, "update animal")
	}

	logger.Info("Animal updated", "animalID", id)

	return nil
}

// ToggleAvailability flips the availability of an animal of the signed-in
// shelter and returns the new value.
func (srv *catalogService) ToggleAvailability(ctx context.Context, id string) (bool, error) {
	animal, err := srv.ownedAnimal(ctx, id)
	if err != nil {
		return false, err
	}

	available := !animal.Available
	if err := srv.animals.Update(ctx, id, &entity.AnimalUpdate{Available: &available}); err != nil {
		return false, animalError(err, "update animal")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).
		Info("Animal availability changed", "animalID", id, "available", available)

	return available, nil
}

// DeleteAnimal removes an animal of the signed-in shelter. The image is stored
// inline, so nothing else is cleaned up.
func (srv *catalogService) DeleteAnimal(ctx context.Context, id string) error {
	if _, err := srv.ownedAnimal(ctx, id); err != nil {
		return err
	}

	if err := srv.animals.Delete(ctx, id); err != nil {
		return animalError(err, "delete animal")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Animal deleted", "animalID", id)

	return nil
}

// ShareCode renders the QR code of an existing animal's deep link.
func (srv *catalogService) ShareCode(ctx context.Context, id string) ([]byte, error) {
	if id == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("animal id is required")
	}

	if _, err := srv.animals.FindByID(ctx, id); err != nil {
		return nil, animalError(err, "find animal")
	}

	png, err := srv.qrCode.GenerateAnimalQR(id)
	if err != nil {
		return nil, asBackingError("qrcode", "generate share code", err)
	}

	return png, nil
}

// ownedAnimal reads the animal and checks it belongs to the signed-in principal.
func (srv *catalogService) ownedAnimal(ctx context.Context, id string) (*entity.Animal, error) {
	if id == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("animal id is required")
	}

	principal, err := currentPrincipal(srv.identity)
	if err != nil {
		return nil, err
	}

	animal, err := srv.animals.FindByID(ctx, id)
	if err != nil {
		return nil, animalError(err, "find animal")
	}
	if !animal.OwnedBy(principal.UID) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("animal belongs to another shelter")
	}

	return animal, nil
}

func (srv *catalogService) checkImage(image entity.EncodedImage) error {
	if image.Fits(srv.maxEncodedLength) {
		return nil
	}

	return domainerrors.ErrImageTooLarge.WithDetails(
		util.FormatBytes(int64(image.Len())) + " encoded, limit " + util.FormatBytes(int64(srv.maxEncodedLength)),
	)
}

// checkUpdate applies the creation form rules to the fields an update sets.
func (srv *catalogService) checkUpdate(update *entity.AnimalUpdate) error {
	switch {
	case update.Name != nil && *update.Name == "":
		return domainerrors.ErrValidationFailed.WithDetails("name is required")
	case update.Type != nil && *update.Type == "":
		return domainerrors.ErrValidationFailed.WithDetails("type is required")
	case update.Breed != nil && *update.Breed == "":
		return domainerrors.ErrValidationFailed.WithDetails("breed is required")
	case update.Age != nil && *update.Age < 0:
		return domainerrors.ErrValidationFailed.WithDetails("age must be at least 0")
	case update.Description != nil && utf8.RuneCountInString(*update.Description) < minDescriptionLength:
		return domainerrors.ErrValidationFailed.WithDetails("description must be at least 20 long")
	case update.Image != nil:
		if *update.Image == "" {
			return domainerrors.ErrValidationFailed.WithDetails("image is required")
		}

		return srv.checkImage(*update.Image)
	}

	return nil
}

// currentPrincipal returns the signed-in principal or NotFound when anonymous.
func currentPrincipal(identity service.IdentityProvider) (*entity.Principal, error) {
	principal := identity.Current()
	if principal == nil {
		return nil, domainerrors.ErrNotFound.WithDetails("no signed-in principal")
	}

	return principal, nil
}

func animalError(err error, op string) error {
	if errors.Is(err, repository.ErrAnimalNotFound) {
		return domainerrors.ErrNotFound.WithDetails("animal not found")
	}

	return asBackingError(documentStore, op, err)
}
