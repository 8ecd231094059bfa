package handler

import (
	"net/http"
	"strconv"

	"refuge/internal/delivery/http/response"
	"refuge/internal/domain/entity"
	"refuge/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// defaultNearbyRadius is used when the radius query parameter is omitted.
const defaultNearbyRadius = 10_000.0

// CatalogHandler serves the animal listings and the shelter's own listings.
type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// StreamAvailable streams the adoptable animals, newest first.
func (h *CatalogHandler) StreamAvailable(c echo.Context) error {
	return response.Stream(c, h.uc.AvailableAnimals(c.Request().Context()))
}

// StreamAnimal streams one animal. Nothing is sent while it does not exist.
func (h *CatalogHandler) StreamAnimal(c echo.Context) error {
	return response.Stream(c, h.uc.AnimalByID(c.Request().Context(), c.Param("id")))
}

// StreamByShelter streams every animal a shelter listed.
func (h *CatalogHandler) StreamByShelter(c echo.Context) error {
	return response.Stream(c, h.uc.AnimalsByShelter(c.Request().Context(), c.Param("id")))
}

// StreamNearby streams the adoptable animals within radius meters of lat/lng.
func (h *CatalogHandler) StreamNearby(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "lat must be a number")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "lng must be a number")
	}
	radius := defaultNearbyRadius
	if raw := c.QueryParam("radius"); raw != "" {
		if radius, err = strconv.ParseFloat(raw, 64); err != nil || radius <= 0 {
			return response.BadRequest(c, "INVALID_INPUT", "radius must be a positive number of meters")
		}
	}

	return response.Stream(c, h.uc.NearbyAnimals(c.Request().Context(), orb.Point{lng, lat}, radius))
}

// ShareCode renders the animal's deep link as a PNG QR code.
func (h *CatalogHandler) ShareCode(c echo.Context) error {
	png, err := h.uc.ShareCode(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// StreamMine streams the signed-in shelter's animals.
func (h *CatalogHandler) StreamMine(c echo.Context) error {
	feed, err := h.uc.ShelterAnimals(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Stream(c, feed)
}

// Create lists a new animal for the signed-in shelter.
func (h *CatalogHandler) Create(c echo.Context) error {
	var input *usecase.CreateAnimalInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid animal input")
	}

	id, err := h.uc.CreateAnimal(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": id}, "Animal listed successfully")
}

// Update applies a partial update to one of the shelter's animals.
func (h *CatalogHandler) Update(c echo.Context) error {
	var update *entity.AnimalUpdate
	if err := c.Bind(&update); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid animal update")
	}

	if err := h.uc.UpdateAnimal(c.Request().Context(), c.Param("id"), update); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Animal updated successfully")
}

// ToggleAvailability flips the adoptable flag and returns the new value.
func (h *CatalogHandler) ToggleAvailability(c echo.Context) error {
	available, err := h.uc.ToggleAvailability(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"available": available}, "")
}

// Delete removes one of the shelter's animals.
func (h *CatalogHandler) Delete(c echo.Context) error {
	if err := h.uc.DeleteAnimal(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// StreamFavorites streams the adoptable animals the device marked as favorite.
func (h *CatalogHandler) StreamFavorites(c echo.Context) error {
	feed, err := h.uc.FavoriteAnimals(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Stream(c, feed)
}
