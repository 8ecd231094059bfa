package handler

import (
	"net/http"

	"refuge/internal/delivery/http/response"
	"refuge/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FavoritesHandler serves the device-local favorites set.
type FavoritesHandler struct {
	uc usecase.FavoritesUsecase
}

// NewFavoritesHandler is the constructor for FavoritesHandler, injected by Fx.
func NewFavoritesHandler(uc usecase.FavoritesUsecase) *FavoritesHandler {
	return &FavoritesHandler{uc: uc}
}

func (h *FavoritesHandler) List(c echo.Context) error {
	ids, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ids, "")
}

func (h *FavoritesHandler) Contains(c echo.Context) error {
	ok, err := h.uc.Contains(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"favorite": ok}, "")
}

func (h *FavoritesHandler) Add(c echo.Context) error {
	if err := h.uc.Add(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *FavoritesHandler) Remove(c echo.Context) error {
	if err := h.uc.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Toggle flips membership and returns whether the animal is now a favorite.
func (h *FavoritesHandler) Toggle(c echo.Context) error {
	ok, err := h.uc.Toggle(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"favorite": ok}, "")
}
