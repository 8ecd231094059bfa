package handler

import (
	"net/http"

	"refuge/internal/delivery/http/middleware"
	"refuge/internal/delivery/http/response"
	"refuge/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdoptionHandler serves adoption request submission and the request views.
type AdoptionHandler struct {
	uc usecase.AdoptionUsecase
}

// NewAdoptionHandler is the constructor for AdoptionHandler, injected by Fx.
func NewAdoptionHandler(uc usecase.AdoptionUsecase) *AdoptionHandler {
	return &AdoptionHandler{uc: uc}
}

// Submit files an adoption request on behalf of the authenticated principal.
func (h *AdoptionHandler) Submit(c echo.Context) error {
	var input *usecase.SubmitAdoptionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid adoption request")
	}

	id, err := h.uc.Submit(c.Request().Context(), middleware.Principal(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": id}, "Adoption request sent")
}

// StreamMine streams the signed-in user's requests.
func (h *AdoptionHandler) StreamMine(c echo.Context) error {
	feed, err := h.uc.MyRequests(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Stream(c, feed)
}

// StreamReceived streams the requests addressed to the signed-in shelter.
func (h *AdoptionHandler) StreamReceived(c echo.Context) error {
	feed, err := h.uc.ShelterRequests(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Stream(c, feed)
}

func (h *AdoptionHandler) StreamByUser(c echo.Context) error {
	return response.Stream(c, h.uc.RequestsByUser(c.Request().Context(), c.Param("id")))
}

func (h *AdoptionHandler) StreamByShelter(c echo.Context) error {
	return response.Stream(c, h.uc.RequestsByShelter(c.Request().Context(), c.Param("id")))
}
