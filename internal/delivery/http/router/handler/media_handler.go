package handler

import (
	"io"
	"net/http"

	"refuge/internal/delivery/http/response"
	"refuge/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// photoField is the multipart field carrying the picture.
const photoField = "photo"

// MediaHandler turns uploaded pictures into inline images.
type MediaHandler struct {
	encoder service.ImageEncoder
}

// NewMediaHandler is the constructor for MediaHandler, injected by Fx.
func NewMediaHandler(encoder service.ImageEncoder) *MediaHandler {
	return &MediaHandler{encoder: encoder}
}

// EncodeOutput is the compressed picture ready to be stored on an animal.
type EncodeOutput struct {
	Image  string `json:"image"`
	Length int    `json:"length"`
}

// Encode accepts the picture either as a multipart "photo" field or as the
// raw request body.
func (h *MediaHandler) Encode(c echo.Context) error {
	raw, err := readPhoto(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Unable to read the picture")
	}
	if len(raw) == 0 {
		return response.BadRequest(c, "INVALID_INPUT", "The picture is empty")
	}

	image, err := h.encoder.Encode(c.Request().Context(), raw)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &EncodeOutput{Image: string(image), Length: image.Len()}, "")
}

func readPhoto(c echo.Context) ([]byte, error) {
	if file, err := c.FormFile(photoField); err == nil {
		src, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer src.Close()

		return io.ReadAll(src)
	}

	return io.ReadAll(c.Request().Body)
}
