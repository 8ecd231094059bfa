package service

import (
	"context"

	"refuge/internal/domain/entity"
)

// ImageEncoder turns a captured photograph into a size-bounded inline image.
type ImageEncoder interface {
	// Encode compresses raw on a best-effort basis and returns it as a data URI.
	// It fails with ErrImageTooLarge when the result still exceeds the ceiling.
	Encode(ctx context.Context, raw []byte) (entity.EncodedImage, error)
}
