// Package media turns captured photographs into size-bounded inline images.
package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"log/slog"
	"math"
	"strings"

	"refuge/config"
	"refuge/internal/domain/entity"
	domainerrors "refuge/internal/domain/errors"
	"refuge/internal/domain/service"
	"refuge/internal/errors"
	"refuge/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/image/draw"

	// Decoders for the formats a camera or gallery may hand over.
	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

const (
	jpegMIME      = "image/jpeg"
	dataURIPrefix = "data:"
	base64Marker  = ";base64,"
)

// Codec compresses raw images and renders them as base64 data URIs.
type Codec struct {
	maxEdge          int
	quality          int
	maxEncodedLength int
	maxPixels        int
	logger           *slog.Logger
}

// NewCodec creates a codec from the media configuration.
func NewCodec(cfg *config.MediaConfig, logger *slog.Logger) *Codec {
	maxPixels := cfg.MaxPixels
	if maxPixels <= 0 {
		maxPixels = config.DefaultMaxPixels
	}

	return &Codec{
		maxEdge:          cfg.MaxEdge,
		quality:          cfg.Quality,
		maxEncodedLength: cfg.MaxEncodedLength,
		maxPixels:        maxPixels,
		logger:           logger.With(slog.String("component", "media")),
	}
}

// NewImageEncoder exposes the codec as the domain image encoder.
func NewImageEncoder(cfg *config.Config, logger *slog.Logger) service.ImageEncoder {
	return NewCodec(cfg.Media, logger)
}

// Encode implements service.ImageEncoder.
func (c *Codec) Encode(ctx context.Context, raw []byte) (entity.EncodedImage, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.WithStack(err)
	}
	if len(raw) == 0 {
		return "", domainerrors.ErrValidationFailed.WithDetails("image is empty")
	}

	payload, mime, err := c.Compress(raw)
	if err != nil {
		// Compression is best effort: keep the original bytes.
		c.logger.WarnContext(ctx, "image compression failed, using original",
			slog.Any("error", err),
			slog.String("size", util.FormatBytes(int64(len(raw)))),
		)
		payload, mime = raw, detectMIME(raw)
	}

	encoded := DataURI(mime, payload)
	if !encoded.Fits(c.maxEncodedLength) {
		return "", domainerrors.ErrImageTooLarge.WithDetails(fmt.Sprintf("%s encoded, limit %s",
			util.FormatBytes(int64(encoded.Len())), util.FormatBytes(int64(c.maxEncodedLength))))
	}

	c.logger.DebugContext(ctx, "image encoded",
		slog.String("mime", mime),
		slog.Int("raw_bytes", len(raw)),
		slog.Int("encoded_length", encoded.Len()),
	)

	return encoded, nil
}

// Compress decodes raw, bounds its longer edge and re-encodes it as JPEG.
// Images whose header announces more than maxPixels are refused before any
// pixel buffer is allocated. Transparent areas are flattened onto white.
func (c *Codec) Compress(raw []byte) ([]byte, string, error) {
	header, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, "", errors.Wrap(err, "decode image header")
	}
	if header.Width <= 0 || header.Height <= 0 {
		return nil, "", errors.Errorf("degenerate %s image %dx%d", format, header.Width, header.Height)
	}
	if int64(header.Width)*int64(header.Height) > int64(c.maxPixels) {
		return nil, "", errors.Errorf("%s image %dx%d exceeds %d pixels",
			format, header.Width, header.Height, c.maxPixels)
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, "", errors.Wrap(err, "decode image")
	}

	bounds := src.Bounds()
	w, h := TargetSize(bounds.Dx(), bounds.Dy(), c.maxEdge)
	if w <= 0 || h <= 0 {
		return nil, "", errors.Errorf("degenerate %s image %dx%d", format, bounds.Dx(), bounds.Dy())
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	if w != bounds.Dx() || h != bounds.Dy() {
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	} else {
		draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Over)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: c.quality}); err != nil {
		return nil, "", errors.Wrap(err, "encode jpeg")
	}

	return buf.Bytes(), jpegMIME, nil
}

// TargetSize returns the dimensions of a w×h image whose longer edge is
// bounded by maxEdge, keeping the aspect ratio. Smaller images are unchanged.
func TargetSize(w, h, maxEdge int) (int, int) {
	longer := max(w, h)
	if maxEdge <= 0 || longer <= maxEdge {
		return w, h
	}

	scale := float64(maxEdge) / float64(longer)
	if w >= h {
		return maxEdge, int(math.Round(float64(h) * scale))
	}
	return int(math.Round(float64(w) * scale)), maxEdge
}

// DataURI renders payload as a base64 data URI of the given media type.
func DataURI(mime string, payload []byte) entity.EncodedImage {
	var sb strings.Builder
	sb.Grow(len(dataURIPrefix) + len(mime) + len(base64Marker) + base64.StdEncoding.EncodedLen(len(payload)))
	sb.WriteString(dataURIPrefix)
	sb.WriteString(mime)
	sb.WriteString(base64Marker)
	sb.WriteString(base64.StdEncoding.EncodeToString(payload))

	return entity.EncodedImage(sb.String())
}

// DecodeDataURI splits an encoded image back into its media type and bytes.
func DecodeDataURI(encoded entity.EncodedImage) (string, []byte, error) {
	s := string(encoded)
	if !strings.HasPrefix(s, dataURIPrefix) {
		return "", nil, errors.New("not a data URI")
	}

	mime, data, ok := strings.Cut(strings.TrimPrefix(s, dataURIPrefix), base64Marker)
	if !ok {
		return "", nil, errors.New("data URI is not base64")
	}

	payload, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", nil, errors.Wrap(err, "decode data URI")
	}

	return mime, payload, nil
}

// detectMIME sniffs the media type of a blob that could not be re-encoded.
func detectMIME(raw []byte) string {
	return strings.ReplaceAll(mimetype.Detect(raw).String(), " ", "")
}
