package media

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"strings"
	"testing"

	"refuge/config"
	domainerrors "refuge/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCodec(maxEncodedLength int) *Codec {
	return NewCodec(&config.MediaConfig{
		MaxEdge:          800,
		Quality:          70,
		MaxEncodedLength: maxEncodedLength,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y += 7 {
		for x := 0; x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(x % 256)})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

// withPNGSize rewrites the IHDR dimensions of a PNG and fixes its checksum,
// leaving the pixel data untouched.
func withPNGSize(t *testing.T, raw []byte, w, h uint32) []byte {
	t.Helper()

	// signature(8) length(4) "IHDR"(4) width(4) height(4) ...13 data bytes, crc(4)
	require.Equal(t, "IHDR", string(raw[12:16]))
	forged := bytes.Clone(raw)
	binary.BigEndian.PutUint32(forged[16:20], w)
	binary.BigEndian.PutUint32(forged[20:24], h)
	binary.BigEndian.PutUint32(forged[29:33], crc32.ChecksumIEEE(forged[12:29]))

	return forged
}

func transparentPNG(t *testing.T, w, h int) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, w, h))))

	return buf.Bytes()
}

func TestTargetSize(t *testing.T) {
	tests := []struct {
		name         string
		w, h, edge   int
		wantW, wantH int
	}{
		{"landscape", 4000, 3000, 800, 800, 600},
		{"portrait", 3000, 4000, 800, 600, 800},
		{"square", 1200, 1200, 800, 800, 800},
		{"rounds other edge", 1000, 333, 800, 800, 266},
		{"already small", 640, 480, 800, 640, 480},
		{"exactly at edge", 800, 200, 800, 800, 200},
		{"no bound", 4000, 3000, 0, 4000, 3000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := TargetSize(tt.w, tt.h, tt.edge)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestCodec_Encode_DownscalesLongEdge(t *testing.T) {
	codec := newTestCodec(900_000)

	encoded, err := codec.Encode(context.Background(), pngOf(t, 4000, 3000))
	require.NoError(t, err)
	assert.LessOrEqual(t, encoded.Len(), 900_000)

	mime, payload, err := DecodeDataURI(encoded)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mime)

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
}

func TestCodec_Encode_KeepsSmallDimensions(t *testing.T) {
	codec := newTestCodec(900_000)

	encoded, err := codec.Encode(context.Background(), pngOf(t, 320, 200))
	require.NoError(t, err)

	_, payload, err := DecodeDataURI(encoded)
	require.NoError(t, err)

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, 320, cfg.Width)
	assert.Equal(t, 200, cfg.Height)
}

func TestCodec_Encode_FallsBackToOriginal(t *testing.T) {
	codec := newTestCodec(900_000)
	raw := []byte("definitely not a picture of a cat")

	encoded, err := codec.Encode(context.Background(), raw)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(encoded), "data:text/plain;charset=utf-8;base64,"))

	_, payload, err := DecodeDataURI(encoded)
	require.NoError(t, err)
	assert.Equal(t, raw, payload)
}

func TestCodec_Encode_RejectsOversizedFallback(t *testing.T) {
	codec := newTestCodec(900_000)

	raw := make([]byte, 2<<20)
	_, err := rand.Read(raw)
	require.NoError(t, err)

	encoded, err := codec.Encode(context.Background(), raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrImageTooLarge)
	assert.Equal(t, domainerrors.CodeImageTooLarge, domainerrors.Kind(err))
	assert.Empty(t, encoded)
}

func TestCodec_Encode_NeverExceedsCeiling(t *testing.T) {
	const limit = 4_000
	codec := newTestCodec(limit)

	for _, size := range []int{1, 100, 2_900, 2_990, 3_000, 3_100, 10_000} {
		raw := make([]byte, size)
		_, err := rand.Read(raw)
		require.NoError(t, err)

		encoded, err := codec.Encode(context.Background(), raw)
		if err != nil {
			assert.ErrorIs(t, err, domainerrors.ErrImageTooLarge, "size %d", size)
			continue
		}
		assert.LessOrEqual(t, encoded.Len(), limit, "size %d", size)
	}
}

func TestCodec_Encode_EmptyInput(t *testing.T) {
	codec := newTestCodec(900_000)

	_, err := codec.Encode(context.Background(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCodec_Encode_CanceledContext(t *testing.T) {
	codec := newTestCodec(900_000)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := codec.Encode(ctx, []byte("x"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecodeDataURI_Invalid(t *testing.T) {
	_, _, err := DecodeDataURI("https://example.com/cat.jpg")
	assert.Error(t, err)

	_, _, err = DecodeDataURI("data:image/png,rawtext")
	assert.Error(t, err)

	_, _, err = DecodeDataURI("data:image/png;base64,@@@")
	assert.Error(t, err)
}

func TestDataURI_RoundTrip(t *testing.T) {
	encoded := DataURI("image/png", []byte{0x89, 'P', 'N', 'G'})
	assert.Equal(t, "data:image/png;base64,iVBORw==", string(encoded))
}

func TestCodec_Compress_RefusesOversizedHeader(t *testing.T) {
	codec := newTestCodec(900_000)
	forged := withPNGSize(t, pngOf(t, 1, 1), 60_000, 60_000)

	_, _, err := codec.Compress(forged)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")
}

func TestCodec_Encode_OversizedHeaderFallsBack(t *testing.T) {
	codec := newTestCodec(900_000)
	forged := withPNGSize(t, pngOf(t, 1, 1), 60_000, 60_000)

	encoded, err := codec.Encode(context.Background(), forged)
	require.NoError(t, err)

	mime, payload, err := DecodeDataURI(encoded)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)
	assert.Equal(t, forged, payload)
}

func TestCodec_Encode_PixelBoundIsConfigurable(t *testing.T) {
	codec := NewCodec(&config.MediaConfig{
		MaxEdge:          800,
		Quality:          70,
		MaxEncodedLength: 900_000,
		MaxPixels:        100,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, _, err := codec.Compress(pngOf(t, 20, 20))
	assert.Error(t, err)

	_, mime, err := codec.Compress(pngOf(t, 10, 10))
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mime)
}

func TestCodec_Compress_FlattensTransparencyOnWhite(t *testing.T) {
	codec := newTestCodec(900_000)

	for _, size := range []image.Point{{X: 16, Y: 16}, {X: 1600, Y: 16}} {
		payload, _, err := codec.Compress(transparentPNG(t, size.X, size.Y))
		require.NoError(t, err)

		img, err := jpeg.Decode(bytes.NewReader(payload))
		require.NoError(t, err)

		center := img.Bounds().Min.Add(image.Pt(img.Bounds().Dx()/2, img.Bounds().Dy()/2))
		r, g, b, _ := img.At(center.X, center.Y).RGBA()
		assert.Greater(t, r>>8, uint32(0xF0), "size %v", size)
		assert.Greater(t, g>>8, uint32(0xF0), "size %v", size)
		assert.Greater(t, b>>8, uint32(0xF0), "size %v", size)
	}
}
