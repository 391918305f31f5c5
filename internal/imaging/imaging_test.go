package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNormalize_PNG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.RGBA{R: 255, A: 255})
	src.Set(1, 0, color.RGBA{B: 255, A: 255})

	img, err := Normalize(encodePNG(t, src))
	require.NoError(t, err)

	assert.Equal(t, 2, img.Width)
	assert.Equal(t, 1, img.Height)
	assert.Equal(t, "png", img.Format)
	// BGR channel order: red pixel then blue pixel.
	assert.Equal(t, []byte{0, 0, 255, 255, 0, 0}, img.Pixels)
}

func TestNormalize_JPEG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, src, nil))

	img, err := Normalize(buf.Bytes())
	require.NoError(t, err)

	assert.Equal(t, "jpeg", img.Format)
	assert.Len(t, img.Pixels, 4*4*3)
}

func TestNormalize_CanonicalAcrossEncodings(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 3))
	src.Set(1, 1, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	first, err := Normalize(encodePNG(t, src))
	require.NoError(t, err)

	// Re-encode with a different compression level: same pixels in, same
	// canonical bytes out.
	encoder := png.Encoder{CompressionLevel: png.BestCompression}
	var buf bytes.Buffer
	require.NoError(t, encoder.Encode(&buf, src))

	second, err := Normalize(buf.Bytes())
	require.NoError(t, err)

	assert.Equal(t, first.Pixels, second.Pixels)
}

func TestNormalize_RejectsGarbage(t *testing.T) {
	_, err := Normalize([]byte("definitely not an image"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestNormalize_RejectsEmptyPayload(t *testing.T) {
	_, err := Normalize(nil)
	assert.ErrorIs(t, err, ErrInvalidImage)
}
