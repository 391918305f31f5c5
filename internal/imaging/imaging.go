// Package imaging decodes client-supplied photos into a canonical pixel
// representation so that semantically identical uploads hash identically.
//
// JPEG, PNG and GIF inputs are accepted. Decoded frames are flattened to
// 8-bit BGR rows regardless of the source color model, which makes the
// cache key independent of encoding details such as compression level or
// chunk ordering.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	// registered decoders
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// ErrInvalidImage reports input that could not be decoded as an image.
var ErrInvalidImage = errors.New("invalid image data")

// Image is a decoded photo in canonical form: packed 8-bit BGR rows.
type Image struct {
	// Pixels holds Width*Height*3 bytes in B, G, R channel order.
	Pixels []byte
	Width  int
	Height int
	// Format is the detected source encoding ("jpeg", "png", "gif").
	Format string
}

// Normalize decodes raw image bytes into the canonical BGR form.
// Undecodable input yields ErrInvalidImage.
func Normalize(data []byte) (Image, error) {
	if len(data) == 0 {
		return Image{}, fmt.Errorf("%w: empty payload", ErrInvalidImage)
	}

	decoded, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Image{}, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	bounds := decoded.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return Image{}, fmt.Errorf("%w: zero-sized image", ErrInvalidImage)
	}

	pixels := make([]byte, 0, width*height*3)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := decoded.At(x, y).RGBA()
			pixels = append(pixels, byte(b>>8), byte(g>>8), byte(r>>8))
		}
	}

	return Image{Pixels: pixels, Width: width, Height: height, Format: format}, nil
}
