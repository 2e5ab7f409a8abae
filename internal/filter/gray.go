package filter

import (
	"fmt"

	"github.com/gogpu/imagefx/internal/image"
	"github.com/gogpu/imagefx/internal/parallel"
)

// Rec.601 luminance weights in 14-bit fixed point (sum = 1<<14).
const (
	lumR     = 4899
	lumG     = 9617
	lumB     = 1868
	lumShift = 14
	lumRound = 1 << (lumShift - 1)
)

// luma returns the Rec.601 luminance of an RGB triple.
func luma(r, g, b uint8) uint8 {
	return uint8((int(r)*lumR + int(g)*lumG + int(b)*lumB + lumRound) >> lumShift)
}

// Grayscale reduces an RGB buffer to a single luminance channel.
// A grayscale input is returned as is.
func Grayscale(src *image.PixelBuffer) (*image.PixelBuffer, error) {
	if err := image.Validate(src); err != nil {
		return nil, err
	}

	switch src.Format() {
	case image.FormatGray8:
		return src, nil
	case image.FormatRGB8:
	default:
		return nil, fmt.Errorf("filter: grayscale of %v: %w", src.Format(), image.ErrUnsupportedFormat)
	}

	dst := image.NewLike(src, image.FormatGray8)
	in := src.Data()
	out := dst.Data()
	width := src.Width()

	parallel.Rows(src.Height(), func(y0, y1 int) {
		for i := y0 * width; i < y1*width; i++ {
			out[i] = luma(in[i*3], in[i*3+1], in[i*3+2])
		}
	})

	return dst, nil
}

// GrayToRGB broadcasts a grayscale buffer to three equal channels.
// An RGB input is returned as is.
func GrayToRGB(src *image.PixelBuffer) (*image.PixelBuffer, error) {
	if err := image.Validate(src); err != nil {
		return nil, err
	}
	if src.Format() == image.FormatRGB8 {
		return src, nil
	}

	dst := image.NewLike(src, image.FormatRGB8)
	out := dst.Data()
	for i, v := range src.Data() {
		out[i*3] = v
		out[i*3+1] = v
		out[i*3+2] = v
	}
	return dst, nil
}

// Invert replaces every sample v with 255 - v.
func Invert(src *image.PixelBuffer) (*image.PixelBuffer, error) {
	if err := image.Validate(src); err != nil {
		return nil, err
	}

	dst := image.NewLike(src, src.Format())
	out := dst.Data()
	for i, v := range src.Data() {
		out[i] = 255 - v
	}
	return dst, nil
}

// lumaPlane returns one luminance byte per pixel of src.
func lumaPlane(src *image.PixelBuffer) []uint8 {
	if src.Format() == image.FormatGray8 {
		return src.Data()
	}
	in := src.Data()
	plane := make([]uint8, src.Width()*src.Height())
	for i := range plane {
		plane[i] = luma(in[i*3], in[i*3+1], in[i*3+2])
	}
	return plane
}
