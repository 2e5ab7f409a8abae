package filter

import (
	"fmt"
	"math"

	"github.com/gogpu/imagefx/internal/image"
)

// Divide computes num * scale / den per sample, rounded and clamped to
// [0, 255]. A zero denominator is treated as 1, so black numerators stay 0
// and everything else saturates.
//
// With scale 256 and den = 255 - blurred inverse this is the color dodge
// blend used for pencil sketches.
func Divide(num, den *image.PixelBuffer, scale float64) (*image.PixelBuffer, error) {
	if err := requireSameShape(num, den); err != nil {
		return nil, err
	}

	dst := image.NewLike(num, num.Format())
	a := num.Data()
	b := den.Data()
	out := dst.Data()
	for i := range out {
		d := max(float64(b[i]), 1)
		out[i] = uint8(math.Min(math.Round(float64(a[i])*scale/d), 255))
	}
	return dst, nil
}

// MaskedCopy keeps src where mask is non-zero and writes black elsewhere.
// The single-channel mask is broadcast across the channels of src.
func MaskedCopy(src, mask *image.PixelBuffer) (*image.PixelBuffer, error) {
	if err := image.Validate(src); err != nil {
		return nil, err
	}
	if err := image.Validate(mask); err != nil {
		return nil, err
	}
	if mask.Format() != image.FormatGray8 {
		return nil, fmt.Errorf("filter: mask is %v, want Gray8: %w", mask.Format(), image.ErrUnsupportedFormat)
	}
	if !src.SameSize(mask) {
		return nil, sizeMismatch(src, mask)
	}

	ch := src.Channels()
	dst := image.NewLike(src, src.Format())
	in := src.Data()
	out := dst.Data()
	for i, m := range mask.Data() {
		if m != 0 {
			copy(out[i*ch:(i+1)*ch], in[i*ch:(i+1)*ch])
		}
	}
	return dst, nil
}

// requireSameShape validates a and b and checks that they match in size and format.
func requireSameShape(a, b *image.PixelBuffer) error {
	if err := image.Validate(a); err != nil {
		return err
	}
	if err := image.Validate(b); err != nil {
		return err
	}
	if !a.SameSize(b) {
		return sizeMismatch(a, b)
	}
	if a.Format() != b.Format() {
		return fmt.Errorf("filter: formats %v and %v differ: %w", a.Format(), b.Format(), image.ErrUnsupportedFormat)
	}
	return nil
}

func sizeMismatch(a, b *image.PixelBuffer) error {
	return fmt.Errorf("filter: %dx%d vs %dx%d: %w",
		a.Width(), a.Height(), b.Width(), b.Height(), image.ErrSizeMismatch)
}
