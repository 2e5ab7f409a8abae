package image

import (
	"fmt"

	"github.com/disintegration/imaging"
)

// Thumbnail scales b to fit within maxWidth x maxHeight, preserving the
// aspect ratio, using Lanczos resampling. Buffers that already fit are
// returned as a copy; thumbnails never upscale.
//
// The result keeps the format of b.
func Thumbnail(b *PixelBuffer, maxWidth, maxHeight int) (*PixelBuffer, error) {
	if err := Validate(b); err != nil {
		return nil, err
	}
	if maxWidth <= 0 || maxHeight <= 0 {
		return nil, fmt.Errorf("image: thumbnail %dx%d: %w", maxWidth, maxHeight, ErrInvalidParameter)
	}
	if b.width <= maxWidth && b.height <= maxHeight {
		return b.Clone(), nil
	}

	fitted := imaging.Fit(b.ToStdImage(), maxWidth, maxHeight, imaging.Lanczos)
	out := FromStdImage(fitted)
	if b.format == FormatGray8 {
		// imaging always returns NRGBA; gray inputs keep equal channels.
		gray := NewLike(out, FormatGray8)
		for i := range gray.data {
			gray.data[i] = out.data[i*3]
		}
		return gray, nil
	}
	return out, nil
}
