package filter

import (
	"fmt"
	"math"

	"github.com/gogpu/imagefx/internal/image"
)

// AdaptiveThreshold binarizes a grayscale buffer against its local mean.
//
// For every pixel the mean of the blockSize x blockSize neighbourhood is
// computed (rounded to an integer, edges replicated). The output is maxValue
// where src - mean > -ceil(offset), and 0 otherwise. With a positive offset,
// flat regions come out maxValue and pixels noticeably darker than their
// surroundings (edges, lines) come out 0.
func AdaptiveThreshold(src *image.PixelBuffer, maxValue uint8, blockSize int, offset float64) (*image.PixelBuffer, error) {
	if err := image.Validate(src); err != nil {
		return nil, err
	}
	if src.Format() != image.FormatGray8 {
		return nil, fmt.Errorf("filter: adaptive threshold of %v: %w", src.Format(), image.ErrUnsupportedFormat)
	}
	if blockSize < 3 || blockSize%2 == 0 {
		return nil, fmt.Errorf("filter: threshold block size %d must be odd and > 1: %w", blockSize, image.ErrInvalidParameter)
	}

	if err := checkFinite("threshold offset", offset); err != nil {
		return nil, err
	}

	mean, err := BoxMean(src, blockSize)
	if err != nil {
		return nil, err
	}

	delta := int(math.Ceil(offset))
	dst := image.NewLike(src, image.FormatGray8)
	in := src.Data()
	m := mean.Data()
	out := dst.Data()
	for i, v := range in {
		if int(v)-int(m[i]) > -delta {
			out[i] = maxValue
		}
	}
	return dst, nil
}
