package filter

import (
	"github.com/gogpu/imagefx/internal/image"
	"github.com/gogpu/imagefx/internal/parallel"
)

// MedianBlur replaces each sample with the median of its size x size
// neighbourhood, per channel. size must be odd and positive.
//
// Each row keeps a sliding histogram (Huang's algorithm): moving one pixel
// right removes the leftmost column and adds a new one, so the per-pixel cost
// is O(size) plus a two-level scan of the histogram.
func MedianBlur(src *image.PixelBuffer, size int) (*image.PixelBuffer, error) {
	if err := image.Validate(src); err != nil {
		return nil, err
	}
	if err := checkKernelSize(size); err != nil {
		return nil, err
	}
	if size == 1 {
		return src.Clone(), nil
	}

	dst := image.NewLike(src, src.Format())
	radius := size / 2
	ch := src.Channels()

	parallel.Rows(src.Height(), func(y0, y1 int) {
		var h medianHistogram
		for y := y0; y < y1; y++ {
			for c := range ch {
				medianRow(src, dst, &h, y, c, radius)
			}
		}
	})

	return dst, nil
}

// medianRow filters channel c of row y.
func medianRow(src, dst *image.PixelBuffer, h *medianHistogram, y, c, radius int) {
	width := src.Width()
	ch := src.Channels()
	out := dst.Row(y)
	half := (2*radius + 1) * (2*radius + 1) / 2

	h.reset()
	for dx := -radius; dx <= radius; dx++ {
		h.column(src, dx, y, c, radius, 1)
	}
	out[c] = h.rank(half)

	for x := 1; x < width; x++ {
		h.column(src, x-radius-1, y, c, radius, -1)
		h.column(src, x+radius, y, c, radius, 1)
		out[x*ch+c] = h.rank(half)
	}
}

// medianHistogram is a two-level 256-bin histogram: coarse bins of 16
// values locate the 16-wide range holding a rank, fine bins finish the scan.
type medianHistogram struct {
	coarse [16]int32
	fine   [256]int32
}

func (h *medianHistogram) reset() {
	clear(h.coarse[:])
	clear(h.fine[:])
}

// column adds (delta=1) or removes (delta=-1) the replicate-padded column x
// spanning rows y-radius..y+radius.
func (h *medianHistogram) column(src *image.PixelBuffer, x, y, c, radius int, delta int32) {
	for dy := -radius; dy <= radius; dy++ {
		v := src.At(x, y+dy, c)
		h.coarse[v>>4] += delta
		h.fine[v] += delta
	}
}

// rank returns the value with the given zero-based rank.
func (h *medianHistogram) rank(k int) uint8 {
	acc := int32(0)
	target := int32(k)
	for cb := range 16 {
		if acc+h.coarse[cb] <= target {
			acc += h.coarse[cb]
			continue
		}
		for v := cb * 16; v < cb*16+16; v++ {
			acc += h.fine[v]
			if acc > target {
				return uint8(v)
			}
		}
	}
	return 255
}
