package filter

import (
	"fmt"

	"github.com/gogpu/imagefx/internal/image"
	"github.com/gogpu/imagefx/internal/parallel"
)

// OilPaint flattens each neighbourhood to its dominant intensity.
//
// Every pixel of the (2*radius+1)² window (edges replicated) votes for the bin
// luma/dynRatio. The output pixel is the average color of the pixels in the
// most populated bin. When several bins tie, the darkest one wins.
// dynRatio 1 keeps all 256 intensity levels; larger values merge them into
// coarser bins and give a flatter result.
func OilPaint(src *image.PixelBuffer, radius, dynRatio int) (*image.PixelBuffer, error) {
	if err := image.Validate(src); err != nil {
		return nil, err
	}
	if radius < 1 {
		return nil, fmt.Errorf("filter: oil paint radius %d must be positive: %w", radius, image.ErrInvalidParameter)
	}
	if dynRatio < 1 {
		return nil, fmt.Errorf("filter: oil paint dynamic ratio %d must be >= 1: %w", dynRatio, image.ErrInvalidParameter)
	}

	plane := lumaPlane(src)
	bins := make([]uint8, len(plane))
	for i, v := range plane {
		bins[i] = v / uint8(min(dynRatio, 255))
	}
	binCount := 255/min(dynRatio, 255) + 1

	dst := image.NewLike(src, src.Format())
	ch := src.Channels()

	parallel.Rows(src.Height(), func(y0, y1 int) {
		h := newModeHistogram(binCount, ch)
		for y := y0; y < y1; y++ {
			oilPaintRow(src, dst, bins, h, y, radius)
		}
	})

	return dst, nil
}

// oilPaintRow slides the window along row y.
func oilPaintRow(src, dst *image.PixelBuffer, bins []uint8, h *modeHistogram, y, radius int) {
	width := src.Width()
	ch := src.Channels()
	out := dst.Row(y)

	h.reset()
	for dx := -radius; dx <= radius; dx++ {
		h.column(src, bins, dx, y, radius, 1)
	}
	h.average(out[:ch])

	for x := 1; x < width; x++ {
		h.column(src, bins, x-radius-1, y, radius, -1)
		h.column(src, bins, x+radius, y, radius, 1)
		h.average(out[x*ch : (x+1)*ch])
	}
}

// modeHistogram counts window pixels per bin and sums their colors.
// It tracks the current mode incrementally and rescans only after the
// mode bin loses a pixel.
type modeHistogram struct {
	ch     int
	counts []int32
	sums   []int32 // binCount * ch
	best   int
	dirty  bool
}

func newModeHistogram(binCount, ch int) *modeHistogram {
	return &modeHistogram{
		ch:     ch,
		counts: make([]int32, binCount),
		sums:   make([]int32, binCount*ch),
	}
}

func (h *modeHistogram) reset() {
	clear(h.counts)
	clear(h.sums)
	h.best = 0
	h.dirty = false
}

// column adds (delta=1) or removes (delta=-1) the replicate-padded column x
// spanning rows y-radius..y+radius.
func (h *modeHistogram) column(src *image.PixelBuffer, bins []uint8, x, y, radius int, delta int32) {
	width := src.Width()
	height := src.Height()
	data := src.Data()
	x = image.Clamp(x, 0, width-1)

	for dy := -radius; dy <= radius; dy++ {
		i := image.Clamp(y+dy, 0, height-1)*width + x
		b := int(bins[i])
		h.counts[b] += delta
		for c := range h.ch {
			h.sums[b*h.ch+c] += delta * int32(data[i*h.ch+c])
		}

		if h.dirty {
			continue
		}
		if delta < 0 {
			h.dirty = b == h.best
			continue
		}
		if h.counts[b] > h.counts[h.best] || (h.counts[b] == h.counts[h.best] && b < h.best) {
			h.best = b
		}
	}
}

// mode returns the most populated bin, lowest index first on ties.
func (h *modeHistogram) mode() int {
	if h.dirty {
		h.best = 0
		for b, n := range h.counts {
			if n > h.counts[h.best] {
				h.best = b
			}
		}
		h.dirty = false
	}
	return h.best
}

// average writes the rounded mean color of the mode bin into px.
func (h *modeHistogram) average(px []byte) {
	b := h.mode()
	n := h.counts[b]
	for c := range h.ch {
		px[c] = uint8((h.sums[b*h.ch+c] + n/2) / n)
	}
}
