package filter

import (
	"math"

	"github.com/gogpu/imagefx/internal/image"
	"github.com/gogpu/imagefx/internal/parallel"
)

// Bilateral smooths src while preserving strong edges.
//
// Each output pixel is a weighted average over a circular window of the given
// diameter. A neighbour's weight is the product of a spatial Gaussian
// (sigmaSpace, in pixels) and a range Gaussian (sigmaColor) over the L1
// distance between the two pixels summed across channels, so pixels on the
// far side of an edge contribute little.
//
// A diameter <= 0 is derived from sigmaSpace. Sigmas <= 0 are treated as 1;
// NaN or infinite sigmas are rejected.
func Bilateral(src *image.PixelBuffer, diameter int, sigmaColor, sigmaSpace float64) (*image.PixelBuffer, error) {
	if err := image.Validate(src); err != nil {
		return nil, err
	}
	if err := checkFinite("bilateral color sigma", sigmaColor); err != nil {
		return nil, err
	}
	if err := checkFinite("bilateral space sigma", sigmaSpace); err != nil {
		return nil, err
	}
	if sigmaColor <= 0 {
		sigmaColor = 1
	}
	if sigmaSpace <= 0 {
		sigmaSpace = 1
	}

	radius := diameter / 2
	if diameter <= 0 {
		radius = int(math.Round(sigmaSpace * 1.5))
	}
	radius = max(radius, 1)

	ch := src.Channels()
	offsets, spaceWeights := bilateralWindow(radius, sigmaSpace)
	colorWeights := bilateralRange(255*ch, sigmaColor)

	dst := image.NewLike(src, src.Format())
	width := src.Width()
	height := src.Height()
	in := src.Data()
	out := dst.Data()

	parallel.Rows(height, func(y0, y1 int) {
		var sum [3]float32
		for y := y0; y < y1; y++ {
			for x := range width {
				center := in[(y*width+x)*ch : (y*width+x+1)*ch]
				sum = [3]float32{}
				var wsum float32

				for i, off := range offsets {
					nx := image.Clamp(x+off.X, 0, width-1)
					ny := image.Clamp(y+off.Y, 0, height-1)
					px := in[(ny*width+nx)*ch : (ny*width+nx+1)*ch]

					diff := 0
					for c := range ch {
						diff += absInt(int(px[c]) - int(center[c]))
					}
					w := spaceWeights[i] * colorWeights[diff]
					for c := range ch {
						sum[c] += float32(px[c]) * w
					}
					wsum += w
				}

				o := out[(y*width+x)*ch : (y*width+x+1)*ch]
				for c := range ch {
					o[c] = clampUint8(sum[c] / wsum)
				}
			}
		}
	})

	return dst, nil
}

// bilateralWindow lists the offsets within radius of the origin and their
// spatial weights.
func bilateralWindow(radius int, sigma float64) ([]offset, []float32) {
	coeff := -0.5 / (sigma * sigma)
	var offsets []offset
	var weights []float32
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			r2 := float64(dx*dx + dy*dy)
			if math.Sqrt(r2) > float64(radius) {
				continue
			}
			offsets = append(offsets, offset{X: dx, Y: dy})
			weights = append(weights, float32(math.Exp(r2*coeff)))
		}
	}
	return offsets, weights
}

// bilateralRange tabulates the range weight for every L1 color distance.
func bilateralRange(maxDiff int, sigma float64) []float32 {
	coeff := -0.5 / (sigma * sigma)
	table := make([]float32, maxDiff+1)
	for d := range table {
		table[d] = float32(math.Exp(float64(d*d) * coeff))
	}
	return table
}

// offset is a relative pixel position.
type offset struct {
	X, Y int
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
