package filter

import (
	"sync"

	"github.com/gogpu/imagefx/internal/image"
	"github.com/gogpu/imagefx/internal/parallel"
)

// GaussianBlur blurs every channel of src with a size x size Gaussian.
// size must be odd and positive; sigma <= 0 derives sigma from size.
//
// The separable algorithm convolves rows and then columns, costing
// O(w*h*size) instead of O(w*h*size²).
func GaussianBlur(src *image.PixelBuffer, size int, sigma float64) (*image.PixelBuffer, error) {
	if err := image.Validate(src); err != nil {
		return nil, err
	}
	kernel, err := CachedGaussianKernel(size, sigma)
	if err != nil {
		return nil, err
	}
	return convolveToBuffer(src, kernel), nil
}

// BoxMean replaces each sample with the rounded mean of its size x size
// neighbourhood.
func BoxMean(src *image.PixelBuffer, size int) (*image.PixelBuffer, error) {
	if err := image.Validate(src); err != nil {
		return nil, err
	}
	kernel, err := BoxKernel(size)
	if err != nil {
		return nil, err
	}
	return convolveToBuffer(src, kernel), nil
}

// convolveToBuffer runs the separable convolution and rounds the result.
func convolveToBuffer(src *image.PixelBuffer, kernel []float32) *image.PixelBuffer {
	sums := convolveSeparable(src, kernel)
	defer putTempBuffer(sums)

	dst := image.NewLike(src, src.Format())
	out := dst.Data()
	for i, v := range sums {
		out[i] = clampUint8(v)
	}
	return dst
}

// convolveSeparable convolves every channel of src with kernel along rows,
// then along columns. The result holds one float32 per sample in the layout
// of src and comes from the temp pool; release it with putTempBuffer.
func convolveSeparable(src *image.PixelBuffer, kernel []float32) []float32 {
	width := src.Width()
	height := src.Height()
	ch := src.Channels()
	stride := width * ch
	data := src.Data()

	temp := getTempBuffer(len(data))
	defer putTempBuffer(temp)

	// Pass 1: horizontal (src -> temp)
	parallel.Rows(height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			blurRow(data[y*stride:(y+1)*stride], temp[y*stride:(y+1)*stride], width, ch, kernel)
		}
	})

	// Pass 2: vertical (temp -> result), accumulated a whole row at a time
	result := getTempBuffer(len(data))
	half := len(kernel) / 2
	parallel.Rows(height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			out := result[y*stride : (y+1)*stride]
			for k, weight := range kernel {
				// Clamp to buffer bounds (edge extension)
				ky := image.Clamp(y+k-half, 0, height-1)
				in := temp[ky*stride : (ky+1)*stride]
				for i := range out {
					out[i] += in[i] * weight
				}
			}
		}
	})

	return result
}

// blurRow applies the 1D kernel to one interleaved row.
func blurRow(row []byte, out []float32, width, ch int, kernel []float32) {
	half := len(kernel) / 2
	for x := range width {
		for c := range ch {
			var sum float32
			for k, weight := range kernel {
				kx := image.Clamp(x+k-half, 0, width-1)
				sum += float32(row[kx*ch+c]) * weight
			}
			out[x*ch+c] = sum
		}
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float32
}

// tempBufferPool recycles float32 scratch planes between calls.
var tempBufferPool = sync.Pool{
	New: func() interface{} {
		return &floatBuffer{}
	},
}

// maxPooledBuffer is the largest buffer kept in the pool (64MB of float32).
const maxPooledBuffer = 16 * 1024 * 1024

// getTempBuffer returns a zeroed scratch slice of length size.
func getTempBuffer(size int) []float32 {
	wrapper := tempBufferPool.Get().(*floatBuffer)
	if cap(wrapper.data) < size {
		tempBufferPool.Put(wrapper)
		return make([]float32, size)
	}

	buf := wrapper.data[:size]
	clear(buf)
	return buf
}

// putTempBuffer returns a scratch slice to the pool.
func putTempBuffer(buf []float32) {
	if cap(buf) <= maxPooledBuffer {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}

// clampUint8 clamps a float32 to [0, 255] and rounds to nearest.
func clampUint8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
