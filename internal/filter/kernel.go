package filter

import (
	"fmt"
	"math"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/gogpu/imagefx/internal/image"
)

// SigmaForSize returns the Gaussian sigma conventionally derived from an
// odd kernel size: 0.3*((size-1)/2 - 1) + 0.8.
func SigmaForSize(size int) float64 {
	return 0.3*(float64(size-1)*0.5-1) + 0.8
}

// GaussianKernel generates a normalized 1D Gaussian kernel of the given odd
// size. A sigma <= 0 is derived from the size with SigmaForSize.
func GaussianKernel(size int, sigma float64) ([]float32, error) {
	if err := checkKernelSize(size); err != nil {
		return nil, err
	}
	if err := checkFinite("gaussian sigma", sigma); err != nil {
		return nil, err
	}
	if sigma <= 0 {
		sigma = SigmaForSize(size)
	}

	half := size / 2
	kernel := make([]float32, size)

	// Gaussian formula: G(x) = exp(-x²/(2σ²)), normalized below
	twoSigmaSq := 2 * sigma * sigma
	weights := make([]float64, size)
	sum := 0.0
	for i := range size {
		x := float64(i - half)
		weights[i] = math.Exp(-(x * x) / twoSigmaSq)
		sum += weights[i]
	}

	for i, w := range weights {
		kernel[i] = float32(w / sum)
	}

	return kernel, nil
}

// BoxKernel generates a 1D box (uniform) kernel of the given odd size.
// All values are equal: 1/size.
func BoxKernel(size int) ([]float32, error) {
	if err := checkKernelSize(size); err != nil {
		return nil, err
	}

	kernel := make([]float32, size)
	val := float32(1.0) / float32(size)
	for i := range kernel {
		kernel[i] = val
	}

	return kernel, nil
}

// checkKernelSize rejects even and non-positive kernel sizes.
func checkKernelSize(size int) error {
	if size <= 0 || size%2 == 0 {
		return fmt.Errorf("filter: kernel size %d must be odd and positive: %w", size, image.ErrInvalidParameter)
	}
	return nil
}

// checkFinite rejects NaN and infinite parameters.
func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("filter: %s %v must be finite: %w", name, v, image.ErrInvalidParameter)
	}
	return nil
}

// kernelKey identifies a cached Gaussian kernel.
type kernelKey struct {
	size  int
	sigma float64
}

// kernelCacheSize bounds the number of cached Gaussian kernels.
const kernelCacheSize = 64

var kernelCache = mustKernelCache()

func mustKernelCache() *lru.Cache[kernelKey, []float32] {
	c, err := lru.New[kernelKey, []float32](kernelCacheSize)
	if err != nil {
		panic(err)
	}
	return c
}

// CachedGaussianKernel returns a Gaussian kernel from a process-wide LRU
// cache, computing it on a miss. The returned slice is shared and must not
// be modified.
func CachedGaussianKernel(size int, sigma float64) ([]float32, error) {
	// NaN keys never match and would pile up in the cache.
	if err := checkFinite("gaussian sigma", sigma); err != nil {
		return nil, err
	}
	if sigma <= 0 {
		sigma = SigmaForSize(size)
	}
	key := kernelKey{size: size, sigma: sigma}
	if kernel, ok := kernelCache.Get(key); ok {
		return kernel, nil
	}

	kernel, err := GaussianKernel(size, sigma)
	if err != nil {
		return nil, err
	}
	kernelCache.Add(key, kernel)
	return kernel, nil
}
