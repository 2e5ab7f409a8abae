package filter

import (
	"math"
	"testing"

	"github.com/gogpu/imagefx/internal/image"
)

// Test helper functions shared across filter tests.

// createTestBuffer creates a buffer filled with the given samples.
func createTestBuffer(t testing.TB, w, h int, format image.Format, samples ...uint8) *image.PixelBuffer {
	t.Helper()
	b, err := image.New(w, h, format)
	if err != nil {
		t.Fatalf("image.New(%d, %d) error = %v", w, h, err)
	}
	b.Fill(samples...)
	return b
}

// gradientBuffer creates an RGB buffer whose channels vary with x and y.
func gradientBuffer(t testing.TB, w, h int) *image.PixelBuffer {
	t.Helper()
	b := createTestBuffer(t, w, h, image.FormatRGB8)
	d := b.Data()
	for y := range h {
		for x := range w {
			off := b.PixelOffset(x, y)
			d[off+0] = uint8(x * 255 / max(w-1, 1))
			d[off+1] = uint8(y * 255 / max(h-1, 1))
			d[off+2] = uint8((x*7 + y*13) % 256)
		}
	}
	return b
}

// edgeBuffer creates a grayscale buffer that is black left of column edge
// and white from it onwards.
func edgeBuffer(t testing.TB, w, h, edge int) *image.PixelBuffer {
	t.Helper()
	b := createTestBuffer(t, w, h, image.FormatGray8, 0)
	for y := range h {
		for x := edge; x < w; x++ {
			_ = b.Set(x, y, 0, 255)
		}
	}
	return b
}

// assertUniform fails if any sample of channel c differs from want by more
// than tolerance.
func assertUniform(t *testing.T, b *image.PixelBuffer, want uint8, tolerance int) {
	t.Helper()
	for i, v := range b.Data() {
		if diff := int(v) - int(want); diff > tolerance || diff < -tolerance {
			t.Fatalf("sample %d = %d, want %d (±%d)", i, v, want, tolerance)
		}
	}
}

// assertSameShape fails unless got matches want in size and format.
func assertSameShape(t *testing.T, got, want *image.PixelBuffer) {
	t.Helper()
	if got.Width() != want.Width() || got.Height() != want.Height() {
		t.Errorf("size = %dx%d, want %dx%d", got.Width(), got.Height(), want.Width(), want.Height())
	}
	if got.Format() != want.Format() {
		t.Errorf("format = %v, want %v", got.Format(), want.Format())
	}
}

// nonFinite lists float parameters every filter must reject.
var nonFinite = []float64{math.NaN(), math.Inf(1), math.Inf(-1)}
