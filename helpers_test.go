package imagefx

import (
	"math/rand/v2"
	"testing"
)

// testBuffer creates a buffer filled with the given samples.
func testBuffer(t testing.TB, w, h int, format Format, samples ...uint8) *PixelBuffer {
	t.Helper()
	b, err := New(w, h, format)
	if err != nil {
		t.Fatalf("New(%d, %d, %v) error = %v", w, h, format, err)
	}
	b.Fill(samples...)
	return b
}

// randomBuffer creates a buffer of reproducible noise.
func randomBuffer(t testing.TB, w, h int, format Format, seed uint64) *PixelBuffer {
	t.Helper()
	b := testBuffer(t, w, h, format)
	rng := rand.New(rand.NewPCG(seed, seed+1))
	for i := range b.Data() {
		b.Data()[i] = uint8(rng.IntN(256))
	}
	return b
}

// edgeImage creates an RGB buffer that is black left of column edge and
// white from it onwards.
func edgeImage(t testing.TB, w, h, edge int) *PixelBuffer {
	t.Helper()
	b := testBuffer(t, w, h, FormatRGB8)
	for y := range h {
		row := b.Row(y)
		for x := edge; x < w; x++ {
			row[x*3], row[x*3+1], row[x*3+2] = 255, 255, 255
		}
	}
	return b
}
