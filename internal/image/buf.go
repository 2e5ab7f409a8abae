package image

import (
	"errors"
	"image"
)

// Common errors for image operations.
var (
	// ErrInvalidInput is returned for nil or empty buffers.
	ErrInvalidInput = errors.New("image: invalid input")

	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrUnsupportedFormat is returned when an operation receives a buffer
	// with a channel count it cannot handle.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrInvalidParameter is returned for invalid filter parameters such as
	// even or non-positive kernel sizes.
	ErrInvalidParameter = errors.New("image: invalid parameter")

	// ErrSizeMismatch is returned when buffers combined by a binary
	// operation differ in width or height.
	ErrSizeMismatch = errors.New("image: buffer dimensions differ")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")

	// ErrOutOfBounds is returned when pixel coordinates are outside image bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")
)

// PixelBuffer is a row-major grid of 8-bit samples.
//
// Samples are interleaved per pixel (R,G,B for FormatRGB8) and rows are
// packed without padding, so the sample for channel c of pixel (x, y) lives
// at (y*width+x)*channels + c.
//
// Effects treat buffers as immutable values: they read their inputs and
// return freshly allocated outputs. Concurrent reads are safe; writes through
// Set, Fill or Data require external synchronization.
type PixelBuffer struct {
	data   []byte
	width  int
	height int
	format Format
}

// New creates a zeroed buffer with the given dimensions and format.
func New(width, height int, format Format) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrUnsupportedFormat
	}

	return &PixelBuffer{
		data:   make([]byte, format.RowBytes(width)*height),
		width:  width,
		height: height,
		format: format,
	}, nil
}

// NewLike creates a zeroed buffer with the dimensions of b and the given format.
// b must be a valid, non-empty buffer.
func NewLike(b *PixelBuffer, format Format) *PixelBuffer {
	return &PixelBuffer{
		data:   make([]byte, format.RowBytes(b.width)*b.height),
		width:  b.width,
		height: b.height,
		format: format,
	}
}

// FromRaw creates a PixelBuffer over existing data without copying.
// The caller must not modify data while the buffer is in use.
func FromRaw(data []byte, width, height int, format Format) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrUnsupportedFormat
	}

	requiredSize := format.RowBytes(width) * height
	if len(data) < requiredSize {
		return nil, ErrDataTooSmall
	}

	return &PixelBuffer{
		data:   data[:requiredSize],
		width:  width,
		height: height,
		format: format,
	}, nil
}

// Clone creates a deep copy of the buffer.
func (b *PixelBuffer) Clone() *PixelBuffer {
	newData := make([]byte, len(b.data))
	copy(newData, b.data)

	return &PixelBuffer{
		data:   newData,
		width:  b.width,
		height: b.height,
		format: b.format,
	}
}

// Width returns the buffer width in pixels.
func (b *PixelBuffer) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *PixelBuffer) Height() int {
	return b.height
}

// Format returns the pixel format.
func (b *PixelBuffer) Format() Format {
	return b.format
}

// Channels returns the number of samples per pixel.
func (b *PixelBuffer) Channels() int {
	return b.format.Channels()
}

// Bounds returns the buffer rectangle anchored at the origin.
func (b *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// Data returns the raw sample slice.
func (b *PixelBuffer) Data() []byte {
	return b.data
}

// Row returns the samples of row y, or nil if y is out of range.
func (b *PixelBuffer) Row(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	stride := b.format.RowBytes(b.width)
	return b.data[y*stride : (y+1)*stride]
}

// PixelOffset returns the offset of the first sample of pixel (x, y).
// Returns -1 if coordinates are out of bounds.
func (b *PixelBuffer) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return (y*b.width + x) * b.format.BytesPerPixel()
}

// At returns sample c of pixel (x, y), replicating the nearest edge pixel
// for coordinates outside the buffer.
func (b *PixelBuffer) At(x, y, c int) uint8 {
	x = Clamp(x, 0, b.width-1)
	y = Clamp(y, 0, b.height-1)
	return b.data[(y*b.width+x)*b.format.BytesPerPixel()+c]
}

// Set writes sample c of pixel (x, y).
// Returns ErrOutOfBounds if coordinates are outside the buffer.
func (b *PixelBuffer) Set(x, y, c int, v uint8) error {
	offset := b.PixelOffset(x, y)
	if offset < 0 || c < 0 || c >= b.Channels() {
		return ErrOutOfBounds
	}
	b.data[offset+c] = v
	return nil
}

// Fill sets every pixel to the given samples. Extra samples are ignored and
// missing samples repeat the last one given.
func (b *PixelBuffer) Fill(samples ...uint8) {
	if len(samples) == 0 {
		clear(b.data)
		return
	}
	ch := b.Channels()
	px := make([]byte, ch)
	for c := range ch {
		px[c] = samples[min(c, len(samples)-1)]
	}
	for i := 0; i < len(b.data); i += ch {
		copy(b.data[i:i+ch], px)
	}
}

// IsEmpty reports whether b is nil or holds no pixels.
func (b *PixelBuffer) IsEmpty() bool {
	return b == nil || b.width <= 0 || b.height <= 0 || len(b.data) == 0
}

// SameSize reports whether b and o have identical width and height.
func (b *PixelBuffer) SameSize(o *PixelBuffer) bool {
	return b.width == o.width && b.height == o.height
}

// Equal reports whether b and o have identical dimensions, format and samples.
func (b *PixelBuffer) Equal(o *PixelBuffer) bool {
	if b == nil || o == nil {
		return b == o
	}
	if !b.SameSize(o) || b.format != o.format {
		return false
	}
	return string(b.data) == string(o.data)
}

// Validate returns ErrInvalidInput for nil or empty buffers.
func Validate(b *PixelBuffer) error {
	if b.IsEmpty() {
		return ErrInvalidInput
	}
	return nil
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
