package imagefx

import (
	"fmt"
	"image"
	"io"

	"github.com/spf13/afero"

	intImage "github.com/gogpu/imagefx/internal/image"
)

// PixelBuffer is a row-major grid of 8-bit samples.
// See internal/image.PixelBuffer for the full method set.
type PixelBuffer = intImage.PixelBuffer

// Format is the pixel layout of a PixelBuffer.
type Format = intImage.Format

// Pixel formats.
const (
	// FormatGray8 is 8-bit grayscale (1 byte per pixel).
	FormatGray8 = intImage.FormatGray8

	// FormatRGB8 is 24-bit RGB (3 bytes per pixel).
	FormatRGB8 = intImage.FormatRGB8
)

// FileFormat identifies an on-disk encoding.
type FileFormat = intImage.FileFormat

// Encodings accepted by Save and Encode.
const (
	FilePNG  = intImage.FilePNG
	FileJPEG = intImage.FileJPEG
	FileBMP  = intImage.FileBMP
	FileTIFF = intImage.FileTIFF
)

// New creates a zeroed buffer with the given dimensions and format.
func New(width, height int, format Format) (*PixelBuffer, error) {
	return intImage.New(width, height, format)
}

// FromRaw wraps existing interleaved samples without copying.
// channels must be 1 (gray) or 3 (R, G, B).
func FromRaw(data []byte, width, height, channels int) (*PixelBuffer, error) {
	format, err := intImage.FormatForChannels(channels)
	if err != nil {
		return nil, err
	}
	return intImage.FromRaw(data, width, height, format)
}

// Load reads and decodes the image file at path.
// Supported formats: PNG, JPEG, GIF, BMP, TIFF, WEBP. The result is always
// FormatRGB8; alpha is dropped.
func Load(path string) (*PixelBuffer, error) {
	return LoadFS(afero.NewOsFs(), path)
}

// LoadFS is Load on an arbitrary filesystem.
func LoadFS(fs afero.Fs, path string) (*PixelBuffer, error) {
	return intImage.Load(fs, path)
}

// Decode decodes an image from r into a FormatRGB8 buffer.
func Decode(r io.Reader) (*PixelBuffer, error) {
	return intImage.Decode(r)
}

// Save encodes b into path, choosing the encoding from the extension.
// Paths without an extension are written as PNG. Missing parent
// directories are created.
func Save(b *PixelBuffer, path string) error {
	return SaveFS(afero.NewOsFs(), b, path)
}

// SaveFS is Save on an arbitrary filesystem.
func SaveFS(fs afero.Fs, b *PixelBuffer, path string) error {
	return intImage.Save(fs, b, path)
}

// Encode writes b to w in the given encoding.
func Encode(w io.Writer, b *PixelBuffer, format FileFormat) error {
	return intImage.Encode(w, b, format)
}

// Thumbnail scales b to fit within maxWidth x maxHeight, preserving the
// aspect ratio. Smaller buffers are returned as a copy.
func Thumbnail(b *PixelBuffer, maxWidth, maxHeight int) (*PixelBuffer, error) {
	return intImage.Thumbnail(b, maxWidth, maxHeight)
}

// FromImage converts a standard library image to a FormatRGB8 buffer.
func FromImage(img image.Image) (*PixelBuffer, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, fmt.Errorf("imagefx: empty image: %w", ErrInvalidInput)
	}
	return intImage.FromStdImage(img), nil
}

// ToImage converts b to a standard library image: *image.Gray for
// FormatGray8 and an opaque *image.NRGBA for FormatRGB8.
func ToImage(b *PixelBuffer) (image.Image, error) {
	if err := intImage.Validate(b); err != nil {
		return nil, err
	}
	return b.ToStdImage(), nil
}
