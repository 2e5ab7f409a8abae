package image

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WEBP decoder
)

// I/O errors.
var (
	// ErrDecode is returned when image data cannot be decoded.
	ErrDecode = errors.New("image: decode failed")

	// ErrEncode is returned when a buffer cannot be encoded.
	ErrEncode = errors.New("image: encode failed")
)

// DefaultJPEGQuality is the quality used when saving JPEG files.
const DefaultJPEGQuality = 95

// FileFormat identifies an on-disk encoding.
type FileFormat uint8

// Supported encodings.
const (
	FilePNG FileFormat = iota
	FileJPEG
	FileBMP
	FileTIFF
)

// String returns the lowercase format name.
func (f FileFormat) String() string {
	switch f {
	case FilePNG:
		return "png"
	case FileJPEG:
		return "jpeg"
	case FileBMP:
		return "bmp"
	case FileTIFF:
		return "tiff"
	default:
		return fmt.Sprintf("FileFormat(%d)", uint8(f))
	}
}

// FileFormatFromPath picks an encoding from the file extension.
// A path without extension maps to PNG.
func FileFormatFromPath(path string) (FileFormat, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case "", ".png":
		return FilePNG, nil
	case ".jpg", ".jpeg":
		return FileJPEG, nil
	case ".bmp":
		return FileBMP, nil
	case ".tif", ".tiff":
		return FileTIFF, nil
	default:
		return 0, fmt.Errorf("image: extension %q: %w", ext, ErrUnsupportedFormat)
	}
}

// Load reads and decodes the image at path from fs.
// Supported formats: PNG, JPEG, GIF, BMP, TIFF, WEBP.
func Load(fs afero.Fs, path string) (*PixelBuffer, error) {
	f, err := fs.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode decodes an image from r, auto-detecting the format, and converts it
// to FormatRGB8. Alpha is discarded without premultiplying.
func Decode(r io.Reader) (*PixelBuffer, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: empty image", ErrDecode)
	}
	return FromStdImage(img), nil
}

// Save encodes b into path on fs, choosing the encoding from the extension.
func Save(fs afero.Fs, b *PixelBuffer, path string) error {
	if err := Validate(b); err != nil {
		return err
	}
	format, err := FileFormatFromPath(path)
	if err != nil {
		return err
	}

	path = filepath.Clean(path)
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("image: create directory: %w", err)
	}

	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := Encode(f, b, format); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Encode writes b to w in the given encoding.
func Encode(w io.Writer, b *PixelBuffer, format FileFormat) error {
	if err := Validate(b); err != nil {
		return err
	}

	img := b.ToStdImage()
	var err error
	switch format {
	case FilePNG:
		err = png.Encode(w, img)
	case FileJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: DefaultJPEGQuality})
	case FileBMP:
		err = bmp.Encode(w, img)
	case FileTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("image: %v: %w", format, ErrUnsupportedFormat)
	}
	if err != nil {
		return fmt.Errorf("%w: %v: %w", ErrEncode, format, err)
	}
	return nil
}

// FromStdImage creates a FormatRGB8 buffer from a standard library image.
// The image must have a non-empty bounds rectangle.
func FromStdImage(img image.Image) *PixelBuffer {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	nrgba, ok := img.(*image.NRGBA)
	if !ok || bounds.Min != (image.Point{}) {
		// x/image/draw handles every color model, including YCbCr and paletted.
		nrgba = image.NewNRGBA(image.Rect(0, 0, width, height))
		xdraw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, xdraw.Src)
	}

	buf := &PixelBuffer{
		data:   make([]byte, width*height*3),
		width:  width,
		height: height,
		format: FormatRGB8,
	}

	for y := range height {
		src := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+width*4]
		dst := buf.data[y*width*3 : (y+1)*width*3]
		for x := range width {
			dst[x*3+0] = src[x*4+0]
			dst[x*3+1] = src[x*4+1]
			dst[x*3+2] = src[x*4+2]
		}
	}

	return buf
}

// ToStdImage converts the buffer to a standard library image.
// FormatGray8 becomes *image.Gray, FormatRGB8 becomes an opaque *image.NRGBA.
func (b *PixelBuffer) ToStdImage() image.Image {
	if b.format == FormatGray8 {
		gray := image.NewGray(b.Bounds())
		copy(gray.Pix, b.data)
		return gray
	}

	nrgba := image.NewNRGBA(b.Bounds())
	for i, j := 0, 0; i < len(b.data); i, j = i+3, j+4 {
		nrgba.Pix[j+0] = b.data[i+0]
		nrgba.Pix[j+1] = b.data[i+1]
		nrgba.Pix[j+2] = b.data[i+2]
		nrgba.Pix[j+3] = 255
	}
	return nrgba
}
