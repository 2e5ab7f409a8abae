package imagefx

import (
	"errors"
	"fmt"

	intImage "github.com/gogpu/imagefx/internal/image"
)

// Errors returned by imagefx. They are shared with the internal packages so
// errors.Is matches regardless of which layer reported the failure.
var (
	// ErrInvalidInput is returned for nil or empty buffers.
	ErrInvalidInput = intImage.ErrInvalidInput

	// ErrNoImageLoaded is returned by Apply when no image is given.
	// It matches ErrInvalidInput.
	ErrNoImageLoaded = fmt.Errorf("imagefx: no image loaded: %w", ErrInvalidInput)

	// ErrUnsupportedFormat is returned for buffers with a channel count an
	// operation cannot handle, and for unknown file extensions.
	ErrUnsupportedFormat = intImage.ErrUnsupportedFormat

	// ErrInvalidParameter is returned for invalid kernel sizes, sigmas and
	// other effect parameters.
	ErrInvalidParameter = intImage.ErrInvalidParameter

	// ErrSizeMismatch is returned when combined buffers differ in size.
	ErrSizeMismatch = intImage.ErrSizeMismatch

	// ErrDecode is returned when image data cannot be decoded.
	ErrDecode = intImage.ErrDecode

	// ErrEncode is returned when a buffer cannot be encoded.
	ErrEncode = intImage.ErrEncode

	// ErrUnknownEffect is returned for Effect values outside the enumeration
	// and for names ParseEffect does not recognise.
	ErrUnknownEffect = errors.New("imagefx: unknown effect")
)
