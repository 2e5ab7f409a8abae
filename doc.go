// Package imagefx applies stylized effects to raster images.
//
// # Overview
//
// imagefx is a pure Go image effect library. Four effects are provided:
//
//   - [Sketch]: pencil drawing built from a color-dodge divide of the
//     grayscale image by its blurred negative.
//   - [Cartoon]: edge-preserving smoothing with dark outlines taken from an
//     adaptive threshold of the median-filtered luminance.
//   - [DetailEnhance]: local contrast boost over an edge-aware base layer.
//   - [OilPaint]: each pixel takes the average color of the dominant
//     intensity in its neighbourhood.
//
// # Quick Start
//
//	import "github.com/gogpu/imagefx"
//
//	img, err := imagefx.Load("photo.jpg")
//	if err != nil {
//	    return err
//	}
//
//	out, err := imagefx.Apply(img, imagefx.Cartoon)
//	if err != nil {
//	    return err
//	}
//
//	return imagefx.Save(out, "photo_cartoon.png")
//
// # Buffers
//
// A [PixelBuffer] holds 8-bit samples in row-major, channel-interleaved
// order, either one channel (gray) or three (R, G, B). Effects never modify
// their input; each call returns a new buffer of the same width and height.
// Pixels beyond the border replicate the nearest edge pixel.
//
// # Concurrency
//
// Effects hold no state between calls and may be applied from many
// goroutines at once. Inside a call, rows are split into bands that run on a
// shared work-stealing pool.
//
// # Parameters
//
// Kernel sizes and sigmas default to the values in [DefaultParams]. They can
// be overridden per call with [WithParams], or read from YAML with
// [LoadParams].
package imagefx

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
