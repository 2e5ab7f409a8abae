// Package filter provides the pixel primitives imagefx effects compose from.
//
// Every function reads one or more PixelBuffers and returns a new buffer of
// the same width and height; inputs are never modified. Neighbourhood
// operations replicate edge pixels at the borders.
//
// Primitives:
//   - Grayscale, GrayToRGB, Invert
//   - Gaussian blur and box mean (separable, O(k) per sample)
//   - Median blur (sliding histogram)
//   - Bilateral filter (edge-preserving)
//   - Adaptive mean threshold (binary masks)
//   - Divide (color dodge) and MaskedCopy compositing
//   - DetailEnhance (domain-transform detail boosting)
//   - OilPaint (local intensity mode)
//
// Work is split into row bands on the shared pool in internal/parallel.
package filter
