package imagefx

import "github.com/gogpu/imagefx/internal/filter"

// dodgeScale is the numerator scale of the color-dodge divide.
const dodgeScale = 256

// sketch divides the grayscale image by its blurred negative (color dodge).
// Flat regions saturate to white and only edges keep pencil strokes.
func sketch(src *PixelBuffer, p *Params) (*PixelBuffer, error) {
	gray, err := filter.Grayscale(src)
	if err != nil {
		return nil, err
	}

	inverted, err := filter.Invert(gray)
	if err != nil {
		return nil, err
	}

	blurred, err := filter.GaussianBlur(inverted, p.GaussianKernel, p.GaussianSigma)
	if err != nil {
		return nil, err
	}

	backdrop, err := filter.Invert(blurred)
	if err != nil {
		return nil, err
	}

	dodged, err := filter.Divide(gray, backdrop, dodgeScale)
	if err != nil {
		return nil, err
	}

	return filter.GrayToRGB(dodged)
}
