package imagefx

import "github.com/gogpu/imagefx/internal/filter"

// cartoon smooths colors with a bilateral filter and blacks out the pixels
// that the edge mask rejects.
func cartoon(src *PixelBuffer, p *Params) (*PixelBuffer, error) {
	mask, err := cartoonMask(src, p)
	if err != nil {
		return nil, err
	}

	smooth, err := filter.Bilateral(src, p.BilateralDiameter, p.BilateralColorSigma, p.BilateralSpaceSigma)
	if err != nil {
		return nil, err
	}

	return filter.MaskedCopy(smooth, mask)
}

// cartoonMask returns a Gray8 mask that is 0 on dark structures and 255 on
// flat regions.
func cartoonMask(src *PixelBuffer, p *Params) (*PixelBuffer, error) {
	gray, err := filter.Grayscale(src)
	if err != nil {
		return nil, err
	}

	denoised, err := filter.MedianBlur(gray, p.MedianKernel)
	if err != nil {
		return nil, err
	}

	return filter.AdaptiveThreshold(denoised, 255, p.ThresholdBlockSize, p.ThresholdOffset)
}
