package imagefx

import "github.com/gogpu/imagefx/internal/filter"

func detailEnhance(src *PixelBuffer, p *Params) (*PixelBuffer, error) {
	return filter.DetailEnhance(src, p.DetailSigmaSpace, p.DetailSigmaRange, p.DetailGain)
}
