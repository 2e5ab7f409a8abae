package imagefx

import "github.com/gogpu/imagefx/internal/filter"

func oilPaint(src *PixelBuffer, p *Params) (*PixelBuffer, error) {
	return filter.OilPaint(src, p.OilRadius, p.OilDynRatio)
}
