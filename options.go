package imagefx

// Option configures a single Apply call.
//
// Example:
//
//	p := imagefx.DefaultParams()
//	p.OilRadius = 3
//	out, err := imagefx.Apply(img, imagefx.OilPaint, imagefx.WithParams(p))
type Option func(*applyOptions)

// applyOptions holds optional configuration for Apply.
type applyOptions struct {
	params Params
}

// defaultOptions returns the options used when Apply receives none.
func defaultOptions() applyOptions {
	return applyOptions{
		params: DefaultParams(),
	}
}

// WithParams replaces the pipeline parameters for the call.
// The parameters are validated before any pixel is processed.
func WithParams(p Params) Option {
	return func(o *applyOptions) {
		o.params = p
	}
}
