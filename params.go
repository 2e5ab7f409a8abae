package imagefx

import (
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Params holds the tunable constants of every effect pipeline.
// The zero value is not usable; start from DefaultParams.
type Params struct {
	// GaussianKernel is the blur size of the Sketch pipeline (odd).
	GaussianKernel int `yaml:"gaussian_kernel"`
	// GaussianSigma is the blur sigma; 0 derives it from GaussianKernel.
	GaussianSigma float64 `yaml:"gaussian_sigma"`

	// MedianKernel is the denoising window of the Cartoon edge mask (odd).
	MedianKernel int `yaml:"median_kernel"`
	// ThresholdBlockSize is the local-mean window of the edge mask (odd, > 1).
	ThresholdBlockSize int `yaml:"threshold_block_size"`
	// ThresholdOffset is how far below the local mean a pixel must fall to
	// count as an edge.
	ThresholdOffset float64 `yaml:"threshold_offset"`

	// BilateralDiameter is the Cartoon smoothing window; 0 derives it from
	// BilateralSpaceSigma.
	BilateralDiameter   int     `yaml:"bilateral_diameter"`
	BilateralColorSigma float64 `yaml:"bilateral_color_sigma"`
	BilateralSpaceSigma float64 `yaml:"bilateral_space_sigma"`

	DetailSigmaSpace float64 `yaml:"detail_sigma_space"`
	DetailSigmaRange float64 `yaml:"detail_sigma_range"`
	// DetailGain multiplies the detail layer; 1 leaves the image unchanged.
	DetailGain float64 `yaml:"detail_gain"`

	OilRadius int `yaml:"oil_radius"`
	// OilDynRatio divides intensities into bins; 1 keeps all 256 levels.
	OilDynRatio int `yaml:"oil_dyn_ratio"`
}

// DefaultParams returns the parameters the effects use unless overridden.
func DefaultParams() Params {
	return Params{
		GaussianKernel:      21,
		GaussianSigma:       0,
		MedianKernel:        5,
		ThresholdBlockSize:  9,
		ThresholdOffset:     9,
		BilateralDiameter:   9,
		BilateralColorSigma: 300,
		BilateralSpaceSigma: 300,
		DetailSigmaSpace:    12,
		DetailSigmaRange:    0.15,
		DetailGain:          3,
		OilRadius:           7,
		OilDynRatio:         1,
	}
}

// Validate checks every field and reports the first invalid one.
// Float fields must be finite. Failures wrap ErrInvalidParameter.
func (p Params) Validate() error {
	floats := []struct {
		name string
		v    float64
	}{
		{"gaussian_sigma", p.GaussianSigma},
		{"threshold_offset", p.ThresholdOffset},
		{"bilateral_color_sigma", p.BilateralColorSigma},
		{"bilateral_space_sigma", p.BilateralSpaceSigma},
		{"detail_sigma_space", p.DetailSigmaSpace},
		{"detail_sigma_range", p.DetailSigmaRange},
		{"detail_gain", p.DetailGain},
	}
	for _, f := range floats {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return invalidParam(f.name, f.v, "must be finite")
		}
	}

	switch {
	case !oddPositive(p.GaussianKernel):
		return invalidParam("gaussian_kernel", p.GaussianKernel, "must be odd and positive")
	case p.GaussianSigma < 0:
		return invalidParam("gaussian_sigma", p.GaussianSigma, "must not be negative")
	case !oddPositive(p.MedianKernel):
		return invalidParam("median_kernel", p.MedianKernel, "must be odd and positive")
	case !oddPositive(p.ThresholdBlockSize) || p.ThresholdBlockSize < 3:
		return invalidParam("threshold_block_size", p.ThresholdBlockSize, "must be odd and at least 3")
	case p.BilateralDiameter < 0:
		return invalidParam("bilateral_diameter", p.BilateralDiameter, "must not be negative")
	case p.BilateralColorSigma <= 0:
		return invalidParam("bilateral_color_sigma", p.BilateralColorSigma, "must be positive")
	case p.BilateralSpaceSigma <= 0:
		return invalidParam("bilateral_space_sigma", p.BilateralSpaceSigma, "must be positive")
	case p.DetailSigmaSpace <= 0:
		return invalidParam("detail_sigma_space", p.DetailSigmaSpace, "must be positive")
	case p.DetailSigmaRange <= 0:
		return invalidParam("detail_sigma_range", p.DetailSigmaRange, "must be positive")
	case p.DetailGain < 0:
		return invalidParam("detail_gain", p.DetailGain, "must not be negative")
	case p.OilRadius < 1:
		return invalidParam("oil_radius", p.OilRadius, "must be at least 1")
	case p.OilDynRatio < 1:
		return invalidParam("oil_dyn_ratio", p.OilDynRatio, "must be at least 1")
	}
	return nil
}

func oddPositive(v int) bool {
	return v > 0 && v%2 == 1
}

func invalidParam(name string, v any, reason string) error {
	return fmt.Errorf("imagefx: %s %v %s: %w", name, v, reason, ErrInvalidParameter)
}

// LoadParams reads YAML parameters from path on fs.
// Keys missing from the file keep their DefaultParams value; unknown keys
// are an error. The result is validated.
//
// Example file:
//
//	gaussian_kernel: 31
//	oil_radius: 4
//	oil_dyn_ratio: 8
func LoadParams(fs afero.Fs, path string) (Params, error) {
	f, err := fs.Open(filepath.Clean(path))
	if err != nil {
		return Params{}, fmt.Errorf("imagefx: open params: %w", err)
	}
	defer func() { _ = f.Close() }()

	return decodeParams(f)
}

func decodeParams(r io.Reader) (Params, error) {
	p := DefaultParams()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Params{}, fmt.Errorf("imagefx: parse params: %w", err)
	}

	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}
