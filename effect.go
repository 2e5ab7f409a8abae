package imagefx

import (
	"fmt"
	"strings"
	"time"
)

// Effect identifies one of the built-in image effects.
type Effect uint8

const (
	// Sketch renders the image as a grayscale pencil drawing.
	Sketch Effect = iota

	// Cartoon flattens colors and outlines dark structures in black.
	Cartoon

	// DetailEnhance boosts local contrast ("HDR" look).
	DetailEnhance

	// OilPaint collapses each neighbourhood to its dominant intensity.
	OilPaint

	// effectCount is the number of effects (for internal use).
	effectCount
)

// pipeline turns a validated, non-empty input into a new buffer.
type pipeline func(src *PixelBuffer, p *Params) (*PixelBuffer, error)

// effectInfo describes an effect.
type effectInfo struct {
	name  string
	alias string
	run   pipeline
}

// effectTable maps every Effect to its pipeline.
var effectTable = [effectCount]effectInfo{
	Sketch:        {name: "sketch", alias: "sketch", run: sketch},
	Cartoon:       {name: "cartoon", alias: "cartoon", run: cartoon},
	DetailEnhance: {name: "detail-enhance", alias: "hdr", run: detailEnhance},
	OilPaint:      {name: "oil-paint", alias: "oil_painting", run: oilPaint},
}

// IsValid reports whether e is a known effect.
func (e Effect) IsValid() bool {
	return e < effectCount
}

// String returns the canonical effect name, e.g. "oil-paint".
func (e Effect) String() string {
	if !e.IsValid() {
		return fmt.Sprintf("Effect(%d)", uint8(e))
	}
	return effectTable[e].name
}

// Alias returns the alternative name accepted by ParseEffect.
func (e Effect) Alias() string {
	if !e.IsValid() {
		return ""
	}
	return effectTable[e].alias
}

// Effects returns all effects in declaration order.
func Effects() []Effect {
	all := make([]Effect, effectCount)
	for i := range all {
		all[i] = Effect(i)
	}
	return all
}

// ParseEffect resolves an effect by canonical name or alias.
// Matching ignores case, surrounding space, and the difference between
// '-' and '_'.
func ParseEffect(name string) (Effect, error) {
	key := normalizeEffectName(name)
	for e, info := range effectTable {
		if key == info.name || key == normalizeEffectName(info.alias) {
			return Effect(e), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEffect, name)
}

func normalizeEffectName(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
}

// Apply runs effect on img and returns a new buffer of the same size.
//
// img is never modified. It fails with ErrNoImageLoaded if img is nil or
// empty, ErrUnknownEffect if effect is not a declared Effect, and
// ErrInvalidParameter if the parameters given by WithParams are invalid.
// On failure no buffer is returned.
//
// Sketch always returns FormatRGB8. The other effects keep the format of
// img.
func Apply(img *PixelBuffer, effect Effect, opts ...Option) (*PixelBuffer, error) {
	if img.IsEmpty() {
		return nil, ErrNoImageLoaded
	}
	if !effect.IsValid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownEffect, effect)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.params.Validate(); err != nil {
		return nil, fmt.Errorf("imagefx: %v: %w", effect, err)
	}

	start := time.Now()
	out, err := effectTable[effect].run(img, &o.params)
	if err != nil {
		return nil, fmt.Errorf("imagefx: %v: %w", effect, err)
	}

	Logger().Debug("imagefx: effect applied",
		"effect", effect.String(),
		"width", img.Width(),
		"height", img.Height(),
		"format", img.Format().String(),
		"elapsed", time.Since(start))

	return out, nil
}
