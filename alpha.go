package colorspace

import (
	"fmt"
)

// RGBA is gamma encoded RGB with a straight (non-premultiplied) alpha
// channel in [0, 1]. Straight alpha is the convention throughout this
// package; premultiplication is something image pipelines do at their edges
// (see the convert subpackage).
type RGBA[Std RGBModel, F Float] struct {
	R, G, B, A F
}

func NewRGBA[Std RGBModel, F Float](r, g, b, a F) RGBA[Std, F] {
	return RGBA[Std, F]{r, g, b, a}
}

// Opaque wraps an RGB color with full opacity.
func (c RGB[Std, F]) Opaque() RGBA[Std, F] {
	return RGBA[Std, F]{c.R, c.G, c.B, 1}
}

// WithAlpha wraps an RGB color with the given alpha.
func (c RGB[Std, F]) WithAlpha(a F) RGBA[Std, F] {
	return RGBA[Std, F]{c.R, c.G, c.B, a}
}

// Color drops the alpha channel.
func (c RGBA[Std, F]) Color() RGB[Std, F] {
	return RGB[Std, F]{c.R, c.G, c.B}
}

func (c RGBA[Std, F]) String() string {
	return fmt.Sprintf("RGBA(%s){%.6f %.6f %.6f %.6f}",
		modelData[Std]().Name, float64(c.R), float64(c.G), float64(c.B), float64(c.A))
}

// Hex formats the color as "#RRGGBBAA", clipping to the displayable range.
func (c RGBA[Std, F]) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", To8Bit(c.R), To8Bit(c.G), To8Bit(c.B), To8Bit(c.A))
}

// RGBA implements image/color.Color, premultiplying as that interface
// requires.
func (c RGBA[Std, F]) RGBA() (r, g, b, a uint32) {
	af := Clamp01(float64(c.A))
	r = uint32(Clamp01(float64(c.R))*af*65535 + 0.5)
	g = uint32(Clamp01(float64(c.G))*af*65535 + 0.5)
	b = uint32(Clamp01(float64(c.B))*af*65535 + 0.5)
	a = uint32(af*65535 + 0.5)
	return
}

// Clamped saturates all components to [0, 1].
func (c RGBA[Std, F]) Clamped() RGBA[Std, F] {
	return RGBA[Std, F]{Clamp01(c.R), Clamp01(c.G), Clamp01(c.B), Clamp01(c.A)}
}

// Over composites c over bottom with the standard "over" operator on
// straight alpha. A fully opaque top color is returned unchanged.
func (c RGBA[Std, F]) Over(bottom RGBA[Std, F]) RGBA[Std, F] {
	at := float64(c.A)
	if at >= 1 {
		return c
	}
	ab := float64(bottom.A)
	a := at + ab*(1-at)
	if a == 0 {
		return RGBA[Std, F]{}
	}
	blend := func(t, b F) F {
		return F((float64(t)*at + float64(b)*ab*(1-at)) / a)
	}
	return RGBA[Std, F]{
		blend(c.R, bottom.R),
		blend(c.G, bottom.G),
		blend(c.B, bottom.B),
		F(a),
	}
}
