package colorspace

import (
	"fmt"
	"math"
)

// HSL is the hue/saturation/lightness encoding of gamma RGB under model Std.
// Hue is in [0, 360), saturation and lightness in [0, 1]. The transform is
// the usual hexagonal one over six 60 degree sectors; an achromatic color
// has saturation 0 and the canonical hue 0.
type HSL[Std RGBModel, F Float] struct {
	H, S, L F
}

func NewHSL[Std RGBModel, F Float](h, s, l F) HSL[Std, F] {
	return HSL[Std, F]{NormalizeHue(h), s, l}
}

func (c HSL[Std, F]) String() string {
	return fmt.Sprintf("HSL(%s){%.2f %.6f %.6f}", modelData[Std]().Name, float64(c.H), float64(c.S), float64(c.L))
}

// Components returns the raw channel values.
func (c HSL[Std, F]) Components() (h, s, l F) { return c.H, c.S, c.L }

// Clamped saturates saturation and lightness to [0, 1] and normalizes hue.
func (c HSL[Std, F]) Clamped() HSL[Std, F] {
	return HSL[Std, F]{NormalizeHue(c.H), Clamp01(c.S), Clamp01(c.L)}
}

// rgbToHue computes the hexagonal hue in [0, 360) given the channel maximum
// and the max-min delta. delta must be non-zero.
func rgbToHue(r, g, b, maxVal, delta float64) float64 {
	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	return h * 60
}

// HSL converts to hue/saturation/lightness.
func (c RGB[Std, F]) HSL() HSL[Std, F] {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)
	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l := (maxVal + minVal) / 2
	if delta == 0 {
		// achromatic: hue undefined, use the canonical 0
		return HSL[Std, F]{0, 0, F(l)}
	}
	var s float64
	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2 - maxVal - minVal)
	}
	return HSL[Std, F]{F(rgbToHue(r, g, b, maxVal, delta)), F(s), F(l)}
}

// RGB converts back to gamma encoded RGB.
func (c HSL[Std, F]) RGB() RGB[Std, F] {
	h, s, l := float64(NormalizeHue(c.H)), float64(c.S), float64(c.L)
	if s == 0 {
		return RGB[Std, F]{F(l), F(l), F(l)}
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return RGB[Std, F]{
		F(hueToRGB(p, q, h+120)),
		F(hueToRGB(p, q, h)),
		F(hueToRGB(p, q, h-120)),
	}
}

// hueToRGB is the per-channel helper for the HSL to RGB transform. t is a
// hue offset in degrees.
func hueToRGB(p, q, t float64) float64 {
	for t < 0 {
		t += 360
	}
	for t >= 360 {
		t -= 360
	}
	switch {
	case t < 60:
		return p + (q-p)*t/60
	case t < 180:
		return q
	case t < 240:
		return p + (q-p)*(240-t)/60
	}
	return p
}
