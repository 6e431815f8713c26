package colorspace

import (
	"fmt"
	"math"
)

// HSV is the hue/saturation/value encoding of gamma RGB under model Std.
// Hue is in [0, 360), saturation and value in [0, 1]. Achromatic colors get
// the canonical hue 0 and saturation 0; pure black additionally has value 0.
type HSV[Std RGBModel, F Float] struct {
	H, S, V F
}

func NewHSV[Std RGBModel, F Float](h, s, v F) HSV[Std, F] {
	return HSV[Std, F]{NormalizeHue(h), s, v}
}

func (c HSV[Std, F]) String() string {
	return fmt.Sprintf("HSV(%s){%.2f %.6f %.6f}", modelData[Std]().Name, float64(c.H), float64(c.S), float64(c.V))
}

// Components returns the raw channel values.
func (c HSV[Std, F]) Components() (h, s, v F) { return c.H, c.S, c.V }

// Clamped saturates saturation and value to [0, 1] and normalizes hue.
func (c HSV[Std, F]) Clamped() HSV[Std, F] {
	return HSV[Std, F]{NormalizeHue(c.H), Clamp01(c.S), Clamp01(c.V)}
}

// HSV converts to hue/saturation/value.
func (c RGB[Std, F]) HSV() HSV[Std, F] {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)
	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	if delta == 0 {
		return HSV[Std, F]{0, 0, F(maxVal)}
	}
	// maxVal > 0 because delta > 0
	return HSV[Std, F]{F(rgbToHue(r, g, b, maxVal, delta)), F(delta / maxVal), F(maxVal)}
}

// RGB converts back to gamma encoded RGB.
func (c HSV[Std, F]) RGB() RGB[Std, F] {
	h, s, v := float64(NormalizeHue(c.H)), float64(c.S), float64(c.V)
	if s == 0 {
		return RGB[Std, F]{F(v), F(v), F(v)}
	}
	chroma := v * s
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - chroma

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = chroma, x, 0
	case h < 120:
		r, g, b = x, chroma, 0
	case h < 180:
		r, g, b = 0, chroma, x
	case h < 240:
		r, g, b = 0, x, chroma
	case h < 300:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}
	return RGB[Std, F]{F(r + m), F(g + m), F(b + m)}
}
