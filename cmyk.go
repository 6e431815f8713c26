package colorspace

import (
	"fmt"
)

// CMYK is the textbook subtractive cyan/magenta/yellow/black encoding of
// gamma RGB under model Std, with all components in [0, 1]. Pure black
// (K = 1) has undefined CMY; the convention is C = M = Y = 0 there.
type CMYK[Std RGBModel, F Float] struct {
	C, M, Y, K F
}

func NewCMYK[Std RGBModel, F Float](c, m, y, k F) CMYK[Std, F] {
	return CMYK[Std, F]{c, m, y, k}
}

func (c CMYK[Std, F]) String() string {
	return fmt.Sprintf("CMYK(%s){%.6f %.6f %.6f %.6f}",
		modelData[Std]().Name, float64(c.C), float64(c.M), float64(c.Y), float64(c.K))
}

// Components returns the raw channel values.
func (c CMYK[Std, F]) Components() (cy, m, y, k F) { return c.C, c.M, c.Y, c.K }

// Clamped saturates each component to [0, 1].
func (c CMYK[Std, F]) Clamped() CMYK[Std, F] {
	return CMYK[Std, F]{Clamp01(c.C), Clamp01(c.M), Clamp01(c.Y), Clamp01(c.K)}
}

// CMYK converts gamma encoded RGB to the subtractive model.
func (c RGB[Std, F]) CMYK() CMYK[Std, F] {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)
	w := max(r, max(g, b))
	if w == 0 {
		// pure black: avoid dividing by zero, CMY is 0 by convention
		return CMYK[Std, F]{0, 0, 0, 1}
	}
	k := 1 - w
	return CMYK[Std, F]{
		F((w - r) / w),
		F((w - g) / w),
		F((w - b) / w),
		F(k),
	}
}

// RGB converts back to gamma encoded RGB.
func (c CMYK[Std, F]) RGB() RGB[Std, F] {
	cy, m, y, k := float64(c.C), float64(c.M), float64(c.Y), float64(c.K)
	w := 1 - k
	return RGB[Std, F]{
		F((1 - cy) * w),
		F((1 - m) * w),
		F((1 - y) * w),
	}
}
