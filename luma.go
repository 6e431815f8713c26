package colorspace

import (
	"fmt"
)

// Luma is a single-channel gray value under RGB model Std, stored gamma
// encoded with the model's transfer function. Its linear form is the
// relative luminance Y, computed with the model's own luminance
// coefficients (the Y row of the derived RGB -> XYZ matrix), not fixed
// Rec. 709 weights.
type Luma[Std RGBModel, F Float] struct {
	V F
}

func NewLuma[Std RGBModel, F Float](v F) Luma[Std, F] {
	return Luma[Std, F]{v}
}

func (c Luma[Std, F]) String() string {
	return fmt.Sprintf("Luma(%s){%.6f}", modelData[Std]().Name, float64(c.V))
}

// Clamped saturates to [0, 1].
func (c Luma[Std, F]) Clamped() Luma[Std, F] {
	return Luma[Std, F]{Clamp01(c.V)}
}

// Luminance returns the linear relative luminance of a linear RGB color.
func (c LinearRGB[Std, F]) Luminance() F {
	m := modelData[Std]()
	fwd, _ := m.Matrices()
	return F(fwd[1][0]*float64(c.R) + fwd[1][1]*float64(c.G) + fwd[1][2]*float64(c.B))
}

// Luminance returns the linear relative luminance of a gamma encoded RGB
// color, as used for WCAG contrast.
func (c RGB[Std, F]) Luminance() F {
	return c.Linear().Luminance()
}

// Luma converts to encoded gray, preserving perceived lightness via the
// luminance of the linear form.
func (c RGB[Std, F]) Luma() Luma[Std, F] {
	m := modelData[Std]()
	return Luma[Std, F]{F(m.Encode(float64(c.Luminance())))}
}

// RGB expands gray to RGB by replication.
func (c Luma[Std, F]) RGB() RGB[Std, F] {
	return RGB[Std, F]{c.V, c.V, c.V}
}

// Linear removes the gamma encoding.
func (c Luma[Std, F]) Linear() F {
	return F(modelData[Std]().Decode(float64(c.V)))
}
