package colorspace

import (
	"fmt"
)

// Yxy is the CIE xyY encoding: luminance Y plus the (x, y) chromaticity
// coordinate. Black (X = Y = Z = 0) has no defined chromaticity and is given
// the chromaticity of the reference white, so it round-trips to black.
type Yxy[W Illuminant, F Float] struct {
	Y      F // luminance
	Cx, Cy F // chromaticity
}

func NewYxy[W Illuminant, F Float](y, cx, cy F) Yxy[W, F] {
	return Yxy[W, F]{y, cx, cy}
}

func (c Yxy[W, F]) String() string {
	return fmt.Sprintf("Yxy{%.6f %.6f %.6f}", float64(c.Y), float64(c.Cx), float64(c.Cy))
}

// Components returns luminance and the chromaticity coordinates.
func (c Yxy[W, F]) Components() (y, cx, cy F) { return c.Y, c.Cx, c.Cy }

// Yxy converts the tristimulus value to xyY under the same illuminant.
func (c XYZ[W, F]) Yxy() Yxy[W, F] {
	x, y, z := float64(c.X), float64(c.Y), float64(c.Z)
	s := x + y + z
	if s == 0 {
		w := whitePoint[W]()
		ws := w[0] + w[1] + w[2]
		return Yxy[W, F]{0, F(w[0] / ws), F(w[1] / ws)}
	}
	return Yxy[W, F]{F(y), F(x / s), F(y / s)}
}

// XYZ converts back to the tristimulus hub space under the same illuminant.
func (c Yxy[W, F]) XYZ() XYZ[W, F] {
	y, cx, cy := float64(c.Y), float64(c.Cx), float64(c.Cy)
	if cy == 0 {
		// zero chromaticity denominator carries no light
		return XYZ[W, F]{}
	}
	return XYZ[W, F]{
		F(cx * y / cy),
		F(y),
		F((1 - cx - cy) * y / cy),
	}
}
