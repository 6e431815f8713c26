package colorspace

import (
	"fmt"
)

// Luv is a CIE L*u*v* color relative to the white point of illuminant W.
// L matches the CIELAB lightness scale; u and v are unbounded.
type Luv[W Illuminant, F Float] struct {
	L, U, V F
}

func NewLuv[W Illuminant, F Float](l, u, v F) Luv[W, F] {
	return Luv[W, F]{l, u, v}
}

func (c Luv[W, F]) String() string {
	return fmt.Sprintf("Luv{%.4f %.4f %.4f}", float64(c.L), float64(c.U), float64(c.V))
}

// Components returns the raw channel values.
func (c Luv[W, F]) Components() (l, u, v F) { return c.L, c.U, c.V }

// Clamped saturates L to [0, 100]; u and v pass through.
func (c Luv[W, F]) Clamped() Luv[W, F] {
	return Luv[W, F]{Clamp(c.L, 0, 100), c.U, c.V}
}

// uvPrime computes the CIE 1976 u'v' chromaticity of an XYZ triple. The
// denominator is zero only for X = Y = Z = 0; that case returns the
// chromaticity of the reference white so black stays achromatic.
func uvPrime(x, y, z float64, white Vec3) (up, vp float64) {
	d := x + 15*y + 3*z
	if d == 0 {
		x, y, z = white[0], white[1], white[2]
		d = x + 15*y + 3*z
	}
	return 4 * x / d, 9 * y / d
}

// Luv converts the tristimulus value to CIE L*u*v* under the same
// illuminant.
func (c XYZ[W, F]) Luv() Luv[W, F] {
	w := whitePoint[W]()
	x, y, z := float64(c.X), float64(c.Y), float64(c.Z)
	up, vp := uvPrime(x, y, z, w)
	upn, vpn := uvPrime(w[0], w[1], w[2], w)

	l := 116*labF(y/w[1]) - 16
	return Luv[W, F]{
		F(l),
		F(13 * l * (up - upn)),
		F(13 * l * (vp - vpn)),
	}
}

// XYZ converts back to the tristimulus hub space under the same illuminant.
func (c Luv[W, F]) XYZ() XYZ[W, F] {
	w := whitePoint[W]()
	l, u, v := float64(c.L), float64(c.U), float64(c.V)
	if l == 0 {
		return XYZ[W, F]{}
	}
	upn, vpn := uvPrime(w[0], w[1], w[2], w)
	up := u/(13*l) + upn
	vp := v/(13*l) + vpn

	y := labFinv((l+16)/116) * w[1]
	if vp == 0 {
		return XYZ[W, F]{0, F(y), 0}
	}
	x := y * 9 * up / (4 * vp)
	z := y * (12 - 3*up - 20*vp) / (4 * vp)
	return XYZ[W, F]{F(x), F(y), F(z)}
}
