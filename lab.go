package colorspace

import (
	"fmt"
	"math"
)

// Lab is a CIE L*a*b* color relative to the white point of illuminant W.
// L is in [0, 100] for in-gamut colors, a and b are unbounded opponent axes.
type Lab[W Illuminant, F Float] struct {
	L, A, B F
}

func NewLab[W Illuminant, F Float](l, a, b F) Lab[W, F] {
	return Lab[W, F]{l, a, b}
}

func (c Lab[W, F]) String() string {
	return fmt.Sprintf("Lab{%.4f %.4f %.4f}", float64(c.L), float64(c.A), float64(c.B))
}

// Components returns the raw channel values.
func (c Lab[W, F]) Components() (l, a, b F) { return c.L, c.A, c.B }

// Clamped saturates L to [0, 100]; a and b are unbounded and pass through.
func (c Lab[W, F]) Clamped() Lab[W, F] {
	return Lab[W, F]{Clamp(c.L, 0, 100), c.A, c.B}
}

// labF is the CIELAB forward function, with the linear branch below the
// 6/29 cubed threshold to avoid the infinite derivative at zero.
func labF(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta*delta*delta {
		return math.Cbrt(t)
	}
	return t/(3*delta*delta) + 4.0/29.0
}

// labFinv is the inverse of labF.
func labFinv(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta {
		return t * t * t
	}
	return 3 * delta * delta * (t - 4.0/29.0)
}

// Lab converts the tristimulus value to CIE L*a*b* under the same
// illuminant.
func (c XYZ[W, F]) Lab() Lab[W, F] {
	w := whitePoint[W]()
	fx := labF(float64(c.X) / w[0])
	fy := labF(float64(c.Y) / w[1])
	fz := labF(float64(c.Z) / w[2])
	return Lab[W, F]{
		F(116*fy - 16),
		F(500 * (fx - fy)),
		F(200 * (fy - fz)),
	}
}

// XYZ converts back to the tristimulus hub space under the same illuminant.
func (c Lab[W, F]) XYZ() XYZ[W, F] {
	w := whitePoint[W]()
	fy := (float64(c.L) + 16) / 116
	fx := fy + float64(c.A)/500
	fz := fy - float64(c.B)/200
	return XYZ[W, F]{
		F(labFinv(fx) * w[0]),
		F(labFinv(fy) * w[1]),
		F(labFinv(fz) * w[2]),
	}
}
