package colorspace

import (
	"fmt"
)

// XYZ is a CIE 1931 tristimulus value relative to the white point of
// illuminant W, normalized so that the white point has Y = 1. XYZ is the hub
// space: every other space converts to and from it, and an A -> B conversion
// is the composition A -> XYZ -> B.
type XYZ[W Illuminant, F Float] struct {
	X, Y, Z F
}

func NewXYZ[W Illuminant, F Float](x, y, z F) XYZ[W, F] {
	return XYZ[W, F]{x, y, z}
}

func (c XYZ[W, F]) String() string {
	return fmt.Sprintf("XYZ{%.6f %.6f %.6f}", float64(c.X), float64(c.Y), float64(c.Z))
}

// Components returns the raw channel values.
func (c XYZ[W, F]) Components() (x, y, z F) {
	return c.X, c.Y, c.Z
}

func (c XYZ[W, F]) vec() Vec3 {
	return Vec3{float64(c.X), float64(c.Y), float64(c.Z)}
}

func xyzFromVec[W Illuminant, F Float](x, y, z float64) XYZ[W, F] {
	return XYZ[W, F]{F(x), F(y), F(z)}
}

// WhiteXYZ returns the white point of illuminant W as an XYZ value.
func WhiteXYZ[W Illuminant, F Float]() XYZ[W, F] {
	w := whitePoint[W]()
	return XYZ[W, F]{F(w[0]), F(w[1]), F(w[2])}
}

// AdaptXYZ maps c into the white point of illuminant To using Bradford
// chromatic adaptation. Adapting between identical illuminants is the
// identity.
func AdaptXYZ[To, From Illuminant, F Float](c XYZ[From, F]) XYZ[To, F] {
	from, to := whitePoint[From](), whitePoint[To]()
	if from == to {
		return XYZ[To, F]{c.X, c.Y, c.Z}
	}
	x, y, z := mulMat3Vec(adaptationMatrix(from, to), c.vec())
	return xyzFromVec[To, F](x, y, z)
}
