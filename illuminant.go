package colorspace

import (
	"sync"
)

// Illuminant is a zero-sized phantom tag identifying the reference white
// point a color value is defined against. Values tagged with different
// illuminants are distinct types; AdaptXYZ performs the explicit chromatic
// adaptation between them.
type Illuminant interface {
	WhitePoint() Vec3
}

// Standard reference whites (CIE XYZ) normalized so Y = 1.0.
// Note that whiteD50 uses the Z value from the ICC spec rather than the CIE
// spec.
var (
	whiteD65 = Vec3{0.95047, 1.00000, 1.08883}
	whiteD50 = Vec3{0.96422, 1.00000, 0.82491}
	whiteA   = Vec3{1.09850, 1.00000, 0.35585}
	whiteC   = Vec3{0.98074, 1.00000, 1.18232}
	whiteE   = Vec3{1.00000, 1.00000, 1.00000}
)

// D65 is the standard daylight illuminant used by sRGB and friends.
type D65 struct{}

// D50 is the ICC profile connection space illuminant.
type D50 struct{}

// A is the incandescent/tungsten illuminant.
type A struct{}

// C is the obsolete average-daylight illuminant, kept for legacy data.
type C struct{}

// E is the equal-energy illuminant.
type E struct{}

func (D65) WhitePoint() Vec3 { return whiteD65 }
func (D50) WhitePoint() Vec3 { return whiteD50 }
func (A) WhitePoint() Vec3   { return whiteA }
func (C) WhitePoint() Vec3   { return whiteC }
func (E) WhitePoint() Vec3   { return whiteE }

func whitePoint[W Illuminant]() Vec3 {
	var w W
	return w.WhitePoint()
}

var identityMat3 = Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

var adaptCache sync.Map // [2]Vec3 -> Mat3

// adaptationMatrix returns the Bradford matrix mapping XYZ relative to from
// into XYZ relative to to, computing it at most once per white point pair.
func adaptationMatrix(from, to Vec3) Mat3 {
	if from == to {
		return identityMat3
	}
	key := [2]Vec3{from, to}
	if v, ok := adaptCache.Load(key); ok {
		return v.(Mat3)
	}
	m := chromaticAdaptationMatrix(from, to)
	adaptCache.Store(key, m)
	return m
}
