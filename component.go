package colorspace

import (
	"fmt"
	"math"
)

var _ = fmt.Print

// Float is the constraint satisfied by the scalar types usable as channel
// components. At least single precision is assumed.
type Float interface {
	~float32 | ~float64
}

// Role describes how a channel is interpreted, which determines its valid
// range.
type Role int

const (
	// Unit channels are normalized to [0, 1] (RGB, saturation, CMYK, alpha).
	Unit Role = iota
	// HueDegrees channels are cyclic angles normalized to [0, 360).
	HueDegrees
	// Lightness channels follow the CIE L* encoding in [0, 100].
	Lightness
	// Chroma channels are non-negative magnitudes with no upper bound.
	Chroma
	// Unbounded channels have no defined range (XYZ, Lab a/b, Luv u/v).
	Unbounded
)

// Bounds reports the valid range for a channel role. For cyclic and
// unbounded roles the returned limits are the conventional normalization
// range, not hard limits.
func (r Role) Bounds() (lo, hi float64) {
	switch r {
	case Unit:
		return 0, 1
	case HueDegrees:
		return 0, 360
	case Lightness:
		return 0, 100
	case Chroma:
		return 0, math.Inf(1)
	default:
		return math.Inf(-1), math.Inf(1)
	}
}

// Clamp saturates v to [lo, hi]. It is total and idempotent.
func Clamp[F Float](v, lo, hi F) F {
	return max(lo, min(v, hi))
}

// Clamp01 saturates v to the unit range.
func Clamp01[F Float](v F) F {
	return max(0, min(v, 1))
}

// ClampRole saturates v to the bounds of role. Cyclic roles are normalized,
// not clamped.
func ClampRole[F Float](v F, role Role) F {
	if role == HueDegrees {
		return NormalizeHue(v)
	}
	lo, hi := role.Bounds()
	return Clamp(v, F(lo), F(hi))
}

// ComponentCast converts a channel value between component scalar types,
// preserving relative magnitude.
func ComponentCast[To, From Float](v From) To {
	return To(v)
}

// From8Bit maps an 8-bit channel value to the normalized unit range.
func From8Bit[F Float](v uint8) F {
	return F(v) / 255
}

// To8Bit maps a normalized channel value to 8 bits, clipping to [0, 1] and
// rounding to nearest.
func To8Bit[F Float](v F) uint8 {
	return uint8(Clamp01(v)*255 + 0.5)
}

// From16Bit maps a 16-bit channel value to the normalized unit range.
func From16Bit[F Float](v uint16) F {
	return F(v) / 65535
}

// To16Bit maps a normalized channel value to 16 bits, clipping to [0, 1] and
// rounding to nearest.
func To16Bit[F Float](v F) uint16 {
	return uint16(Clamp01(v)*65535 + 0.5)
}
