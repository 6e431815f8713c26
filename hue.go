package colorspace

import (
	"math"
)

// Hue handling. Hues are cyclic angular components kept in degrees and
// normalized to [0, 360). A color with zero chroma or saturation has no
// defined hue; the canonical convention throughout this package is hue 0 for
// such achromatic colors.

// NormalizeHue wraps an angle in degrees into the canonical [0, 360) range.
func NormalizeHue[F Float](h F) F {
	h = F(math.Mod(float64(h), 360))
	if h < 0 {
		h += 360
	}
	// Tiny negative inputs round to exactly 360 after the correction.
	if h >= 360 {
		h = 0
	}
	return h
}

// HueDistance returns the shortest angular distance between two hues, in
// [0, 180].
func HueDistance[F Float](h1, h2 F) F {
	d := hueDelta(h1, h2)
	if d < 0 {
		return -d
	}
	return d
}

// hueDelta is the signed shortest-arc difference from h1 to h2, in
// (-180, 180].
func hueDelta[F Float](h1, h2 F) F {
	d := NormalizeHue(h2 - h1)
	if d > 180 {
		d -= 360
	}
	return d
}

// lerpHue interpolates between two hues along the shorter arc, wrapping
// across the 0/360 boundary.
func lerpHue[F Float](h1, h2, t F) F {
	if t == 0 {
		return NormalizeHue(h1)
	}
	if t == 1 {
		return NormalizeHue(h2)
	}
	return NormalizeHue(h1 + hueDelta(h1, h2)*t)
}
