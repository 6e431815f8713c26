package colorspace

import (
	"fmt"
)

// Mixer is satisfied by any color type that can interpolate toward another
// value of its own type. All color types in this package implement it.
type Mixer[C any, F Float] interface {
	Mix(other C, t F) C
}

// GradientStop is a positioned control point of a gradient.
type GradientStop[C Mixer[C, F], F Float] struct {
	Pos   F
	Color C
}

// Gradient is a piecewise linear interpolation between control colors, all
// in the same space. It is continuous between the control points; positions
// outside the domain take the color of the closest control point.
type Gradient[C Mixer[C, F], F Float] struct {
	stops []GradientStop[C, F]
}

// NewGradient builds a gradient of evenly spaced colors over the domain
// [0, 1]. At least one color is required.
func NewGradient[C Mixer[C, F], F Float](colors ...C) (Gradient[C, F], error) {
	if len(colors) == 0 {
		return Gradient[C, F]{}, fmt.Errorf("a gradient needs at least one color")
	}
	stops := make([]GradientStop[C, F], len(colors))
	step := F(1)
	if len(colors) > 1 {
		step = 1 / F(len(colors)-1)
	}
	for i, c := range colors {
		stops[i] = GradientStop[C, F]{Pos: F(i) * step, Color: c}
	}
	return Gradient[C, F]{stops: stops}, nil
}

// NewGradientWithDomain builds a gradient from custom control points, which
// must be non-empty and ordered by ascending position.
func NewGradientWithDomain[C Mixer[C, F], F Float](stops ...GradientStop[C, F]) (Gradient[C, F], error) {
	if len(stops) == 0 {
		return Gradient[C, F]{}, fmt.Errorf("a gradient needs at least one control point")
	}
	for i := 1; i < len(stops); i++ {
		if stops[i].Pos < stops[i-1].Pos {
			return Gradient[C, F]{}, fmt.Errorf("gradient control points out of order at index %d", i)
		}
	}
	g := Gradient[C, F]{stops: make([]GradientStop[C, F], len(stops))}
	copy(g.stops, stops)
	return g, nil
}

// At returns the gradient color at pos. Positions outside the domain are
// clamped to the closest control point.
func (g Gradient[C, F]) At(pos F) C {
	first, last := g.stops[0], g.stops[len(g.stops)-1]
	if pos <= first.Pos {
		return first.Color
	}
	if pos >= last.Pos {
		return last.Color
	}
	// binary search for the segment containing pos
	lo, hi := 0, len(g.stops)-1
	for lo < hi-1 {
		mid := lo + (hi-lo)/2
		if pos <= g.stops[mid].Pos {
			hi = mid
		} else {
			lo = mid
		}
	}
	a, b := g.stops[lo], g.stops[hi]
	if a.Pos == b.Pos {
		return b.Color
	}
	t := (pos - a.Pos) / (b.Pos - a.Pos)
	return a.Color.Mix(b.Color, t)
}

// Colors samples n evenly spaced points across the gradient's domain.
func (g Gradient[C, F]) Colors(n int) []C {
	if n <= 0 {
		return nil
	}
	out := make([]C, n)
	first, last := g.stops[0].Pos, g.stops[len(g.stops)-1].Pos
	if n == 1 {
		out[0] = g.At(first)
		return out
	}
	step := (last - first) / F(n-1)
	for i := range out {
		out[i] = g.At(first + F(i)*step)
	}
	return out
}
