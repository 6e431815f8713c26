package colorspace

import (
	"fmt"
	"math"
)

// Lch is the cylindrical form of Lab: lightness, chroma (a non-negative
// magnitude) and hue in [0, 360). The polar conversion is non-injective at
// chroma 0, where hue is undefined; the canonical hue 0 is produced there.
type Lch[W Illuminant, F Float] struct {
	L, C, H F
}

// LchUV is the cylindrical form of Luv, with the same chroma and hue
// conventions as Lch.
type LchUV[W Illuminant, F Float] struct {
	L, C, H F
}

func NewLch[W Illuminant, F Float](l, c, h F) Lch[W, F] {
	return Lch[W, F]{l, c, NormalizeHue(h)}
}

func NewLchUV[W Illuminant, F Float](l, c, h F) LchUV[W, F] {
	return LchUV[W, F]{l, c, NormalizeHue(h)}
}

func (c Lch[W, F]) String() string {
	return fmt.Sprintf("Lch{%.4f %.4f %.2f}", float64(c.L), float64(c.C), float64(c.H))
}

func (c LchUV[W, F]) String() string {
	return fmt.Sprintf("LchUV{%.4f %.4f %.2f}", float64(c.L), float64(c.C), float64(c.H))
}

// Components returns the raw channel values.
func (c Lch[W, F]) Components() (l, ch, h F) { return c.L, c.C, c.H }

func (c LchUV[W, F]) Components() (l, ch, h F) { return c.L, c.C, c.H }

// Clamped saturates L to [0, 100], chroma to non-negative, and normalizes
// hue.
func (c Lch[W, F]) Clamped() Lch[W, F] {
	return Lch[W, F]{Clamp(c.L, 0, 100), max(0, c.C), NormalizeHue(c.H)}
}

func (c LchUV[W, F]) Clamped() LchUV[W, F] {
	return LchUV[W, F]{Clamp(c.L, 0, 100), max(0, c.C), NormalizeHue(c.H)}
}

// toPolar converts opponent axes to (chroma, hue degrees).
func toPolar(a, b float64) (chroma, hue float64) {
	chroma = math.Hypot(a, b)
	if chroma == 0 {
		return 0, 0
	}
	hue = math.Atan2(b, a) * 180 / math.Pi
	if hue < 0 {
		hue += 360
	}
	return
}

// fromPolar converts (chroma, hue degrees) back to opponent axes.
func fromPolar(chroma, hue float64) (a, b float64) {
	rad := hue * math.Pi / 180
	return chroma * math.Cos(rad), chroma * math.Sin(rad)
}

// Lch converts to the cylindrical form.
func (c Lab[W, F]) Lch() Lch[W, F] {
	chroma, hue := toPolar(float64(c.A), float64(c.B))
	return Lch[W, F]{c.L, F(chroma), F(hue)}
}

// Lab converts back to the cartesian form.
func (c Lch[W, F]) Lab() Lab[W, F] {
	a, b := fromPolar(float64(c.C), float64(NormalizeHue(c.H)))
	return Lab[W, F]{c.L, F(a), F(b)}
}

// LchUV converts to the cylindrical form.
func (c Luv[W, F]) LchUV() LchUV[W, F] {
	chroma, hue := toPolar(float64(c.U), float64(c.V))
	return LchUV[W, F]{c.L, F(chroma), F(hue)}
}

// Luv converts back to the cartesian form.
func (c LchUV[W, F]) Luv() Luv[W, F] {
	u, v := fromPolar(float64(c.C), float64(NormalizeHue(c.H)))
	return Luv[W, F]{c.L, F(u), F(v)}
}

// XYZ converts through Lab.
func (c Lch[W, F]) XYZ() XYZ[W, F] { return c.Lab().XYZ() }

// Lch converts through Lab.
func (c XYZ[W, F]) Lch() Lch[W, F] { return c.Lab().Lch() }

// XYZ converts through Luv.
func (c LchUV[W, F]) XYZ() XYZ[W, F] { return c.Luv().XYZ() }

// LchUV converts through Luv.
func (c XYZ[W, F]) LchUV() LchUV[W, F] { return c.Luv().LchUV() }
