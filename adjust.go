package colorspace

// Adjustment and interpolation operations. Mix is component-wise linear
// interpolation within a single space; hue channels interpolate along the
// shorter angular arc. The parameter t is not clamped, so extrapolation is
// the caller's choice. The lerp form a*(1-t) + b*t keeps the endpoints
// exact.

func lerp[F Float](a, b, t F) F {
	return a*(1-t) + b*t
}

// Mix interpolates component-wise between c and o.
func (c RGB[Std, F]) Mix(o RGB[Std, F], t F) RGB[Std, F] {
	return RGB[Std, F]{lerp(c.R, o.R, t), lerp(c.G, o.G, t), lerp(c.B, o.B, t)}
}

func (c LinearRGB[Std, F]) Mix(o LinearRGB[Std, F], t F) LinearRGB[Std, F] {
	return LinearRGB[Std, F]{lerp(c.R, o.R, t), lerp(c.G, o.G, t), lerp(c.B, o.B, t)}
}

func (c RGBA[Std, F]) Mix(o RGBA[Std, F], t F) RGBA[Std, F] {
	return RGBA[Std, F]{lerp(c.R, o.R, t), lerp(c.G, o.G, t), lerp(c.B, o.B, t), lerp(c.A, o.A, t)}
}

func (c XYZ[W, F]) Mix(o XYZ[W, F], t F) XYZ[W, F] {
	return XYZ[W, F]{lerp(c.X, o.X, t), lerp(c.Y, o.Y, t), lerp(c.Z, o.Z, t)}
}

func (c Lab[W, F]) Mix(o Lab[W, F], t F) Lab[W, F] {
	return Lab[W, F]{lerp(c.L, o.L, t), lerp(c.A, o.A, t), lerp(c.B, o.B, t)}
}

func (c Luv[W, F]) Mix(o Luv[W, F], t F) Luv[W, F] {
	return Luv[W, F]{lerp(c.L, o.L, t), lerp(c.U, o.U, t), lerp(c.V, o.V, t)}
}

func (c Yxy[W, F]) Mix(o Yxy[W, F], t F) Yxy[W, F] {
	return Yxy[W, F]{lerp(c.Y, o.Y, t), lerp(c.Cx, o.Cx, t), lerp(c.Cy, o.Cy, t)}
}

func (c CMYK[Std, F]) Mix(o CMYK[Std, F], t F) CMYK[Std, F] {
	return CMYK[Std, F]{lerp(c.C, o.C, t), lerp(c.M, o.M, t), lerp(c.Y, o.Y, t), lerp(c.K, o.K, t)}
}

func (c Luma[Std, F]) Mix(o Luma[Std, F], t F) Luma[Std, F] {
	return Luma[Std, F]{lerp(c.V, o.V, t)}
}

// Mix interpolates with the hue along the shorter arc.
func (c HSL[Std, F]) Mix(o HSL[Std, F], t F) HSL[Std, F] {
	return HSL[Std, F]{lerpHue(c.H, o.H, t), lerp(c.S, o.S, t), lerp(c.L, o.L, t)}
}

func (c HSV[Std, F]) Mix(o HSV[Std, F], t F) HSV[Std, F] {
	return HSV[Std, F]{lerpHue(c.H, o.H, t), lerp(c.S, o.S, t), lerp(c.V, o.V, t)}
}

func (c Lch[W, F]) Mix(o Lch[W, F], t F) Lch[W, F] {
	return Lch[W, F]{lerp(c.L, o.L, t), lerp(c.C, o.C, t), lerpHue(c.H, o.H, t)}
}

func (c LchUV[W, F]) Mix(o LchUV[W, F], t F) LchUV[W, F] {
	return LchUV[W, F]{lerp(c.L, o.L, t), lerp(c.C, o.C, t), lerpHue(c.H, o.H, t)}
}

// Saturate increases saturation by amount and clamps to [0, 1]. A zero
// amount returns the color unchanged.
func (c HSL[Std, F]) Saturate(amount F) HSL[Std, F] {
	return HSL[Std, F]{c.H, Clamp01(c.S + amount), c.L}
}

// Desaturate decreases saturation by amount and clamps to [0, 1].
func (c HSL[Std, F]) Desaturate(amount F) HSL[Std, F] {
	return c.Saturate(-amount)
}

// ScaleSaturation multiplies saturation by factor and clamps to [0, 1].
func (c HSL[Std, F]) ScaleSaturation(factor F) HSL[Std, F] {
	return HSL[Std, F]{c.H, Clamp01(c.S * factor), c.L}
}

// Lighten increases lightness by amount and clamps to [0, 1].
func (c HSL[Std, F]) Lighten(amount F) HSL[Std, F] {
	return HSL[Std, F]{c.H, c.S, Clamp01(c.L + amount)}
}

// Darken decreases lightness by amount and clamps to [0, 1].
func (c HSL[Std, F]) Darken(amount F) HSL[Std, F] {
	return c.Lighten(-amount)
}

// ShiftHue rotates the hue by delta degrees, normalizing into [0, 360).
func (c HSL[Std, F]) ShiftHue(delta F) HSL[Std, F] {
	return HSL[Std, F]{NormalizeHue(c.H + delta), c.S, c.L}
}

func (c HSV[Std, F]) Saturate(amount F) HSV[Std, F] {
	return HSV[Std, F]{c.H, Clamp01(c.S + amount), c.V}
}

func (c HSV[Std, F]) Desaturate(amount F) HSV[Std, F] {
	return c.Saturate(-amount)
}

func (c HSV[Std, F]) ScaleSaturation(factor F) HSV[Std, F] {
	return HSV[Std, F]{c.H, Clamp01(c.S * factor), c.V}
}

// Lighten increases value by amount and clamps to [0, 1].
func (c HSV[Std, F]) Lighten(amount F) HSV[Std, F] {
	return HSV[Std, F]{c.H, c.S, Clamp01(c.V + amount)}
}

func (c HSV[Std, F]) Darken(amount F) HSV[Std, F] {
	return c.Lighten(-amount)
}

func (c HSV[Std, F]) ShiftHue(delta F) HSV[Std, F] {
	return HSV[Std, F]{NormalizeHue(c.H + delta), c.S, c.V}
}

// Lighten increases L* by amount and clamps to [0, 100].
func (c Lab[W, F]) Lighten(amount F) Lab[W, F] {
	return Lab[W, F]{Clamp(c.L+amount, 0, 100), c.A, c.B}
}

func (c Lab[W, F]) Darken(amount F) Lab[W, F] {
	return c.Lighten(-amount)
}

func (c Luv[W, F]) Lighten(amount F) Luv[W, F] {
	return Luv[W, F]{Clamp(c.L+amount, 0, 100), c.U, c.V}
}

func (c Luv[W, F]) Darken(amount F) Luv[W, F] {
	return c.Lighten(-amount)
}

// Saturate increases chroma by amount; chroma stays non-negative and has no
// upper bound.
func (c Lch[W, F]) Saturate(amount F) Lch[W, F] {
	return Lch[W, F]{c.L, max(0, c.C+amount), c.H}
}

func (c Lch[W, F]) Desaturate(amount F) Lch[W, F] {
	return c.Saturate(-amount)
}

// ScaleChroma multiplies chroma by factor; the result stays non-negative.
func (c Lch[W, F]) ScaleChroma(factor F) Lch[W, F] {
	return Lch[W, F]{c.L, max(0, c.C*factor), c.H}
}

func (c Lch[W, F]) Lighten(amount F) Lch[W, F] {
	return Lch[W, F]{Clamp(c.L+amount, 0, 100), c.C, c.H}
}

func (c Lch[W, F]) Darken(amount F) Lch[W, F] {
	return c.Lighten(-amount)
}

func (c Lch[W, F]) ShiftHue(delta F) Lch[W, F] {
	return Lch[W, F]{c.L, c.C, NormalizeHue(c.H + delta)}
}

func (c LchUV[W, F]) Saturate(amount F) LchUV[W, F] {
	return LchUV[W, F]{c.L, max(0, c.C+amount), c.H}
}

func (c LchUV[W, F]) Desaturate(amount F) LchUV[W, F] {
	return c.Saturate(-amount)
}

func (c LchUV[W, F]) Lighten(amount F) LchUV[W, F] {
	return LchUV[W, F]{Clamp(c.L+amount, 0, 100), c.C, c.H}
}

func (c LchUV[W, F]) Darken(amount F) LchUV[W, F] {
	return c.Lighten(-amount)
}

func (c LchUV[W, F]) ShiftHue(delta F) LchUV[W, F] {
	return LchUV[W, F]{c.L, c.C, NormalizeHue(c.H + delta)}
}
