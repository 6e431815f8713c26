package colorspace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeHue(t *testing.T) {
	testCases := []struct{ in, want float64 }{
		{0, 0}, {359.5, 359.5}, {360, 0}, {720, 0}, {-10, 350}, {-360, 0}, {725, 5},
		{-1e-14, 0}, {-1e-300, 0},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.want, NormalizeHue(tc.in), "hue %v", tc.in)
	}
	for _, h := range []float64{-1e-9, -1e-14, 360 - 1e-14, 1e300, -1e300} {
		got := NormalizeHue(h)
		require.GreaterOrEqual(t, got, 0.0, "hue %v", h)
		require.Less(t, got, 360.0, "hue %v", h)
	}
}

func TestHueDistance(t *testing.T) {
	testCases := []struct{ h1, h2, want float64 }{
		{0, 0, 0},
		{0, 180, 180},
		{350, 10, 20},
		{10, 350, 20},
		{90, 100, 10},
	}
	for _, tc := range testCases {
		require.InDelta(t, tc.want, HueDistance(tc.h1, tc.h2), 1e-9, "%v vs %v", tc.h1, tc.h2)
	}
}

func TestMixEndpoints(t *testing.T) {
	a := NewRGB[SRGB](0.1, 0.2, 0.3)
	b := NewRGB[SRGB](0.9, 0.8, 0.7)
	// the endpoints are exact, not merely close
	require.Equal(t, a, a.Mix(b, 0))
	require.Equal(t, b, a.Mix(b, 1))
	mid := a.Mix(b, 0.5)
	require.InDelta(t, 0.5, mid.R, 1e-12)
	require.InDelta(t, 0.5, mid.G, 1e-12)
	require.InDelta(t, 0.5, mid.B, 1e-12)
}

func TestMixHueShortestArc(t *testing.T) {
	a := NewHSL[SRGB](350.0, 1, 0.5)
	b := NewHSL[SRGB](10.0, 1, 0.5)
	// crossing the 0/360 seam lands on 0, not 180
	require.Equal(t, 0.0, a.Mix(b, 0.5).H)
	require.Equal(t, 355.0, a.Mix(b, 0.25).H)
	require.Equal(t, a.H, a.Mix(b, 0).H)
	require.Equal(t, b.H, a.Mix(b, 1).H)

	lch := NewLch[D65](50.0, 30, 350)
	require.Equal(t, 0.0, lch.Mix(NewLch[D65](50.0, 30, 10), 0.5).H)
}

func TestMixLab(t *testing.T) {
	a := NewLab[D65](20.0, -10, 40)
	b := NewLab[D65](80.0, 30, -20)
	mid := a.Mix(b, 0.5)
	require.InDelta(t, 50, mid.L, 1e-12)
	require.InDelta(t, 10, mid.A, 1e-12)
	require.InDelta(t, 10, mid.B, 1e-12)
}

func TestLightenDarken(t *testing.T) {
	c := NewHSL[SRGB](120.0, 0.5, 0.5)
	require.InDelta(t, 0.7, c.Lighten(0.2).L, 1e-12)
	require.InDelta(t, 0.3, c.Darken(0.2).L, 1e-12)
	// results saturate at the range limits
	require.Equal(t, 1.0, c.Lighten(2).L)
	require.Equal(t, 0.0, c.Darken(2).L)
	// a zero adjustment is the identity
	require.Equal(t, c, c.Lighten(0))
	require.Equal(t, c, c.Darken(0))

	lab := NewLab[D65](50.0, 10, 10)
	require.InDelta(t, 70, lab.Lighten(20).L, 1e-12)
	require.Equal(t, 100.0, lab.Lighten(200).L)
	require.Equal(t, 0.0, lab.Darken(200).L)
}

func TestSaturationAdjust(t *testing.T) {
	c := NewHSL[SRGB](200.0, 0.4, 0.5)
	require.InDelta(t, 0.6, c.Saturate(0.2).S, 1e-12)
	require.InDelta(t, 0.2, c.Desaturate(0.2).S, 1e-12)
	require.Equal(t, 1.0, c.Saturate(5).S)
	require.InDelta(t, 0.2, c.ScaleSaturation(0.5).S, 1e-12)
	require.Equal(t, 1.0, c.ScaleSaturation(10).S)

	lch := NewLch[D65](50.0, 40, 120)
	require.InDelta(t, 60, lch.Saturate(20).C, 1e-12)
	require.InDelta(t, 20, lch.ScaleChroma(0.5).C, 1e-12)
	// chroma has no upper bound but cannot go negative
	require.Equal(t, 0.0, lch.Desaturate(100).C)
	require.InDelta(t, 400, lch.ScaleChroma(10).C, 1e-12)
}

func TestShiftHue(t *testing.T) {
	c := NewHSV[SRGB](350.0, 1, 1)
	require.Equal(t, 10.0, c.ShiftHue(20).H)
	require.Equal(t, 330.0, c.ShiftHue(-20).H)
	require.Equal(t, c.H, c.ShiftHue(360).H)
}

func TestAlphaOver(t *testing.T) {
	top := NewRGBA[SRGB](1.0, 0, 0, 0.5)
	bottom := NewRGB[SRGB](0.0, 0, 1).Opaque()
	out := top.Over(bottom)
	require.InDelta(t, 1, float64(out.A), 1e-12)
	require.InDelta(t, 0.5, float64(out.R), 1e-12)
	require.InDelta(t, 0.5, float64(out.B), 1e-12)

	// an opaque top layer replaces the bottom entirely
	opaque := NewRGBA[SRGB](0.2, 0.4, 0.6, 1.0)
	require.Equal(t, opaque, opaque.Over(bottom))

	// a fully transparent stack stays transparent
	clear := NewRGBA[SRGB](0.0, 0, 0, 0)
	require.Equal(t, 0.0, float64(clear.Over(clear).A))
}

func TestAlphaAccessors(t *testing.T) {
	c := NewRGB[SRGB](0.2, 0.4, 0.6)
	wa := c.WithAlpha(0.5)
	require.Equal(t, c, wa.Color())
	require.Equal(t, 1.0, float64(c.Opaque().A))
	require.Equal(t, "#336699FF", RGBFrom8Bit[SRGB, float64](0x33, 0x66, 0x99).Opaque().Hex())

	r, g, b, a := NewRGBA[SRGB](1.0, 1, 1, 0.5).RGBA()
	// color.Color reports premultiplied channels
	require.Equal(t, uint32(0x8000), a)
	require.Equal(t, r, a)
	require.Equal(t, g, a)
	require.Equal(t, b, a)

	mixed := NewRGBA[SRGB](0.0, 0, 0, 0.0).Mix(NewRGBA[SRGB](1.0, 1, 1, 1.0), 0.25)
	require.InDelta(t, 0.25, float64(mixed.A), 1e-12)
}
