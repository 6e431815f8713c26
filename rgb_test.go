package colorspace

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

// Published reference values for sRGB under D65, accurate to about 1e-4.
var srgbGolden = []struct {
	name string
	rgb  RGB[SRGB, float64]
	xyz  XYZ[D65, float64]
	lab  Lab[D65, float64]
}{
	{"red", NewRGB[SRGB](1.0, 0, 0), NewXYZ[D65](0.412456, 0.212673, 0.019334), NewLab[D65](53.2408, 80.0925, 67.2032)},
	{"green", NewRGB[SRGB](0.0, 1, 0), NewXYZ[D65](0.357576, 0.715152, 0.119192), NewLab[D65](87.7347, -86.1827, 83.1793)},
	{"blue", NewRGB[SRGB](0.0, 0, 1), NewXYZ[D65](0.180437, 0.072175, 0.950304), NewLab[D65](32.2970, 79.1875, -107.8602)},
	{"white", NewRGB[SRGB](1.0, 1, 1), NewXYZ[D65](0.950470, 1.000000, 1.088830), NewLab[D65](100.0, 0, 0)},
	{"black", NewRGB[SRGB](0.0, 0, 0), NewXYZ[D65](0.0, 0, 0), NewLab[D65](0.0, 0, 0)},
	{"gray", NewRGB[SRGB](0.5, 0.5, 0.5), NewXYZ[D65](0.203440, 0.214041, 0.233054), NewLab[D65](53.3889, 0, 0)},
}

func TestRGBToXYZToLabGolden(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-3)
	for _, g := range srgbGolden {
		xyz := RGBToXYZ[D65](g.rgb)
		if diff := cmp.Diff(g.xyz, xyz, approx); diff != "" {
			t.Fatalf("%s XYZ mismatch (-want +got):\n%s", g.name, diff)
		}
		lab := xyz.Lab()
		if diff := cmp.Diff(g.lab, lab, approx); diff != "" {
			t.Fatalf("%s Lab mismatch (-want +got):\n%s", g.name, diff)
		}
		back := RGBFromXYZ[SRGB](lab.XYZ())
		if diff := cmp.Diff(g.rgb, back, cmpopts.EquateApprox(0, 1e-8)); diff != "" {
			t.Fatalf("%s round trip mismatch (-want +got):\n%s", g.name, diff)
		}
	}
}

func TestRGBXYZRoundTrip(t *testing.T) {
	samples := []RGB[SRGB, float64]{
		{0.1, 0.2, 0.3},
		{0.9, 0.05, 0.43},
		{1, 1, 1},
		{0, 0, 0},
		{0.25, 0.5, 0.75},
	}
	for _, c := range samples {
		got := RGBFromXYZ[SRGB](RGBToXYZ[D65](c))
		require.InDelta(t, float64(c.R), float64(got.R), 1e-8)
		require.InDelta(t, float64(c.G), float64(got.G), 1e-8)
		require.InDelta(t, float64(c.B), float64(got.B), 1e-8)
	}
}

func TestLinearEncodedRoundTrip(t *testing.T) {
	c := NewRGB[DisplayP3](0.3, 0.6, float32(0.9))
	back := c.Linear().Encoded()
	require.InDelta(t, float64(c.R), float64(back.R), 1e-5)
	require.InDelta(t, float64(c.G), float64(back.G), 1e-5)
	require.InDelta(t, float64(c.B), float64(back.B), 1e-5)
}

func TestConvertRGB(t *testing.T) {
	// white stays white and gray stays neutral across models under the
	// same illuminant
	white := ConvertRGB[AdobeRGB](NewRGB[SRGB](1.0, 1, 1))
	require.InDelta(t, 1, float64(white.R), 1e-8)
	require.InDelta(t, 1, float64(white.G), 1e-8)
	require.InDelta(t, 1, float64(white.B), 1e-8)

	// sRGB red is inside the wide gamut models but maps to different
	// channel values
	red := ConvertRGB[Rec2020](NewRGB[SRGB](1.0, 0, 0))
	require.True(t, red.InGamut())
	require.Less(t, float64(red.R), 1.0)
	require.Greater(t, float64(red.G), 0.0)

	// and converting back recovers the original
	back := ConvertRGB[SRGB](red)
	require.InDelta(t, 1, float64(back.R), 1e-8)
	require.InDelta(t, 0, float64(back.G), 1e-8)
	require.InDelta(t, 0, float64(back.B), 1e-8)

	// a wide gamut primary falls outside sRGB
	p3red := ConvertRGB[SRGB](NewRGB[DisplayP3](1.0, 0, 0))
	require.False(t, p3red.InGamut())
	require.True(t, p3red.Clamped().InGamut())
}

func TestAdaptXYZ(t *testing.T) {
	d65 := RGBToXYZ[D65](NewRGB[SRGB](0.2, 0.4, 0.6))
	d50 := AdaptXYZ[D50](d65)
	require.Greater(t, math.Abs(float64(d65.Z)-float64(d50.Z)), 1e-3)
	back := AdaptXYZ[D65](d50)
	require.InDelta(t, float64(d65.X), float64(back.X), 1e-5)
	require.InDelta(t, float64(d65.Y), float64(back.Y), 1e-5)
	require.InDelta(t, float64(d65.Z), float64(back.Z), 1e-5)

	// a conversion that targets a non-native illuminant folds the
	// adaptation into the transform
	direct := RGBToXYZ[D50](NewRGB[SRGB](0.2, 0.4, 0.6))
	require.InDelta(t, float64(d50.X), float64(direct.X), 1e-9)
	require.InDelta(t, float64(d50.Y), float64(direct.Y), 1e-9)
	require.InDelta(t, float64(d50.Z), float64(direct.Z), 1e-9)

	w := WhiteXYZ[D65, float64]()
	require.Equal(t, whiteD65[0], w.X)
}

func TestRGBFormatting(t *testing.T) {
	c := NewRGB[SRGB](1.0, 0.5, 0)
	require.Equal(t, "#FF8000", c.Hex())
	r, g, b, a := c.RGBA()
	require.Equal(t, uint32(0xffff), r)
	require.Equal(t, uint32(0xffff), a)
	require.Equal(t, uint32(0), b)
	require.Equal(t, uint32(0x8000), g)

	c8 := RGBFrom8Bit[SRGB, float64](255, 128, 0)
	require.Equal(t, "#FF8000", c8.Hex())
}
