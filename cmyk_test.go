package colorspace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRGBToCMYK(t *testing.T) {
	testCases := []struct {
		rgb  RGB[SRGB, float64]
		cmyk CMYK[SRGB, float64]
	}{
		{RGB[SRGB, float64]{1, 1, 1}, CMYK[SRGB, float64]{0, 0, 0, 0}},
		{RGB[SRGB, float64]{0, 0, 0}, CMYK[SRGB, float64]{0, 0, 0, 1}},
		{RGB[SRGB, float64]{1, 0, 0}, CMYK[SRGB, float64]{0, 1, 1, 0}},
		{RGB[SRGB, float64]{0, 1, 0}, CMYK[SRGB, float64]{1, 0, 1, 0}},
		{RGB[SRGB, float64]{0, 0, 1}, CMYK[SRGB, float64]{1, 1, 0, 0}},
		{RGB[SRGB, float64]{0.5, 0.5, 0.5}, CMYK[SRGB, float64]{0, 0, 0, 0.5}},
	}
	for _, tc := range testCases {
		got := tc.rgb.CMYK()
		require.InDelta(t, tc.cmyk.C, got.C, 1e-9)
		require.InDelta(t, tc.cmyk.M, got.M, 1e-9)
		require.InDelta(t, tc.cmyk.Y, got.Y, 1e-9)
		require.InDelta(t, tc.cmyk.K, got.K, 1e-9)
		requireRGBNear(t, tc.rgb, got.RGB(), 1e-9)
	}
}

func TestCMYKPureBlack(t *testing.T) {
	// black is expressed with the key channel alone
	got := RGB[SRGB, float64]{0, 0, 0}.CMYK()
	require.Equal(t, CMYK[SRGB, float64]{0, 0, 0, 1}, got)
}

func TestCMYKRoundTrip(t *testing.T) {
	for _, c := range []RGB[SRGB, float64]{
		{0.1, 0.2, 0.3}, {0.9, 0.05, 0.43}, {0.25, 0.5, 0.75},
	} {
		requireRGBNear(t, c, c.CMYK().RGB(), 1e-9)
	}
}

func TestLuminance(t *testing.T) {
	require.InDelta(t, 1, float64(NewRGB[SRGB](1.0, 1, 1).Luminance()), 1e-9)
	require.InDelta(t, 0, float64(NewRGB[SRGB](0.0, 0, 0).Luminance()), 1e-9)
	require.InDelta(t, 0.2126729, float64(NewRGB[SRGB](1.0, 0, 0).Luminance()), 1e-5)
	require.InDelta(t, 0.7151522, float64(NewRGB[SRGB](0.0, 1, 0).Luminance()), 1e-5)

	// luminance of the sRGB primaries sums to the white luminance
	lin := NewLinearRGB[SRGB](1.0, 1, 1)
	sum := NewLinearRGB[SRGB](1.0, 0, 0).Luminance() +
		NewLinearRGB[SRGB](0.0, 1, 0).Luminance() +
		NewLinearRGB[SRGB](0.0, 0, 1).Luminance()
	require.InDelta(t, float64(lin.Luminance()), float64(sum), 1e-12)
}

func TestLumaRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 0.25, 0.5, 1} {
		g := NewLuma[SRGB](v)
		rgb := g.RGB()
		require.Equal(t, v, float64(rgb.R))
		require.Equal(t, v, float64(rgb.G))
		require.Equal(t, v, float64(rgb.B))
		require.InDelta(t, v, float64(rgb.Luma().V), 1e-9)
	}
	// Luma stores the encoded value; Linear removes the gamma
	require.InDelta(t, 0.21404114, NewLuma[SRGB](0.5).Linear(), 1e-7)
}

func TestContrastRatio(t *testing.T) {
	white := NewRGB[SRGB](1.0, 1, 1)
	black := NewRGB[SRGB](0.0, 0, 0)
	require.InDelta(t, 21, float64(ContrastRatio(white, black)), 1e-9)
	// the ratio is symmetric
	require.InDelta(t, 21, float64(ContrastRatio(black, white)), 1e-9)
	require.InDelta(t, 1, float64(ContrastRatio(white, white)), 1e-9)

	require.True(t, HasMinContrast(white, black, MinContrastEnhanced))
	gray := NewRGB[SRGB](0.5, 0.5, 0.5)
	require.True(t, HasMinContrast(gray, black, MinContrastText))
	require.False(t, HasMinContrast(gray, white, MinContrastText))
}
