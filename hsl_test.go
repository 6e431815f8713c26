package colorspace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func requireRGBNear[F Float](t *testing.T, want, got RGB[SRGB, F], epsilon float64) {
	t.Helper()
	require.InDelta(t, float64(want.R), float64(got.R), epsilon)
	require.InDelta(t, float64(want.G), float64(got.G), epsilon)
	require.InDelta(t, float64(want.B), float64(got.B), epsilon)
}

func TestRGBToHSL(t *testing.T) {
	testCases := []struct {
		rgb RGB[SRGB, float64]
		hsl HSL[SRGB, float64]
	}{
		{RGB[SRGB, float64]{1, 0, 0}, HSL[SRGB, float64]{0, 1, 0.5}},
		{RGB[SRGB, float64]{0, 1, 0}, HSL[SRGB, float64]{120, 1, 0.5}},
		{RGB[SRGB, float64]{0, 0, 1}, HSL[SRGB, float64]{240, 1, 0.5}},
		{RGB[SRGB, float64]{1, 1, 0}, HSL[SRGB, float64]{60, 1, 0.5}},
		{RGB[SRGB, float64]{0, 1, 1}, HSL[SRGB, float64]{180, 1, 0.5}},
		{RGB[SRGB, float64]{1, 0, 1}, HSL[SRGB, float64]{300, 1, 0.5}},
		{RGB[SRGB, float64]{1, 1, 1}, HSL[SRGB, float64]{0, 0, 1}},
		{RGB[SRGB, float64]{0, 0, 0}, HSL[SRGB, float64]{0, 0, 0}},
		{RGB[SRGB, float64]{0.5, 0.5, 0.5}, HSL[SRGB, float64]{0, 0, 0.5}},
		{RGB[SRGB, float64]{0.75, 0.25, 0.25}, HSL[SRGB, float64]{0, 0.5, 0.5}},
	}
	for _, tc := range testCases {
		got := tc.rgb.HSL()
		require.InDelta(t, tc.hsl.H, got.H, 1e-9)
		require.InDelta(t, tc.hsl.S, got.S, 1e-9)
		require.InDelta(t, tc.hsl.L, got.L, 1e-9)
		requireRGBNear(t, tc.rgb, got.RGB(), 1e-9)
	}
}

func TestHSLRoundTrip(t *testing.T) {
	for _, c := range []RGB[SRGB, float64]{
		{0.1, 0.2, 0.3}, {0.9, 0.05, 0.43}, {0.33, 0.33, 0.34}, {0.6, 0.6, 0.6},
	} {
		requireRGBNear(t, c, c.HSL().RGB(), 1e-9)
	}
}

func TestNewHSLNormalizesHue(t *testing.T) {
	require.Equal(t, 350.0, NewHSL[SRGB](-10.0, 0.5, 0.5).H)
	require.Equal(t, 20.0, NewHSL[SRGB](380.0, 0.5, 0.5).H)
	c := HSL[SRGB, float64]{120, 1.5, -0.25}.Clamped()
	require.Equal(t, HSL[SRGB, float64]{120, 1, 0}, c)
}

func TestRGBToHSV(t *testing.T) {
	testCases := []struct {
		rgb RGB[SRGB, float64]
		hsv HSV[SRGB, float64]
	}{
		{RGB[SRGB, float64]{1, 0, 0}, HSV[SRGB, float64]{0, 1, 1}},
		{RGB[SRGB, float64]{0, 1, 0}, HSV[SRGB, float64]{120, 1, 1}},
		{RGB[SRGB, float64]{0, 0, 1}, HSV[SRGB, float64]{240, 1, 1}},
		{RGB[SRGB, float64]{1, 1, 1}, HSV[SRGB, float64]{0, 0, 1}},
		{RGB[SRGB, float64]{0, 0, 0}, HSV[SRGB, float64]{0, 0, 0}},
		{RGB[SRGB, float64]{0.5, 0.25, 0}, HSV[SRGB, float64]{30, 1, 0.5}},
	}
	for _, tc := range testCases {
		got := tc.rgb.HSV()
		require.InDelta(t, tc.hsv.H, got.H, 1e-9)
		require.InDelta(t, tc.hsv.S, got.S, 1e-9)
		require.InDelta(t, tc.hsv.V, got.V, 1e-9)
		requireRGBNear(t, tc.rgb, got.RGB(), 1e-9)
	}
}

func TestHSVRoundTrip(t *testing.T) {
	for _, c := range []RGB[SRGB, float64]{
		{0.1, 0.2, 0.3}, {0.9, 0.05, 0.43}, {0.33, 0.33, 0.34}, {1, 0.999, 0.998},
	} {
		requireRGBNear(t, c, c.HSV().RGB(), 1e-9)
	}
}

func TestHSLHSVAgree(t *testing.T) {
	// both cylindrical views of the same color report the same hue
	c := RGB[SRGB, float64]{0.7, 0.3, 0.1}
	require.InDelta(t, c.HSL().H, c.HSV().H, 1e-9)
}
