package colorspace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mat3NearlyEqual(t *testing.T, expected, actual Mat3, epsilon float64) {
	t.Helper()
	for i := range 3 {
		for j := range 3 {
			require.InDelta(t, expected[i][j], actual[i][j], epsilon, "element (%d, %d)", i, j)
		}
	}
}

func TestMat3Inverted(t *testing.T) {
	m := Mat3{
		{2, 0, 1},
		{1, 3, 0},
		{0, 1, 4},
	}
	inv, err := m.Inverted()
	require.NoError(t, err)
	mat3NearlyEqual(t, identityMat3, mulMat3(m, inv), 1e-12)
	mat3NearlyEqual(t, identityMat3, mulMat3(inv, m), 1e-12)

	_, err = Mat3{{1, 2, 3}, {2, 4, 6}, {0, 0, 1}}.Inverted()
	require.Error(t, err)
}

func TestDerivedSRGBMatrix(t *testing.T) {
	// Reference values derived from the IEC 61966-2-1 primaries and the
	// D65 white point.
	want := Mat3{
		{0.4124564, 0.3575761, 0.1804375},
		{0.2126729, 0.7151522, 0.0721750},
		{0.0193339, 0.1191920, 0.9503041},
	}
	toXYZ, fromXYZ := SRGB{}.Model().Matrices()
	mat3NearlyEqual(t, want, toXYZ, 1e-5)
	mat3NearlyEqual(t, identityMat3, mulMat3(toXYZ, fromXYZ), 1e-12)
}

func TestDerivedMatrixMapsWhiteToWhite(t *testing.T) {
	for _, md := range []*ModelData{
		SRGB{}.Model(), AdobeRGB{}.Model(), DisplayP3{}.Model(), Rec2020{}.Model(),
	} {
		toXYZ, _ := md.Matrices()
		x, y, z := mulMat3Vec(toXYZ, Vec3{1, 1, 1})
		got := Vec3{x, y, z}
		for i := range 3 {
			require.InDelta(t, md.White[i], got[i], 1e-9, "%s white channel %d", md.Name, i)
		}
	}
}

func TestChromaticAdaptation(t *testing.T) {
	// The published inverse Bradford matrix is rounded to seven digits, so
	// round trips are only accurate to that order.
	m := chromaticAdaptationMatrix(whiteD65, whiteD50)
	x, y, z := mulMat3Vec(m, whiteD65)
	got := Vec3{x, y, z}
	for i := range 3 {
		require.InDelta(t, whiteD50[i], got[i], 1e-5)
	}
	x, y, z = mulMat3Vec(chromaticAdaptationMatrix(whiteD50, whiteD65), got)
	back := Vec3{x, y, z}
	for i := range 3 {
		require.InDelta(t, whiteD65[i], back[i], 1e-5)
	}
	mat3NearlyEqual(t, identityMat3, chromaticAdaptationMatrix(whiteD65, whiteD65), 1e-6)
}

func TestChromaticityXYZ(t *testing.T) {
	c := Chromaticity{X: 0.3127, Y: 0.3290}
	v := c.XYZ(1)
	require.InDelta(t, 0.95047, v[0], 1e-4)
	require.Equal(t, 1.0, v[1])
	require.InDelta(t, 1.08883, v[2], 1e-3)
}
