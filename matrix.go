package colorspace

import (
	"fmt"
)

// Linear algebra for the 3x3 transforms between linear RGB and XYZ and for
// chromatic adaptation. All matrix math is done in float64 regardless of the
// component type of the color values, so that float32 colors do not lose
// precision in intermediate products.

type Vec3 [3]float64
type Mat3 [3][3]float64

func mulMat3(a, b Mat3) Mat3 {
	var out Mat3
	for i := range 3 {
		for j := range 3 {
			sum := 0.0
			for k := range 3 {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

func mulMat3Vec(m Mat3, v Vec3) (x, y, z float64) {
	x = m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2]
	y = m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2]
	z = m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2]
	return
}

// Inverted returns the exact numeric inverse via the adjugate.
func (mat Mat3) Inverted() (ans Mat3, err error) {
	det := mat[0][0]*(mat[1][1]*mat[2][2]-mat[1][2]*mat[2][1]) -
		mat[0][1]*(mat[1][0]*mat[2][2]-mat[1][2]*mat[2][0]) +
		mat[0][2]*(mat[1][0]*mat[2][1]-mat[1][1]*mat[2][0])

	if det == 0 {
		return ans, fmt.Errorf("matrix is singular and cannot be inverted")
	}
	invDet := 1 / det
	adj := Mat3{
		{
			(mat[1][1]*mat[2][2] - mat[1][2]*mat[2][1]),
			(mat[0][2]*mat[2][1] - mat[0][1]*mat[2][2]),
			(mat[0][1]*mat[1][2] - mat[0][2]*mat[1][1]),
		},
		{
			(mat[1][2]*mat[2][0] - mat[1][0]*mat[2][2]),
			(mat[0][0]*mat[2][2] - mat[0][2]*mat[2][0]),
			(mat[0][2]*mat[1][0] - mat[0][0]*mat[1][2]),
		},
		{
			(mat[1][0]*mat[2][1] - mat[1][1]*mat[2][0]),
			(mat[0][1]*mat[2][0] - mat[0][0]*mat[2][1]),
			(mat[0][0]*mat[1][1] - mat[0][1]*mat[1][0]),
		},
	}
	for i := range 3 {
		for j := range 3 {
			ans[i][j] = invDet * adj[i][j]
		}
	}
	return
}

// Chromaticity is a CIE xy chromaticity coordinate.
type Chromaticity struct {
	X, Y float64
}

// XYZ returns the coordinate as an XYZ tristimulus value scaled to Y = y.
func (c Chromaticity) XYZ(y float64) Vec3 {
	if c.Y == 0 {
		return Vec3{}
	}
	return Vec3{c.X * y / c.Y, y, (1 - c.X - c.Y) * y / c.Y}
}

// deriveRGBMatrix computes the linear-RGB -> XYZ matrix for the given
// primaries and reference white, scaled so that RGB (1,1,1) maps exactly to
// the white point.
func deriveRGBMatrix(red, green, blue Chromaticity, white Vec3) (Mat3, error) {
	r := red.XYZ(1)
	g := green.XYZ(1)
	b := blue.XYZ(1)
	p := Mat3{
		{r[0], g[0], b[0]},
		{r[1], g[1], b[1]},
		{r[2], g[2], b[2]},
	}
	pinv, err := p.Inverted()
	if err != nil {
		return Mat3{}, fmt.Errorf("degenerate RGB primaries: %w", err)
	}
	sr, sg, sb := mulMat3Vec(pinv, white)
	for i := range 3 {
		p[i][0] *= sr
		p[i][1] *= sg
		p[i][2] *= sb
	}
	return p, nil
}

// Bradford transform matrices (forward and inverse).
var (
	bradford = Mat3{
		{0.8951, 0.2664, -0.1614},
		{-0.7502, 1.7135, 0.0367},
		{0.0389, -0.0685, 1.0296},
	}
	invBradford = Mat3{
		{0.9869929, -0.1470543, 0.1599627},
		{0.4323053, 0.5183603, 0.0492912},
		{-0.0085287, 0.0400428, 0.9684867},
	}
)

// chromaticAdaptationMatrix constructs a 3x3 matrix that adapts XYZ values
// from sourceWhite to targetWhite using the Bradford method.
func chromaticAdaptationMatrix(sourceWhite, targetWhite Vec3) Mat3 {
	srcL, srcM, srcS := mulMat3Vec(bradford, sourceWhite)
	tgtL, tgtM, tgtS := mulMat3Vec(bradford, targetWhite)
	diag := Mat3{
		{tgtL / srcL, 0, 0},
		{0, tgtM / srcM, 0},
		{0, 0, tgtS / srcS},
	}
	// adapt = invBradford * diag * bradford
	return mulMat3(invBradford, mulMat3(diag, bradford))
}
