package colorspace

import (
	"fmt"
)

var _ = fmt.Print

// RGB is a gamma encoded RGB color under the standard selected by the model
// tag S. In-gamut components lie in [0, 1] but out-of-gamut values produced
// by conversion are representable; use Clamped to saturate for display.
type RGB[S RGBModel, F Float] struct {
	R, G, B F
}

// LinearRGB is RGB with the model's transfer function removed, suitable for
// the linear matrix transform to XYZ and for physically meaningful
// arithmetic.
type LinearRGB[S RGBModel, F Float] struct {
	R, G, B F
}

func NewRGB[S RGBModel, F Float](r, g, b F) RGB[S, F] {
	return RGB[S, F]{r, g, b}
}

func NewLinearRGB[S RGBModel, F Float](r, g, b F) LinearRGB[S, F] {
	return LinearRGB[S, F]{r, g, b}
}

// RGBFrom8Bit constructs an encoded RGB value from 8-bit channels.
func RGBFrom8Bit[S RGBModel, F Float](r, g, b uint8) RGB[S, F] {
	return RGB[S, F]{From8Bit[F](r), From8Bit[F](g), From8Bit[F](b)}
}

func (c RGB[S, F]) String() string {
	return fmt.Sprintf("RGB(%s){%.6f %.6f %.6f}", modelData[S]().Name, float64(c.R), float64(c.G), float64(c.B))
}

func (c LinearRGB[S, F]) String() string {
	return fmt.Sprintf("LinearRGB(%s){%.6f %.6f %.6f}", modelData[S]().Name, float64(c.R), float64(c.G), float64(c.B))
}

// Components returns the raw channel values.
func (c RGB[S, F]) Components() (r, g, b F) { return c.R, c.G, c.B }

func (c LinearRGB[S, F]) Components() (r, g, b F) { return c.R, c.G, c.B }

// Hex formats the color as "#RRGGBB", clipping to the displayable range.
func (c RGB[S, F]) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", To8Bit(c.R), To8Bit(c.G), To8Bit(c.B))
}

// RGBA implements image/color.Color.
func (c RGB[S, F]) RGBA() (r, g, b, a uint32) {
	return uint32(To16Bit(c.R)), uint32(To16Bit(c.G)), uint32(To16Bit(c.B)), 0xffff
}

// Linear removes the model's gamma encoding per channel.
func (c RGB[S, F]) Linear() LinearRGB[S, F] {
	m := modelData[S]()
	return LinearRGB[S, F]{
		F(m.Decode(float64(c.R))),
		F(m.Decode(float64(c.G))),
		F(m.Decode(float64(c.B))),
	}
}

// Encoded applies the model's gamma encoding per channel.
func (c LinearRGB[S, F]) Encoded() RGB[S, F] {
	m := modelData[S]()
	return RGB[S, F]{
		F(m.Encode(float64(c.R))),
		F(m.Encode(float64(c.G))),
		F(m.Encode(float64(c.B))),
	}
}

// Clamped saturates each component to [0, 1].
func (c RGB[S, F]) Clamped() RGB[S, F] {
	return RGB[S, F]{Clamp01(c.R), Clamp01(c.G), Clamp01(c.B)}
}

func (c LinearRGB[S, F]) Clamped() LinearRGB[S, F] {
	return LinearRGB[S, F]{Clamp01(c.R), Clamp01(c.G), Clamp01(c.B)}
}

// InGamut reports whether all components are inside [0, 1], allowing a small
// epsilon of rounding noise.
func (c RGB[S, F]) InGamut() bool {
	return inUnitCube(float64(c.R), float64(c.G), float64(c.B))
}

func (c LinearRGB[S, F]) InGamut() bool {
	return inUnitCube(float64(c.R), float64(c.G), float64(c.B))
}

func inUnitCube(r, g, b float64) bool {
	const eps = 1e-12
	return r >= -eps && g >= -eps && b >= -eps && r <= 1+eps && g <= 1+eps && b <= 1+eps
}

// LinearRGBToXYZ converts linear RGB to XYZ relative to illuminant W,
// applying Bradford adaptation when W differs from the model's native white
// point.
func LinearRGBToXYZ[W Illuminant, S RGBModel, F Float](c LinearRGB[S, F]) XYZ[W, F] {
	m := modelData[S]()
	fwd, _ := m.Matrices()
	x, y, z := mulMat3Vec(fwd, Vec3{float64(c.R), float64(c.G), float64(c.B)})
	if w := whitePoint[W](); w != m.White {
		x, y, z = mulMat3Vec(adaptationMatrix(m.White, w), Vec3{x, y, z})
	}
	return xyzFromVec[W, F](x, y, z)
}

// LinearRGBFromXYZ converts XYZ relative to illuminant W into linear RGB
// under model S, adapting to the model's native white point first when they
// differ. The result may be out of gamut.
func LinearRGBFromXYZ[S RGBModel, W Illuminant, F Float](c XYZ[W, F]) LinearRGB[S, F] {
	m := modelData[S]()
	_, inv := m.Matrices()
	x, y, z := float64(c.X), float64(c.Y), float64(c.Z)
	if w := whitePoint[W](); w != m.White {
		x, y, z = mulMat3Vec(adaptationMatrix(w, m.White), Vec3{x, y, z})
	}
	r, g, b := mulMat3Vec(inv, Vec3{x, y, z})
	return LinearRGB[S, F]{F(r), F(g), F(b)}
}

// RGBToXYZ converts gamma encoded RGB to XYZ relative to illuminant W.
func RGBToXYZ[W Illuminant, S RGBModel, F Float](c RGB[S, F]) XYZ[W, F] {
	return LinearRGBToXYZ[W](c.Linear())
}

// RGBFromXYZ converts XYZ relative to illuminant W into gamma encoded RGB
// under model S. The result may be out of gamut.
func RGBFromXYZ[S RGBModel, W Illuminant, F Float](c XYZ[W, F]) RGB[S, F] {
	return LinearRGBFromXYZ[S](c).Encoded()
}

// ConvertRGB maps an RGB color from model From into model To through XYZ,
// adapting white points as needed.
func ConvertRGB[To, From RGBModel, F Float](c RGB[From, F]) RGB[To, F] {
	m := modelData[From]()
	fwd, _ := m.Matrices()
	lin := c.Linear()
	x, y, z := mulMat3Vec(fwd, Vec3{float64(lin.R), float64(lin.G), float64(lin.B)})
	t := modelData[To]()
	if t.White != m.White {
		x, y, z = mulMat3Vec(adaptationMatrix(m.White, t.White), Vec3{x, y, z})
	}
	_, inv := t.Matrices()
	r, g, b := mulMat3Vec(inv, Vec3{x, y, z})
	return LinearRGB[To, F]{F(r), F(g), F(b)}.Encoded()
}
