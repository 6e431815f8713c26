package colorspace

import (
	"fmt"
	"math"
	"sync"
)

// RGBModel is a zero-sized phantom tag selecting the RGB standard a color is
// encoded in: its chromaticity primaries, reference white and transfer
// function. RGB values under different models are distinct types and cannot
// be mixed without an explicit conversion.
type RGBModel interface {
	Model() *ModelData
}

// ModelData is the static description of an RGB standard. The conversion
// matrices are derived from the primaries and white point on first use; the
// inverse matrix is always the numeric inverse of the forward matrix, never
// an independently supplied table.
type ModelData struct {
	Name             string
	Red, Green, Blue Chromaticity
	White            Vec3

	// Encode maps a linear component to its gamma encoded form and Decode
	// is its inverse. Both must be odd functions over out-of-gamut negative
	// inputs so that encoding stays invertible.
	Encode func(float64) float64
	Decode func(float64) float64

	once           sync.Once
	toXYZ, fromXYZ Mat3
	deriveErr      error
}

// Validate derives the conversion matrices and reports whether the model is
// usable. Degenerate primaries (collinear chromaticities) are rejected here,
// at definition time, rather than at first conversion.
func (m *ModelData) Validate() error {
	if m.Encode == nil || m.Decode == nil {
		return fmt.Errorf("RGB model %q has no transfer function", m.Name)
	}
	m.derive()
	return m.deriveErr
}

func (m *ModelData) derive() {
	m.once.Do(func() {
		m.toXYZ, m.deriveErr = deriveRGBMatrix(m.Red, m.Green, m.Blue, m.White)
		if m.deriveErr != nil {
			return
		}
		m.fromXYZ, m.deriveErr = m.toXYZ.Inverted()
	})
}

// Matrices returns the linear-RGB -> XYZ matrix and its inverse. It panics
// on a degenerate model; call Validate first for user supplied models.
func (m *ModelData) Matrices() (toXYZ, fromXYZ Mat3) {
	m.derive()
	if m.deriveErr != nil {
		panic("colorspace: invalid RGB model " + m.Name + ": " + m.deriveErr.Error())
	}
	return m.toXYZ, m.fromXYZ
}

func modelData[S RGBModel]() *ModelData {
	var s S
	return s.Model()
}

// The sRGB companding function, with a linear toe near zero.
func srgbEncode(c float64) float64 {
	if c < 0 {
		return -srgbEncode(-c)
	}
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}

func srgbDecode(c float64) float64 {
	if c < 0 {
		return -srgbDecode(-c)
	}
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// pureGammaEncode returns a simple power-law transfer pair (Adobe RGB).
func pureGammaEncode(gamma float64) func(float64) float64 {
	return func(c float64) float64 {
		if c < 0 {
			return -math.Pow(-c, 1/gamma)
		}
		return math.Pow(c, 1/gamma)
	}
}

func pureGammaDecode(gamma float64) func(float64) float64 {
	return func(c float64) float64 {
		if c < 0 {
			return -math.Pow(-c, gamma)
		}
		return math.Pow(c, gamma)
	}
}

// Rec. 2020 transfer constants.
const (
	rec2020Alpha = 1.09929682680944
	rec2020Beta  = 0.018053968510807
)

func rec2020Encode(c float64) float64 {
	if c < 0 {
		return -rec2020Encode(-c)
	}
	if c < rec2020Beta {
		return 4.5 * c
	}
	return rec2020Alpha*math.Pow(c, 0.45) - (rec2020Alpha - 1)
}

func rec2020Decode(c float64) float64 {
	if c < 0 {
		return -rec2020Decode(-c)
	}
	if c < 4.5*rec2020Beta {
		return c / 4.5
	}
	return math.Pow((c+rec2020Alpha-1)/rec2020Alpha, 1/0.45)
}

var (
	srgbModel = ModelData{
		Name:   "sRGB",
		Red:    Chromaticity{0.6400, 0.3300},
		Green:  Chromaticity{0.3000, 0.6000},
		Blue:   Chromaticity{0.1500, 0.0600},
		White:  whiteD65,
		Encode: srgbEncode,
		Decode: srgbDecode,
	}
	adobeRGBModel = ModelData{
		Name:   "Adobe RGB (1998)",
		Red:    Chromaticity{0.6400, 0.3300},
		Green:  Chromaticity{0.2100, 0.7100},
		Blue:   Chromaticity{0.1500, 0.0600},
		White:  whiteD65,
		Encode: pureGammaEncode(563.0 / 256.0),
		Decode: pureGammaDecode(563.0 / 256.0),
	}
	displayP3Model = ModelData{
		Name:   "Display P3",
		Red:    Chromaticity{0.6800, 0.3200},
		Green:  Chromaticity{0.2650, 0.6900},
		Blue:   Chromaticity{0.1500, 0.0600},
		White:  whiteD65,
		Encode: srgbEncode,
		Decode: srgbDecode,
	}
	rec2020Model = ModelData{
		Name:   "Rec. 2020",
		Red:    Chromaticity{0.7080, 0.2920},
		Green:  Chromaticity{0.1700, 0.7970},
		Blue:   Chromaticity{0.1310, 0.0460},
		White:  whiteD65,
		Encode: rec2020Encode,
		Decode: rec2020Decode,
	}
)

// SRGB is the IEC 61966-2-1 standard RGB space under D65.
type SRGB struct{}

// AdobeRGB is Adobe RGB (1998) under D65.
type AdobeRGB struct{}

// DisplayP3 is Apple's Display P3: DCI-P3 primaries with the sRGB transfer
// function, under D65.
type DisplayP3 struct{}

// Rec2020 is ITU-R BT.2020 under D65.
type Rec2020 struct{}

func (SRGB) Model() *ModelData      { return &srgbModel }
func (AdobeRGB) Model() *ModelData  { return &adobeRGBModel }
func (DisplayP3) Model() *ModelData { return &displayP3Model }
func (Rec2020) Model() *ModelData   { return &rec2020Model }
