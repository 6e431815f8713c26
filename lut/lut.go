/*
Package lut provides fast look-up tables for gamma transfer functions. The
encoded-to-linear direction is exact per representable input; the
linear-to-encoded direction quantizes the linear value first and is
approximate, with the 8-bit table using a 9-bit index so the quantization
error stays below half an output step.
*/
package lut

import (
	"sync"
)

// Build8BitToLinear tabulates decode over every 8-bit encoded value.
func Build8BitToLinear(decode func(float64) float64) (t [256]float32) {
	for i := range t {
		t[i] = float32(decode(float64(i) / 255))
	}
	return
}

// Build16BitToLinear tabulates decode over every 16-bit encoded value.
func Build16BitToLinear(decode func(float64) float64) (t [65536]float32) {
	for i := range t {
		t[i] = float32(decode(float64(i) / 65535))
	}
	return
}

// BuildLinearTo8Bit tabulates encode over 9-bit quantized linear values.
func BuildLinearTo8Bit(encode func(float64) float64) (t [512]uint8) {
	for i := range t {
		t[i] = uint8(encode(float64(i)/511)*255 + 0.5)
	}
	return
}

// BuildLinearTo16Bit tabulates encode over 16-bit quantized linear values.
func BuildLinearTo16Bit(encode func(float64) float64) (t [65536]uint16) {
	for i := range t {
		t[i] = uint16(encode(float64(i)/65535)*65535 + 0.5)
	}
	return
}

// NormalizedTo9Bit quantizes a linear value to a 9-bit table index,
// clipping to [0, 1].
func NormalizedTo9Bit(v float32) int {
	return int(clip01(v)*511 + 0.5)
}

// NormalizedTo16Bit quantizes a linear value to a 16-bit table index,
// clipping to [0, 1].
func NormalizedTo16Bit(v float32) int {
	return int(clip01(v)*65535 + 0.5)
}

func clip01(v float32) float32 {
	return max(0, min(v, 1))
}

// Table bundles the four look-up tables for one transfer function pair.
// Tables are built lazily, at most once, on first use.
type Table struct {
	from8  func() []float32
	to8    func() []uint8
	from16 func() []float32
	to16   func() []uint16
}

// New creates a Table for the given transfer function pair. encode maps
// linear to gamma encoded, decode is its inverse.
func New(encode, decode func(float64) float64) *Table {
	return &Table{
		from8:  sync.OnceValue(func() []float32 { v := Build8BitToLinear(decode); return v[:] }),
		to8:    sync.OnceValue(func() []uint8 { v := BuildLinearTo8Bit(encode); return v[:] }),
		from16: sync.OnceValue(func() []float32 { v := Build16BitToLinear(decode); return v[:] }),
		to16:   sync.OnceValue(func() []uint16 { v := BuildLinearTo16Bit(encode); return v[:] }),
	}
}

// From8Bit converts an 8-bit encoded value to a normalised linear value
// between 0.0 and 1.0.
func (t *Table) From8Bit(v uint8) float32 {
	return t.from8()[v]
}

// From16Bit converts a 16-bit encoded value to a normalised linear value
// between 0.0 and 1.0.
func (t *Table) From16Bit(v uint16) float32 {
	return t.from16()[v]
}

// To8Bit converts a linear value to an 8-bit encoded value, clipping the
// linear value to between 0.0 and 1.0.
func (t *Table) To8Bit(v float32) uint8 {
	return t.to8()[NormalizedTo9Bit(v)]
}

// To16Bit converts a linear value to a 16-bit encoded value, clipping the
// linear value to between 0.0 and 1.0.
func (t *Table) To16Bit(v float32) uint16 {
	return t.to16()[NormalizedTo16Bit(v)]
}
