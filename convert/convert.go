/*
Package convert applies color transforms in bulk, over slices of colors and
over whole images, with data-parallel iteration. Every transform in the
parent package is a pure value function, so the only work here is feeding
pixels through them efficiently: per-image-type scanning loops, straight
alpha preserved, premultiplied formats unpremultiplied around the transform.
*/
package convert

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/kovidgoyal/go-parallel"

	"github.com/kovidgoyal/colorspace"
	"github.com/kovidgoyal/colorspace/lut"
)

var _ = fmt.Print

// Pixel8 transforms one RGB pixel, given as a 3-byte slice, in place.
type Pixel8 func([]uint8)

// Pixel16 transforms one RGB pixel, given as a 3-element slice of 16-bit
// channels, in place.
type Pixel16 func([]uint16)

// Slice applies fn to every element of items, splitting the work across
// CPUs.
func Slice[T any](items []T, fn func(*T)) error {
	return parallel.Run_in_parallel_over_range(0, func(start, limit int) {
		for i := start; i < limit; i++ {
			fn(&items[i])
		}
	}, 0, len(items))
}

// Image runs a pixel transform over every pixel of img, in parallel over
// rows. The result may be img itself modified in place, or a new image when
// the input format cannot be written through directly. Alpha channels pass
// through unchanged; premultiplied formats are unpremultiplied around the
// transform.
func Image(imgAny image.Image, fn8 Pixel8, fn16 Pixel16) (ans image.Image, err error) {
	b := imgAny.Bounds()
	width, height := b.Dx(), b.Dy()
	ans = imgAny
	if width == 0 || height == 0 {
		return
	}
	var f func(start, limit int)

	switch img := imgAny.(type) {
	case *image.NRGBA:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := img.Pix[img.Stride*y:]
				_ = row[4*(width-1)]
				for range width {
					fn8(row[0:3:3])
					row = row[4:]
				}
			}
		}
	case *image.NRGBA64:
		f = func(start, limit int) {
			buf := []uint16{0, 0, 0}
			sl := buf[0:3:3]
			for y := start; y < limit; y++ {
				row := img.Pix[img.Stride*y:]
				_ = row[8*(width-1)]
				for range width {
					s := row[0:8:8]
					sl[0] = uint16(s[0])<<8 | uint16(s[1])
					sl[1] = uint16(s[2])<<8 | uint16(s[3])
					sl[2] = uint16(s[4])<<8 | uint16(s[5])
					fn16(sl)
					s[0], s[1] = uint8(sl[0]>>8), uint8(sl[0])
					s[2], s[3] = uint8(sl[1]>>8), uint8(sl[1])
					s[4], s[5] = uint8(sl[2]>>8), uint8(sl[2])
					row = row[8:]
				}
			}
		}
	case *image.RGBA:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := img.Pix[img.Stride*y:]
				_ = row[4*(width-1)]
				for range width {
					r := row[0:3:3]
					if a := row[3]; a != 0 {
						r[0], r[1], r[2] = unpremultiply8(r[0], a), unpremultiply8(r[1], a), unpremultiply8(r[2], a)
						fn8(r)
						r[0], r[1], r[2] = premultiply8(r[0], a), premultiply8(r[1], a), premultiply8(r[2], a)
					}
					row = row[4:]
				}
			}
		}
	case *image.Paletted:
		buf := []uint16{0, 0, 0}
		sl := buf[0:3:3]
		for i, c := range img.Palette {
			r, g, b16, a := c.RGBA()
			if a != 0 {
				sl[0], sl[1], sl[2] = unpremultiply16(r, a), unpremultiply16(g, a), unpremultiply16(b16, a)
				fn16(sl)
				img.Palette[i] = color.NRGBA64{R: sl[0], G: sl[1], B: sl[2], A: uint16(a)}
			}
		}
		return
	case *image.Gray:
		d := image.NewNRGBA(b)
		ans = d
		f = func(start, limit int) {
			sl := []uint8{0, 0, 0}
			for y := start; y < limit; y++ {
				row := img.Pix[img.Stride*y:]
				_ = row[width-1]
				drow := d.Pix[d.Stride*y:]
				_ = drow[4*(width-1)]
				for _, gray := range row[:width] {
					sl[0], sl[1], sl[2] = gray, gray, gray
					fn8(sl)
					drow[0], drow[1], drow[2], drow[3] = sl[0], sl[1], sl[2], 0xff
					drow = drow[4:]
				}
			}
		}
	case draw.Image:
		f = func(start, limit int) {
			buf := []uint16{0, 0, 0}
			sl := buf[0:3:3]
			for y := b.Min.Y + start; y < b.Min.Y+limit; y++ {
				for x := b.Min.X; x < b.Max.X; x++ {
					r, g, b16, a := img.At(x, y).RGBA()
					if a != 0 {
						sl[0], sl[1], sl[2] = unpremultiply16(r, a), unpremultiply16(g, a), unpremultiply16(b16, a)
						fn16(sl)
						img.Set(x, y, color.NRGBA64{R: sl[0], G: sl[1], B: sl[2], A: uint16(a)})
					}
				}
			}
		}
	default:
		d := image.NewNRGBA64(b)
		ans = d
		f = func(start, limit int) {
			buf := []uint16{0, 0, 0}
			sl := buf[0:3:3]
			for y := start; y < limit; y++ {
				row := d.Pix[d.Stride*y:]
				for x := 0; x < width; x++ {
					r, g, b16, a := imgAny.At(x+b.Min.X, y+b.Min.Y).RGBA()
					if a != 0 {
						sl[0], sl[1], sl[2] = unpremultiply16(r, a), unpremultiply16(g, a), unpremultiply16(b16, a)
						fn16(sl)
					} else {
						sl[0], sl[1], sl[2] = 0, 0, 0
					}
					s := row[0:8:8]
					s[0], s[1] = uint8(sl[0]>>8), uint8(sl[0])
					s[2], s[3] = uint8(sl[1]>>8), uint8(sl[1])
					s[4], s[5] = uint8(sl[2]>>8), uint8(sl[2])
					s[6], s[7] = uint8(a>>8), uint8(a)
					row = row[8:]
				}
			}
		}
	}
	err = parallel.Run_in_parallel_over_range(0, f, 0, height)
	return
}

func premultiply8(r, a uint8) uint8 {
	return uint8((uint16(r) * uint16(a)) / 0xff)
}

func unpremultiply8(r, a uint8) uint8 {
	return uint8((uint16(r) * 0xff) / uint16(a))
}

func unpremultiply16(r, a uint32) uint16 {
	return uint16((r * 0xffff) / a)
}

// srgbColor is the pixel type bulk image adjustments operate on. Images
// without an explicit profile are treated as sRGB.
type srgbColor = colorspace.RGB[colorspace.SRGB, float32]

// linearColor is the linear counterpart of srgbColor.
type linearColor = colorspace.LinearRGB[colorspace.SRGB, float32]

// Adjust applies fn to every pixel of img interpreted as gamma encoded
// sRGB. Alpha passes through untouched.
func Adjust(img image.Image, fn func(srgbColor) srgbColor) (image.Image, error) {
	fn8 := func(p []uint8) {
		c := fn(colorspace.RGBFrom8Bit[colorspace.SRGB, float32](p[0], p[1], p[2]))
		p[0], p[1], p[2] = colorspace.To8Bit(c.R), colorspace.To8Bit(c.G), colorspace.To8Bit(c.B)
	}
	fn16 := func(p []uint16) {
		c := fn(colorspace.RGB[colorspace.SRGB, float32]{
			R: colorspace.From16Bit[float32](p[0]),
			G: colorspace.From16Bit[float32](p[1]),
			B: colorspace.From16Bit[float32](p[2]),
		})
		p[0], p[1], p[2] = colorspace.To16Bit(c.R), colorspace.To16Bit(c.G), colorspace.To16Bit(c.B)
	}
	return Image(img, fn8, fn16)
}

var tables sync.Map // *colorspace.ModelData -> *lut.Table

func tableFor(m *colorspace.ModelData) *lut.Table {
	if v, ok := tables.Load(m); ok {
		return v.(*lut.Table)
	}
	t := lut.New(m.Encode, m.Decode)
	v, _ := tables.LoadOrStore(m, t)
	return v.(*lut.Table)
}

// AdjustLinear applies fn to every pixel of img in linear light. The sRGB
// transfer function is removed and reapplied through look-up tables, so the
// per-pixel cost over Adjust is dominated by fn itself.
func AdjustLinear(img image.Image, fn func(linearColor) linearColor) (image.Image, error) {
	t := tableFor(colorspace.SRGB{}.Model())
	fn8 := func(p []uint8) {
		c := fn(linearColor{R: t.From8Bit(p[0]), G: t.From8Bit(p[1]), B: t.From8Bit(p[2])})
		p[0], p[1], p[2] = t.To8Bit(c.R), t.To8Bit(c.G), t.To8Bit(c.B)
	}
	fn16 := func(p []uint16) {
		c := fn(linearColor{R: t.From16Bit(p[0]), G: t.From16Bit(p[1]), B: t.From16Bit(p[2])})
		p[0], p[1], p[2] = t.To16Bit(c.R), t.To16Bit(c.G), t.To16Bit(c.B)
	}
	return Image(img, fn8, fn16)
}
