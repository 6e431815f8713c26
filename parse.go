package colorspace

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Textual construction. Parsing is the one fallible entry point of the
// package: malformed input is reported as a *ParseError, never silently
// mapped to a default color.

// ParseError reports a malformed textual color.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid color %q: %s", e.Input, e.Reason)
}

func parseError(input, reason string) *ParseError {
	return &ParseError{Input: input, Reason: reason}
}

// ParseHex parses a hexadecimal sRGB string in one of the forms "RGB",
// "RGBA", "RRGGBB" or "RRGGBBAA", with an optional leading '#'. Absent
// alpha means fully opaque.
func ParseHex[F Float](s string) (RGBA[SRGB, F], error) {
	orig := s
	s = strings.TrimPrefix(s, "#")
	var r, g, b uint64
	a := uint64(255)
	var err error

	digit := func(d string) (v uint64) {
		if err == nil {
			v, err = strconv.ParseUint(d, 16, 16)
		}
		// 4-bit shorthand doubles to 8 bits: "F" -> 0xFF
		return v * 17
	}
	pair := func(d string) (v uint64) {
		if err == nil {
			v, err = strconv.ParseUint(d, 16, 16)
		}
		return v
	}

	switch len(s) {
	case 3:
		r, g, b = digit(s[0:1]), digit(s[1:2]), digit(s[2:3])
	case 4:
		r, g, b, a = digit(s[0:1]), digit(s[1:2]), digit(s[2:3]), digit(s[3:4])
	case 6:
		r, g, b = pair(s[0:2]), pair(s[2:4]), pair(s[4:6])
	case 8:
		r, g, b, a = pair(s[0:2]), pair(s[2:4]), pair(s[4:6]), pair(s[6:8])
	default:
		return RGBA[SRGB, F]{}, parseError(orig, fmt.Sprintf("hex color must have 3, 4, 6 or 8 digits, not %d", len(s)))
	}
	if err != nil {
		return RGBA[SRGB, F]{}, parseError(orig, "not a hexadecimal number")
	}
	return RGBA[SRGB, F]{
		From8Bit[F](uint8(r)),
		From8Bit[F](uint8(g)),
		From8Bit[F](uint8(b)),
		From8Bit[F](uint8(a)),
	}, nil
}

// ParseColor parses either a hexadecimal string (see ParseHex) or one of the
// SVG 1.1 color names ("cornflowerblue", "Dark Slate Gray", ...). Unknown
// names are an error.
func ParseColor[F Float](s string) (RGBA[SRGB, F], error) {
	t := strings.TrimSpace(s)
	if strings.HasPrefix(t, "#") {
		return ParseHex[F](t)
	}
	name := strings.ReplaceAll(strings.ToLower(t), " ", "")
	if c, ok := colornames.Map[name]; ok {
		return RGBA[SRGB, F]{
			From8Bit[F](c.R), From8Bit[F](c.G), From8Bit[F](c.B), From8Bit[F](c.A),
		}, nil
	}
	if ans, err := ParseHex[F](t); err == nil {
		return ans, nil
	}
	return RGBA[SRGB, F]{}, parseError(s, "neither a known color name nor a hex color")
}

// FromStdColor converts any image/color.Color into a straight-alpha RGBA
// value under model Std, undoing the premultiplication that interface
// imposes.
func FromStdColor[Std RGBModel, F Float](c color.Color) RGBA[Std, F] {
	r, g, b, a := c.RGBA()
	switch a {
	case 0:
		return RGBA[Std, F]{}
	case 0xffff:
	default:
		r = (r * 0xffff) / a
		g = (g * 0xffff) / a
		b = (b * 0xffff) / a
	}
	return RGBA[Std, F]{
		From16Bit[F](uint16(r)),
		From16Bit[F](uint16(g)),
		From16Bit[F](uint16(b)),
		From16Bit[F](uint16(a)),
	}
}
