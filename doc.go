/*
Package colorspace represents colors as strongly typed values in specific
color spaces (gamma and linear RGB, HSL, HSV, CIE XYZ, Lab, Lch, Luv, Yxy,
CMYK, gray) and converts between any two of them through the CIE XYZ pivot
space.

Color values are immutable and passed by value. The RGB standard (primaries,
white point, transfer function) and the reference illuminant are carried as
phantom type parameters, so values from incompatible variants of a space
cannot be mixed up without an explicit chromatic adaptation step.

Conversions never fail and never clamp: an out-of-gamut result is
representable, and clamping to a displayable range is a separate operation
the caller invokes. The only fallible entry points are the textual parsers.

All operations are pure value transforms with no shared mutable state and are
safe to call concurrently. The convert subpackage applies them in bulk over
slices and images using data-parallel iteration.
*/
package colorspace

import "fmt"

type ColorspaceVersion struct {
	Major, Minor, Patch uint
}

func (v ColorspaceVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func (v ColorspaceVersion) Equal(o ColorspaceVersion) bool {
	return v.Major == o.Major && v.Minor == o.Minor && v.Patch == o.Patch
}

func (v ColorspaceVersion) After(o ColorspaceVersion) bool {
	switch {
	case v.Major == o.Major:
		switch {
		case v.Minor == o.Minor:
			return v.Patch > o.Patch
		case v.Minor > o.Minor:
			return true
		case v.Minor < o.Minor:
			return false
		}
	case v.Major > o.Major:
		return true
	case v.Major < o.Major:
		return false
	}
	return false
}

func (v ColorspaceVersion) Before(o ColorspaceVersion) bool {
	return !v.Equal(o) && !v.After(o)
}

var Version = ColorspaceVersion{0, 3, 0}
