package colorspace

// Relative contrast between two colors per WCAG 2.0. The ratio ranges from 1
// (identical luminance) to 21 (black against white).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef

// Standard minimum contrast ratios for text legibility.
const (
	// MinContrastLarge is the WCAG AA minimum for large text.
	MinContrastLarge = 3.0
	// MinContrastText is the WCAG AA minimum for normal text.
	MinContrastText = 4.5
	// MinContrastEnhanced is the WCAG AAA minimum for normal text.
	MinContrastEnhanced = 7.0
)

// ContrastRatio computes the WCAG contrast ratio between two colors in the
// same RGB model. The order of the arguments does not matter.
func ContrastRatio[Std RGBModel, F Float](c1, c2 RGB[Std, F]) F {
	l1 := float64(c1.Luminance())
	l2 := float64(c2.Luminance())
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return F((l1 + 0.05) / (l2 + 0.05))
}

// HasMinContrast reports whether the contrast ratio between the two colors
// meets the given minimum (one of the MinContrast constants, or any custom
// threshold).
func HasMinContrast[Std RGBModel, F Float](c1, c2 RGB[Std, F], minRatio F) bool {
	return ContrastRatio(c1, c2) >= minRatio
}
