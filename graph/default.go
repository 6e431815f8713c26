package graph

import (
	"github.com/kovidgoyal/colorspace"
)

// Names of the standard spaces registered by NewDefault. RGB-like spaces
// are sRGB; the Lab family is referenced to D65, matching the sRGB white
// point so the default graph needs no chromatic adaptation.
const (
	SRGB       = "srgb"
	LinearSRGB = "linear-srgb"
	HSL        = "hsl"
	HSV        = "hsv"
	CMYK       = "cmyk"
	Lab        = "lab"
	Lch        = "lch"
	Luv        = "luv"
	LchUV      = "lchuv"
	Yxy        = "yxy"
	Luma       = "luma"
)

type srgbColor = colorspace.RGB[colorspace.SRGB, float64]
type xyzColor = colorspace.XYZ[colorspace.D65, float64]

func packXYZ(c xyzColor) Components {
	return Components{float64(c.X), float64(c.Y), float64(c.Z)}
}

func unpackXYZ(c Components) xyzColor {
	return colorspace.NewXYZ[colorspace.D65](c[0], c[1], c[2])
}

func packRGB(c srgbColor) Components {
	return Components{c.R, c.G, c.B}
}

func unpackRGB(c Components) srgbColor {
	return colorspace.NewRGB[colorspace.SRGB](c[0], c[1], c[2])
}

// NewDefault returns a graph with all the standard spaces registered, plus
// specialized direct edges for the conversions that have dedicated
// transforms (RGB<->HSL, RGB<->HSV, RGB<->CMYK, Lab<->Lch, Luv<->LchUV).
func NewDefault() *Graph {
	g := New()

	// registration of the built-in spaces cannot fail
	must := func(err error) {
		if err != nil {
			panic("colorspace/graph: " + err.Error())
		}
	}

	must(g.Register(SRGB, 3,
		func(c Components) Components { return packXYZ(colorspace.RGBToXYZ[colorspace.D65](unpackRGB(c))) },
		func(c Components) Components {
			return packRGB(colorspace.RGBFromXYZ[colorspace.SRGB](unpackXYZ(c)))
		},
	))
	must(g.Register(LinearSRGB, 3,
		func(c Components) Components {
			lin := colorspace.NewLinearRGB[colorspace.SRGB](c[0], c[1], c[2])
			return packXYZ(colorspace.LinearRGBToXYZ[colorspace.D65](lin))
		},
		func(c Components) Components {
			lin := colorspace.LinearRGBFromXYZ[colorspace.SRGB](unpackXYZ(c))
			return Components{lin.R, lin.G, lin.B}
		},
	))
	must(g.RegisterVia(HSL, 3, SRGB,
		func(c Components) Components {
			return packRGB(colorspace.NewHSL[colorspace.SRGB](c[0], c[1], c[2]).RGB())
		},
		func(c Components) Components {
			h := unpackRGB(c).HSL()
			return Components{h.H, h.S, h.L}
		},
	))
	must(g.RegisterVia(HSV, 3, SRGB,
		func(c Components) Components {
			return packRGB(colorspace.NewHSV[colorspace.SRGB](c[0], c[1], c[2]).RGB())
		},
		func(c Components) Components {
			h := unpackRGB(c).HSV()
			return Components{h.H, h.S, h.V}
		},
	))
	must(g.RegisterVia(CMYK, 4, SRGB,
		func(c Components) Components {
			return packRGB(colorspace.NewCMYK[colorspace.SRGB](c[0], c[1], c[2], c[3]).RGB())
		},
		func(c Components) Components {
			k := unpackRGB(c).CMYK()
			return Components{k.C, k.M, k.Y, k.K}
		},
	))
	must(g.RegisterVia(Luma, 1, SRGB,
		func(c Components) Components {
			return packRGB(colorspace.NewLuma[colorspace.SRGB](c[0]).RGB())
		},
		func(c Components) Components {
			return Components{unpackRGB(c).Luma().V}
		},
	))
	must(g.Register(Lab, 3,
		func(c Components) Components {
			return packXYZ(colorspace.NewLab[colorspace.D65](c[0], c[1], c[2]).XYZ())
		},
		func(c Components) Components {
			l := unpackXYZ(c).Lab()
			return Components{l.L, l.A, l.B}
		},
	))
	must(g.RegisterVia(Lch, 3, Lab,
		func(c Components) Components {
			l := colorspace.NewLch[colorspace.D65](c[0], c[1], c[2]).Lab()
			return Components{l.L, l.A, l.B}
		},
		func(c Components) Components {
			l := colorspace.NewLab[colorspace.D65](c[0], c[1], c[2]).Lch()
			return Components{l.L, l.C, l.H}
		},
	))
	must(g.Register(Luv, 3,
		func(c Components) Components {
			return packXYZ(colorspace.NewLuv[colorspace.D65](c[0], c[1], c[2]).XYZ())
		},
		func(c Components) Components {
			l := unpackXYZ(c).Luv()
			return Components{l.L, l.U, l.V}
		},
	))
	must(g.RegisterVia(LchUV, 3, Luv,
		func(c Components) Components {
			l := colorspace.NewLchUV[colorspace.D65](c[0], c[1], c[2]).Luv()
			return Components{l.L, l.U, l.V}
		},
		func(c Components) Components {
			l := colorspace.NewLuv[colorspace.D65](c[0], c[1], c[2]).LchUV()
			return Components{l.L, l.C, l.H}
		},
	))
	must(g.Register(Yxy, 3,
		func(c Components) Components {
			return packXYZ(colorspace.NewYxy[colorspace.D65](c[0], c[1], c[2]).XYZ())
		},
		func(c Components) Components {
			y := unpackXYZ(c).Yxy()
			return Components{y.Y, y.Cx, y.Cy}
		},
	))

	// specialized fast paths; each must agree with the composed route
	must(g.RegisterDirect(SRGB, HSL, func(c Components) Components {
		h := unpackRGB(c).HSL()
		return Components{h.H, h.S, h.L}
	}))
	must(g.RegisterDirect(HSL, SRGB, func(c Components) Components {
		return packRGB(colorspace.NewHSL[colorspace.SRGB](c[0], c[1], c[2]).RGB())
	}))
	must(g.RegisterDirect(SRGB, HSV, func(c Components) Components {
		h := unpackRGB(c).HSV()
		return Components{h.H, h.S, h.V}
	}))
	must(g.RegisterDirect(HSV, SRGB, func(c Components) Components {
		return packRGB(colorspace.NewHSV[colorspace.SRGB](c[0], c[1], c[2]).RGB())
	}))
	must(g.RegisterDirect(SRGB, CMYK, func(c Components) Components {
		k := unpackRGB(c).CMYK()
		return Components{k.C, k.M, k.Y, k.K}
	}))
	must(g.RegisterDirect(CMYK, SRGB, func(c Components) Components {
		return packRGB(colorspace.NewCMYK[colorspace.SRGB](c[0], c[1], c[2], c[3]).RGB())
	}))
	must(g.RegisterDirect(Lab, Lch, func(c Components) Components {
		l := colorspace.NewLab[colorspace.D65](c[0], c[1], c[2]).Lch()
		return Components{l.L, l.C, l.H}
	}))
	must(g.RegisterDirect(Lch, Lab, func(c Components) Components {
		l := colorspace.NewLch[colorspace.D65](c[0], c[1], c[2]).Lab()
		return Components{l.L, l.A, l.B}
	}))
	must(g.RegisterDirect(Luv, LchUV, func(c Components) Components {
		l := colorspace.NewLuv[colorspace.D65](c[0], c[1], c[2]).LchUV()
		return Components{l.L, l.C, l.H}
	}))
	must(g.RegisterDirect(LchUV, Luv, func(c Components) Components {
		l := colorspace.NewLchUV[colorspace.D65](c[0], c[1], c[2]).Luv()
		return Components{l.L, l.U, l.V}
	}))
	return g
}
