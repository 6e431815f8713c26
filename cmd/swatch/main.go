package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/kovidgoyal/colorspace"
)

var _ = fmt.Print

func show(spec string) error {
	c, err := colorspace.ParseColor[float64](spec)
	if err != nil {
		return err
	}
	rgb := c.Color()
	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Printf("\x1b[48;2;%d;%d;%dm        \x1b[m %s\n",
			colorspace.To8Bit(rgb.R), colorspace.To8Bit(rgb.G), colorspace.To8Bit(rgb.B), c.Hex())
	} else {
		fmt.Println(c.Hex())
	}
	xyz := colorspace.RGBToXYZ[colorspace.D65](rgb)
	fmt.Println("  ", rgb)
	fmt.Println("  ", rgb.HSL())
	fmt.Println("  ", rgb.HSV())
	fmt.Println("  ", rgb.CMYK())
	fmt.Println("  ", xyz)
	fmt.Println("  ", xyz.Lab())
	fmt.Println("  ", xyz.Lab().Lch())
	fmt.Println("  ", xyz.Luv())
	fmt.Println("  ", xyz.Yxy())
	return nil
}

func main() {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}()
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: go run ./cmd/swatch color [color ...]")
		os.Exit(1)
	}
	for _, spec := range os.Args[1:] {
		if err = show(spec); err != nil {
			return
		}
	}
}
