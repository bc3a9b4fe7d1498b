// Package preview shows generated frames: on the terminal for a quick check,
// or as an animated GIF of one rotation cycle.
package preview

import (
	"fmt"
	"image"
	ic "image/color"

	"github.com/disintegration/imaging"
	"github.com/gookit/color"
	"github.com/pkg/errors"
)

// Scale is the pixel magnification used when a terminal can show real images.
const Scale = 8

type dumper interface {
	Printf(s string, arg ...interface{})
}

type fmtDumperT struct{}

func (fmtDumperT) Printf(s string, arg ...interface{}) {
	fmt.Printf(s, arg...)
}

var fmtDumper fmtDumperT

func shade(col ic.Color, trueColor bool) {
	cR, cG, cB, cA := col.RGBA()
	if cA == 0 {
		fmt.Printf("\x1b[0m  ")
		return
	}
	r, g, b := uint8(cR>>8), uint8(cG>>8), uint8(cB>>8)
	var d dumper
	if trueColor {
		fmt.Printf("\x1b[48;2;%d;%d;%dm", r, g, b)
		d = &fmtDumper
	} else {
		d = color.RGB(r, g, b, true)
	}
	d.Printf("  ")
	if trueColor {
		fmt.Printf("\x1b[0m")
	}
}

// PrintBlocks draws img with one pair of coloured blanks per pixel.
func PrintBlocks(img image.Image, trueColor bool) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			shade(img.At(x, y), trueColor)
		}
		fmt.Printf("\x1b[0m\n")
	}
}

// Print shows img on the terminal, as an inline image when the terminal
// supports one and as coloured blocks otherwise.
func Print(img image.Image) {
	b := img.Bounds()
	big := imaging.Resize(img, b.Dx()*Scale, b.Dy()*Scale, imaging.NearestNeighbor)
	if printRaster(big) {
		return
	}
	PrintBlocks(img, true)
}

// PrintFile decodes the image at path and prints it.
func PrintFile(path string) error {
	img, err := imaging.Open(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}
	Print(img)
	return nil
}
