// Package transform turns a source sprite into a single frame: a clockwise
// rotation on the source canvas followed by a resize to the target size.
package transform

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// NormalizeAngle maps any integer angle into [0, 360).
func NormalizeAngle(degrees int) int {
	a := degrees % 360
	if a < 0 {
		a += 360
	}
	return a
}

// Rotate turns img clockwise by degrees around its centre. The result keeps
// the canvas of img: corners that leave it are clipped and uncovered pixels
// are transparent.
func Rotate(img image.Image, degrees int) *image.NRGBA {
	b := img.Bounds()
	// imaging rotates counter-clockwise.
	rotated := imaging.Rotate(img, -float64(NormalizeAngle(degrees)), color.Transparent)
	if rotated.Bounds().Size() == b.Size() {
		return rotated
	}
	canvas := imaging.New(b.Dx(), b.Dy(), color.Transparent)
	return imaging.PasteCenter(canvas, rotated)
}

// Frame produces one output frame of width x height from src.
func Frame(src image.Image, degrees, width, height int, rs Resizer) image.Image {
	return rs.Resize(Rotate(src, degrees), width, height)
}
