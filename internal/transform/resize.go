package transform

import (
	"fmt"
	"image"
	"sort"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// Resizer scales an image to exactly width x height.
type Resizer interface {
	Resize(img image.Image, width, height int) image.Image
}

type imagingResizer struct {
	filter imaging.ResampleFilter
}

func (r imagingResizer) Resize(img image.Image, width, height int) image.Image {
	return imaging.Resize(img, width, height, r.filter)
}

type nfntResizer struct {
	interp resize.InterpolationFunction
}

func (r nfntResizer) Resize(img image.Image, width, height int) image.Image {
	return resize.Resize(uint(width), uint(height), img, r.interp)
}

type xdrawResizer struct {
	scaler draw.Scaler
}

func (r xdrawResizer) Resize(img image.Image, width, height int) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	r.scaler.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

var resizers = map[string]Resizer{
	"linear":               imagingResizer{imaging.Linear},
	"lanczos":              imagingResizer{imaging.Lanczos},
	"nearest":              imagingResizer{imaging.NearestNeighbor},
	"catmullrom":           imagingResizer{imaging.CatmullRom},
	"box":                  imagingResizer{imaging.Box},
	"nfnt-bilinear":        nfntResizer{resize.Bilinear},
	"nfnt-lanczos3":        nfntResizer{resize.Lanczos3},
	"xdraw-catmullrom":     xdrawResizer{draw.CatmullRom},
	"xdraw-approxbilinear": xdrawResizer{draw.ApproxBiLinear},
}

// NewResizer returns the resampler registered under variant. An empty
// variant selects bilinear filtering.
func NewResizer(variant string) (Resizer, error) {
	if variant == "" {
		variant = "linear"
	}
	rs, ok := resizers[variant]
	if !ok {
		return nil, fmt.Errorf("unknown resampler: %s", variant)
	}
	return rs, nil
}

// Resamplers lists the registered variant names.
func Resamplers() []string {
	names := make([]string, 0, len(resizers))
	for name := range resizers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
