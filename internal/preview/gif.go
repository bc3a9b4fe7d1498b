package preview

import (
	"image"
	"image/gif"
	"os"
	"path/filepath"

	"github.com/andybons/gogif"
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// Quantize reduces img to a median-cut palette of at most n colours.
func Quantize(img image.Image, n int) *image.Paletted {
	paletted := image.NewPaletted(img.Bounds(), nil)
	quantizer := gogif.MedianCutQuantizer{NumColor: n}
	quantizer.Quantize(paletted, img.Bounds(), img, image.ZP)
	return paletted
}

// WriteGIF assembles the frame files into a looping animated GIF at out.
// delay is in hundredths of a second per frame.
func WriteGIF(frames []string, out string, delay int) error {
	if len(frames) == 0 {
		return errors.New("no frames to animate")
	}

	anim := &gif.GIF{LoopCount: 0}
	for _, path := range frames {
		img, err := imaging.Open(path)
		if err != nil {
			return errors.Wrapf(err, "reading frame %s", path)
		}
		anim.Image = append(anim.Image, Quantize(img, 255))
		anim.Delay = append(anim.Delay, delay)
		anim.Disposal = append(anim.Disposal, gif.DisposalBackground)
	}

	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return errors.Wrapf(err, "creating directory for %s", out)
	}
	f, err := os.Create(out)
	if err != nil {
		return errors.Wrapf(err, "creating %s", out)
	}
	defer f.Close()

	if err := gif.EncodeAll(f, anim); err != nil {
		return errors.Wrapf(err, "encoding %s", out)
	}
	return f.Close()
}
