package engine

import (
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// FrameWriter persists one generated frame.
type FrameWriter interface {
	WriteFrame(img image.Image, path string) error
}

// PNGWriter encodes frames as PNG, replacing any existing file.
type PNGWriter struct {
	Compression png.CompressionLevel
}

func NewPNGWriter(compression string) (*PNGWriter, error) {
	var level png.CompressionLevel
	switch compression {
	case "", "default":
		level = png.DefaultCompression
	case "best":
		level = png.BestCompression
	case "fast":
		level = png.BestSpeed
	case "none":
		level = png.NoCompression
	default:
		return nil, fmt.Errorf("unknown png compression: %s", compression)
	}
	return &PNGWriter{Compression: level}, nil
}

func (w *PNGWriter) WriteFrame(img image.Image, path string) error {
	return imaging.Save(img, path, imaging.PNGCompressionLevel(w.Compression))
}
