package source

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// ImageSource is a single raster image exposed as a one-page Source.
type ImageSource struct {
	path string
}

func NewImageSource(path string) (*ImageSource, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "source %s", path)
	}
	if fi.IsDir() {
		return nil, errors.Errorf("source %s is a directory", path)
	}
	return &ImageSource{path: path}, nil
}

func (s *ImageSource) Path() string {
	return s.path
}

func (s *ImageSource) PageCount() int {
	return 1
}

func (s *ImageSource) GetPageDimensions(index int) (float64, float64, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	img, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "decoding header of %s", s.path)
	}
	return float64(img.Width), float64(img.Height), nil
}

// RenderPage decodes the image. dpi is ignored for raster sources.
func (s *ImageSource) RenderPage(index int, dpi int) (image.Image, error) {
	if index != 0 {
		return nil, errors.Errorf("image %s has no page %d", s.path, index)
	}
	img, err := imaging.Open(s.path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", s.path)
	}
	return img, nil
}

func (s *ImageSource) Close() error {
	return nil
}
