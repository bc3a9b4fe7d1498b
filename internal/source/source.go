package source

import (
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/pkg/errors"

	"github.com/ivlev/rotframes/internal/system"
)

type Source interface {
	// Path is the file actually read, after directory resolution.
	Path() string
	PageCount() int
	GetPageDimensions(index int) (width, height float64, err error)
	RenderPage(index int, dpi int) (image.Image, error)
	Close() error
}

// Open picks a Source for path. A directory resolves to its most recently
// modified image, a .pdf file is rasterized through MuPDF and anything else
// is decoded as a plain image.
func Open(path string) (Source, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "source %s", path)
	}
	if fi.IsDir() {
		latest, err := system.FindLatestImage(path)
		if err != nil {
			return nil, err
		}
		path = latest
	}
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		pdf, err := NewFitzPDFSource(path)
		if err != nil {
			return nil, err
		}
		return pdf, nil
	}
	img, err := NewImageSource(path)
	if err != nil {
		return nil, err
	}
	return img, nil
}

type FitzPDFSource struct {
	doc  *fitz.Document
	path string
}

func NewFitzPDFSource(path string) (*FitzPDFSource, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening pdf %s", path)
	}
	return &FitzPDFSource{doc: doc, path: path}, nil
}

func (f *FitzPDFSource) Path() string {
	return f.path
}

func (f *FitzPDFSource) PageCount() int {
	return f.doc.NumPage()
}

func (f *FitzPDFSource) GetPageDimensions(index int) (float64, float64, error) {
	rect, err := f.doc.Bound(index)
	if err != nil {
		return 0, 0, err
	}
	return float64(rect.Dx()), float64(rect.Dy()), nil
}

func (f *FitzPDFSource) RenderPage(index int, dpi int) (image.Image, error) {
	if index < 0 || index >= f.doc.NumPage() {
		return nil, errors.Errorf("pdf %s has no page %d", f.path, index)
	}
	img, err := f.doc.ImageDPI(index, float64(dpi))
	if err != nil {
		return nil, errors.Wrapf(err, "rendering page %d of %s", index, f.path)
	}
	return img, nil
}

func (f *FitzPDFSource) Close() error {
	return f.doc.Close()
}
