package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteGIF(t *testing.T) {
	dir := t.TempDir()
	colors := []color.NRGBA{
		{R: 255, A: 255},
		{G: 255, A: 255},
		{B: 255, A: 255},
	}
	var frames []string
	for i, c := range colors {
		path := filepath.Join(dir, fmt.Sprintf("bird_%d.png", i))
		require.NoError(t, imaging.Save(imaging.New(12, 12, c), path))
		frames = append(frames, path)
	}

	out := filepath.Join(dir, "preview", "cycle.gif")
	require.NoError(t, WriteGIF(frames, out, 4))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	anim, err := gif.DecodeAll(f)
	require.NoError(t, err)
	assert.Len(t, anim.Image, 3)
	assert.Equal(t, []int{4, 4, 4}, anim.Delay)
	assert.Equal(t, image.Pt(12, 12), anim.Image[0].Bounds().Size())
}

func TestWriteGIFErrors(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, WriteGIF(nil, filepath.Join(dir, "a.gif"), 4))
	assert.Error(t, WriteGIF([]string{filepath.Join(dir, "missing.png")}, filepath.Join(dir, "b.gif"), 4))
}

func TestQuantize(t *testing.T) {
	img := imaging.New(4, 4, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	p := Quantize(img, 16)
	assert.Equal(t, img.Bounds(), p.Bounds())
	assert.NotEmpty(t, p.Palette)
	assert.LessOrEqual(t, len(p.Palette), 16)
}
