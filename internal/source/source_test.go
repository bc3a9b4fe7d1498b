package source

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/disintegration/imaging"
)

func writeTestImage(t *testing.T, path string, w, h int) {
	t.Helper()
	img := imaging.New(w, h, color.NRGBA{R: 200, A: 255})
	if err := imaging.Save(img, path); err != nil {
		t.Fatalf("saving %s: %v", path, err)
	}
}

func TestOpenImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matrix.png")
	writeTestImage(t, path, 48, 32)

	src, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer src.Close()

	if src.PageCount() != 1 {
		t.Errorf("Expected 1 page, got %d", src.PageCount())
	}

	w, h, err := src.GetPageDimensions(0)
	if err != nil {
		t.Fatalf("GetPageDimensions failed: %v", err)
	}
	if w != 48 || h != 32 {
		t.Errorf("Expected 48x32, got %.0fx%.0f", w, h)
	}

	img, err := src.RenderPage(0, 150)
	if err != nil {
		t.Fatalf("RenderPage failed: %v", err)
	}
	if img.Bounds().Size() != image.Pt(48, 32) {
		t.Errorf("Unexpected bounds %v", img.Bounds())
	}

	if _, err := src.RenderPage(1, 150); err == nil {
		t.Error("Expected error for page 1 of a raster image")
	}
}

func TestOpenDirectoryPicksLatest(t *testing.T) {
	dir := t.TempDir()
	older := filepath.Join(dir, "a.png")
	newer := filepath.Join(dir, "b.png")
	writeTestImage(t, older, 8, 8)
	writeTestImage(t, newer, 16, 16)
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0644)

	past := time.Now().Add(-time.Hour)
	os.Chtimes(older, past, past)

	src, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	is, ok := src.(*ImageSource)
	if !ok {
		t.Fatalf("Expected *ImageSource, got %T", src)
	}
	if is.Path() != newer {
		t.Errorf("Expected %s, got %s", newer, is.Path())
	}
}

func TestOpenMissing(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Expected error for missing source")
	}
}

func TestRenderCorruptImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	if err := os.WriteFile(path, []byte("not a png"), 0644); err != nil {
		t.Fatal(err)
	}

	src, err := Open(path)
	if err != nil {
		t.Fatalf("Open should only stat the file: %v", err)
	}
	if _, err := src.RenderPage(0, 150); err == nil {
		t.Error("Expected decode error")
	}
}
