package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

func TestManifestWriteRead(t *testing.T) {
	m := &Manifest{
		Version: Version,
		Mode:    "multi",
		Source:  "resources/matrix.png",
		Offset:  90,
		Frames: []Frame{
			{Index: 0, File: "resources/dim5/bird_0.png", Angle: 0, Width: 5, Height: 5},
			{Index: 1, File: "resources/dim5/bird_1.png", Angle: 90, Width: 5, Height: 5},
			{Index: 0, File: "resources/dim6/bird_0.png", Angle: 0, Width: 6, Height: 6},
		},
	}

	path := filepath.Join(t.TempDir(), "out", "frames.yaml")
	if err := Write(m, path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	read, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if read.Version != m.Version || read.Mode != m.Mode || read.Offset != m.Offset {
		t.Errorf("Header mismatch: got %+v", read)
	}
	if len(read.Frames) != len(m.Frames) {
		t.Fatalf("Frame count mismatch: expected %d, got %d", len(m.Frames), len(read.Frames))
	}

	dim5 := read.BySize(5, 5)
	if len(dim5) != 2 || dim5[1].Angle != 90 {
		t.Errorf("Unexpected dim5 frames: %+v", dim5)
	}
}

func TestReadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frames.yaml")
	os.WriteFile(path, []byte("frames: [unterminated"), 0644)

	if _, err := Read(path); err == nil {
		t.Error("Expected parse error")
	}
}
