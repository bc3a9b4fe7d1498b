package system

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFindLatestImage(t *testing.T) {
	dir := t.TempDir()
	files := []string{"bird_old.png", "bird_new.jpg", "readme.txt"}
	for i, name := range files {
		path := filepath.Join(dir, name)
		os.WriteFile(path, []byte("x"), 0644)
		modTime := time.Now().Add(time.Duration(i) * time.Hour)
		os.Chtimes(path, modTime, modTime)
	}
	os.Mkdir(filepath.Join(dir, "dim5.png"), 0755)

	latest, err := FindLatestImage(dir)
	if err != nil {
		t.Fatalf("FindLatestImage failed: %v", err)
	}
	if filepath.Base(latest) != "bird_new.jpg" {
		t.Errorf("Expected bird_new.jpg, got %s", latest)
	}
}

func TestFindLatestImageEmpty(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "notes.md"), []byte("x"), 0644)
	if _, err := FindLatestImage(dir); err == nil {
		t.Error("Expected error for directory without images")
	}
}

func TestStatsReport(t *testing.T) {
	s := Collect("test", 90, 3*time.Second)
	if s.FPS() != 30 {
		t.Errorf("Expected 30 fps, got %.2f", s.FPS())
	}
	report := s.Report()
	for _, want := range []string{"Frames: 90", "Effective FPS: 30.00", "Build: test"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}

	if (Stats{Frames: 5}).FPS() != 0 {
		t.Error("Expected zero fps for zero elapsed time")
	}
}
