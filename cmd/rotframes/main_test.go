package main

import (
	"flag"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/rotframes/internal/config"
	"github.com/ivlev/rotframes/internal/engine"
)

func TestBuildConfigPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "single.yaml")
	yaml := "mode: single\nwidth: 40\nheight: 40\noffset: 10\nframe_prefix: boid_\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	require.NoError(t, flag.Set("config", path))
	require.NoError(t, flag.Set("offset", "15"))
	require.NoError(t, flag.Set("asset-dir", "out"))

	cfg, err := buildConfig()
	require.NoError(t, err)

	assert.Equal(t, config.ModeSingle, cfg.Mode)
	assert.Equal(t, 40, cfg.Width, "yaml overrides defaults")
	assert.Equal(t, 15, cfg.Offset, "flags override yaml")
	assert.Equal(t, 360, cfg.MaxImages, "single mode default")
	assert.Equal(t, "boid_", cfg.FramePrefix)
	assert.Equal(t, "out", cfg.AssetDir)
}

func TestFirstCycle(t *testing.T) {
	cfg := config.Default(config.ModeMulti)
	cfg.MaxImages = 3
	cfg.DimensionCount = 2
	res := &engine.Result{Frames: engine.Plan(cfg), Dirs: engine.OutputDirs(cfg)}

	got := firstCycle(res)
	assert.Equal(t, []string{
		filepath.Join("resources", "dim5", "bird_0.png"),
		filepath.Join("resources", "dim5", "bird_1.png"),
		filepath.Join("resources", "dim5", "bird_2.png"),
	}, got)
}

type closeTracker struct {
	closed bool
}

func (s *closeTracker) Path() string { return "" }
func (s *closeTracker) PageCount() int { return 1 }

func (s *closeTracker) GetPageDimensions(int) (float64, float64, error) { return 0, 0, nil }

func (s *closeTracker) RenderPage(int, int) (image.Image, error) {
	return nil, os.ErrNotExist
}

func (s *closeTracker) Close() error {
	s.closed = true
	return nil
}

func TestGenerateClosesSourceOnFailure(t *testing.T) {
	cfg := config.Default(config.ModeSingle)
	cfg.AssetDir = t.TempDir()
	src := &closeTracker{}

	assert.Equal(t, 1, generate(cfg, src))
	assert.True(t, src.closed, "source must be closed when the run fails")
}
