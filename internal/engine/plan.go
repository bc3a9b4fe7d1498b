package engine

import (
	"fmt"
	"path/filepath"

	"github.com/ivlev/rotframes/internal/config"
	"github.com/ivlev/rotframes/internal/transform"
)

// FrameSpec is one (angle, size) pair and the file it is written to.
type FrameSpec struct {
	Index  int
	Angle  int // clockwise degrees in [0, 360)
	Width  int
	Height int
	Dir    string
	Path   string
}

// FrameName is the file name of frame i.
func FrameName(prefix string, i int) string {
	return fmt.Sprintf("%s%d.png", prefix, i)
}

// DimDir is the multi mode output directory for a square dimension.
func DimDir(cfg *config.Config, dim int) string {
	return filepath.Join(cfg.AssetDir, fmt.Sprintf("%s%d", cfg.DirPrefix, dim))
}

// OutputDirs lists the directories a run writes into, in generation order.
func OutputDirs(cfg *config.Config) []string {
	if cfg.Mode != config.ModeMulti {
		return []string{cfg.AssetDir}
	}
	dims := cfg.Dimensions()
	dirs := make([]string, 0, len(dims))
	for _, dim := range dims {
		dirs = append(dirs, DimDir(cfg, dim))
	}
	return dirs
}

// Plan enumerates every frame of a run in generation order. It does not touch
// the filesystem.
func Plan(cfg *config.Config) []FrameSpec {
	if cfg.Mode != config.ModeMulti {
		return planDir(cfg, cfg.AssetDir, cfg.Width, cfg.Height)
	}

	specs := make([]FrameSpec, 0, cfg.MaxImages*cfg.DimensionCount)
	for _, dim := range cfg.Dimensions() {
		specs = append(specs, planDir(cfg, DimDir(cfg, dim), dim, dim)...)
	}
	return specs
}

func planDir(cfg *config.Config, dir string, width, height int) []FrameSpec {
	specs := make([]FrameSpec, 0, cfg.MaxImages)
	for i := 0; i < cfg.MaxImages; i++ {
		specs = append(specs, FrameSpec{
			Index:  i,
			Angle:  transform.NormalizeAngle(i * cfg.Offset),
			Width:  width,
			Height: height,
			Dir:    dir,
			Path:   filepath.Join(dir, FrameName(cfg.FramePrefix, i)),
		})
	}
	return specs
}
