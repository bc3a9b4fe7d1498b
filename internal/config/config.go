package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Mode string

const (
	// ModeMulti writes one directory per target dimension and wipes the asset
	// directory before generating.
	ModeMulti Mode = "multi"
	// ModeSingle writes a single size into one flat directory, overwriting
	// frames by name.
	ModeSingle Mode = "single"
)

type Config struct {
	Mode        Mode   `yaml:"mode"`
	SourcePath  string `yaml:"source"`
	SourcePage  int    `yaml:"page"`
	DPI         int    `yaml:"dpi"`
	AssetDir    string `yaml:"asset_dir"`
	KeepFile    string `yaml:"keep_file"`
	DirPrefix   string `yaml:"dir_prefix"`
	FramePrefix string `yaml:"frame_prefix"`

	Offset    int `yaml:"offset"`
	MaxImages int `yaml:"max_images"`

	// multi
	MinDimension   int `yaml:"min_dimension"`
	DimensionCount int `yaml:"dimension_count"`

	// single
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Resampler   string `yaml:"resampler"`
	Compression string `yaml:"compression"`

	ManifestPath string `yaml:"manifest"`
	DryRun       bool   `yaml:"-"`
	ShowStats    bool   `yaml:"stats"`
	BuildVersion string `yaml:"-"`
}

// Default returns the built-in parameters for a mode. The multi values are
// the ones the bird animation assets were originally produced with; single
// matches the 1 degree, 20x20 frames the renderer loads.
func Default(mode Mode) *Config {
	cfg := &Config{
		Mode:        mode,
		SourcePath:  filepath.Join("resources", "matrix.png"),
		DPI:         150,
		AssetDir:    "resources",
		DirPrefix:   "dim",
		FramePrefix: "bird_",
		Resampler:   "linear",
		Compression: "default",
	}
	switch mode {
	case ModeSingle:
		cfg.Offset = 1
		cfg.MaxImages = 360
		cfg.Width = 20
		cfg.Height = 20
	default:
		cfg.Offset = 4
		cfg.MaxImages = 90
		cfg.MinDimension = 5
		cfg.DimensionCount = 40
	}
	return cfg
}

// Load overlays the YAML file at path on top of cfg. Keys missing from the
// file keep their current values.
func Load(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrapf(err, "parsing config %s", path)
	}
	return nil
}

// Keep returns the name of the asset directory entry that cleanup must spare.
func (c *Config) Keep() string {
	if c.KeepFile != "" {
		return c.KeepFile
	}
	return filepath.Base(c.SourcePath)
}

// Dimensions lists the square target sizes of a multi run in generation order.
func (c *Config) Dimensions() []int {
	dims := make([]int, 0, c.DimensionCount)
	for i := 0; i < c.DimensionCount; i++ {
		dims = append(dims, c.MinDimension+i)
	}
	return dims
}

func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config cannot be nil")
	}
	switch c.Mode {
	case ModeMulti:
		if c.MinDimension <= 0 {
			return fmt.Errorf("min_dimension must be greater than zero, got %d", c.MinDimension)
		}
		if c.DimensionCount <= 0 {
			return fmt.Errorf("dimension_count must be greater than zero, got %d", c.DimensionCount)
		}
		for _, dim := range c.Dimensions() {
			if name := fmt.Sprintf("%s%d", c.DirPrefix, dim); c.KeepFile == name {
				return fmt.Errorf("keep file %q collides with output directory %s", c.KeepFile, name)
			}
		}
	case ModeSingle:
		if c.Width <= 0 || c.Height <= 0 {
			return fmt.Errorf("target size must be positive, got %dx%d", c.Width, c.Height)
		}
	default:
		return fmt.Errorf("unknown mode %q (want %s or %s)", c.Mode, ModeMulti, ModeSingle)
	}

	if c.Offset <= 0 {
		return fmt.Errorf("offset must be greater than zero, got %d", c.Offset)
	}
	if c.MaxImages <= 0 {
		return fmt.Errorf("max_images must be greater than zero, got %d", c.MaxImages)
	}
	if c.SourcePath == "" {
		return fmt.Errorf("source path cannot be empty")
	}
	if c.AssetDir == "" {
		return fmt.Errorf("asset directory cannot be empty")
	}
	if c.DPI <= 0 {
		return fmt.Errorf("dpi must be greater than zero, got %d", c.DPI)
	}
	if c.SourcePage < 0 {
		return fmt.Errorf("page must not be negative, got %d", c.SourcePage)
	}
	if c.FramePrefix == "" || strings.ContainsAny(c.FramePrefix, `/\`) {
		return fmt.Errorf("invalid frame prefix %q", c.FramePrefix)
	}
	if strings.ContainsAny(c.DirPrefix, `/\`) {
		return fmt.Errorf("invalid directory prefix %q", c.DirPrefix)
	}
	return nil
}
