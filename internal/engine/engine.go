package engine

import (
	"fmt"
	"image"
	"os"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/ivlev/rotframes/internal/config"
	"github.com/ivlev/rotframes/internal/manifest"
	"github.com/ivlev/rotframes/internal/source"
	"github.com/ivlev/rotframes/internal/transform"
)

type FrameProject struct {
	Config  *config.Config
	Source  source.Source
	Resizer transform.Resizer
	Writer  FrameWriter
}

func NewFrameProject(cfg *config.Config, src source.Source, rs transform.Resizer, w FrameWriter) *FrameProject {
	return &FrameProject{
		Config:  cfg,
		Source:  src,
		Resizer: rs,
		Writer:  w,
	}
}

// Result summarises a finished (or dry) run.
type Result struct {
	Frames  []FrameSpec
	Dirs    []string
	Removed []string
	Keep    string
	Elapsed time.Duration
	DryRun  bool
}

// Run loads the source, cleans the asset directory (multi mode), creates the
// output directories and writes every planned frame. The first failure stops
// the run and is returned as a *StageError.
func (p *FrameProject) Run() (*Result, error) {
	startTime := time.Now()
	cfg := p.Config

	if err := cfg.Validate(); err != nil {
		return nil, stageErr(StageConfig, err)
	}

	specs := Plan(cfg)
	res := &Result{Frames: specs, Dirs: OutputDirs(cfg), DryRun: cfg.DryRun}

	fmt.Printf("--- [ROTFRAMES: %s] ---\n", cfg.Mode)
	fmt.Printf("[*] Source: %s | Frames: %d | Step: %d°\n", cfg.SourcePath, len(specs), cfg.Offset)
	fmt.Printf("[*] Output: %s (%d dirs) | Resampler: %s\n", cfg.AssetDir, len(res.Dirs), cfg.Resampler)
	fmt.Println("-----------------------------")

	// The source is checked before anything is deleted.
	img, err := p.load()
	if err != nil {
		return nil, stageErr(StageLoad, err)
	}

	if cfg.Mode == config.ModeMulti {
		keep, err := KeepEntry(cfg, p.Source.Path())
		if err != nil {
			return res, stageErr(StageClean, err)
		}
		res.Keep = keep
		removed, err := CleanAssetDir(cfg.AssetDir, keep, cfg.DryRun)
		res.Removed = removed
		if err != nil {
			return res, stageErr(StageClean, err)
		}
		if len(removed) > 0 && !cfg.DryRun {
			fmt.Printf("[!] Removed %d stale entries from %s\n", len(removed), cfg.AssetDir)
		}
	}

	if cfg.DryRun {
		fmt.Printf("[*] Dry run: %d frames planned, nothing written\n", len(specs))
		res.Elapsed = time.Since(startTime)
		return res, nil
	}

	if err := p.prepare(res.Dirs); err != nil {
		return res, stageErr(StagePrepare, err)
	}

	written := 0
	for _, spec := range specs {
		frame := transform.Frame(img, spec.Angle, spec.Width, spec.Height, p.Resizer)
		if err := p.Writer.WriteFrame(frame, spec.Path); err != nil {
			res.Frames = specs[:written]
			return res, stageErr(StageGenerate, errors.Wrapf(err, "writing frame %d (%d°, %dx%d) to %s", spec.Index, spec.Angle, spec.Width, spec.Height, spec.Path))
		}
		glog.V(1).Infof("frame %s: %d° %dx%d", spec.Path, spec.Angle, spec.Width, spec.Height)
		written++
		if spec.Index == cfg.MaxImages-1 {
			fmt.Printf("[>] Ready: %s (%dx%d) %d/%d\n", spec.Dir, spec.Width, spec.Height, written, len(specs))
		}
	}

	res.Elapsed = time.Since(startTime)
	glog.Infof("generated %d frames in %v", written, res.Elapsed)
	return res, nil
}

func (p *FrameProject) load() (image.Image, error) {
	img, err := p.Source.RenderPage(p.Config.SourcePage, p.Config.DPI)
	if err != nil {
		return nil, err
	}
	if img == nil || img.Bounds().Empty() {
		return nil, errors.Errorf("source %s is empty", p.Config.SourcePath)
	}
	b := img.Bounds()
	fmt.Printf("[*] Loaded source %dx%d\n", b.Dx(), b.Dy())
	return img, nil
}

func (p *FrameProject) prepare(dirs []string) error {
	if p.Config.Mode != config.ModeMulti {
		return os.MkdirAll(p.Config.AssetDir, 0755)
	}
	if err := os.MkdirAll(p.Config.AssetDir, 0755); err != nil {
		return err
	}
	// Cleanup already emptied the asset dir, so a surviving one is an error.
	for _, dir := range dirs {
		if err := os.Mkdir(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}

// Manifest describes the frames of res.
func (res *Result) Manifest(cfg *config.Config) *manifest.Manifest {
	m := &manifest.Manifest{
		Version: manifest.Version,
		Mode:    string(cfg.Mode),
		Source:  cfg.SourcePath,
		Offset:  cfg.Offset,
		Frames:  make([]manifest.Frame, 0, len(res.Frames)),
	}
	for _, f := range res.Frames {
		m.Frames = append(m.Frames, manifest.Frame{
			Index:  f.Index,
			File:   f.Path,
			Angle:  f.Angle,
			Width:  f.Width,
			Height: f.Height,
		})
	}
	return m
}
