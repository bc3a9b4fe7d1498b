package main

import (
	"flag"

	"github.com/ivlev/rotframes/internal/config"
)

// buildConfig resolves the run parameters: mode defaults, then the YAML file,
// then any flag given on the command line.
func buildConfig() (*config.Config, error) {
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	mode := config.Mode(*modePtr)
	if *configPtr != "" && !set["mode"] {
		peek := &config.Config{}
		if err := config.Load(*configPtr, peek); err != nil {
			return nil, err
		}
		if peek.Mode != "" {
			mode = peek.Mode
		}
	}

	cfg := config.Default(mode)
	if *configPtr != "" {
		if err := config.Load(*configPtr, cfg); err != nil {
			return nil, err
		}
	}
	cfg.Mode = mode

	applyFlags(cfg, set)
	return cfg, cfg.Validate()
}

func applyFlags(cfg *config.Config, set map[string]bool) {
	str := func(name string, dst *string, val string) {
		if set[name] {
			*dst = val
		}
	}
	num := func(name string, dst *int, val int) {
		if set[name] {
			*dst = val
		}
	}

	str("source", &cfg.SourcePath, *sourcePtr)
	num("page", &cfg.SourcePage, *pagePtr)
	num("dpi", &cfg.DPI, *dpiPtr)
	str("asset-dir", &cfg.AssetDir, *assetDirPtr)
	str("keep", &cfg.KeepFile, *keepPtr)
	str("dir-prefix", &cfg.DirPrefix, *dirPrefixPtr)
	str("frame-prefix", &cfg.FramePrefix, *framePrefixPtr)
	num("offset", &cfg.Offset, *offsetPtr)
	num("frames", &cfg.MaxImages, *framesPtr)
	num("min-dim", &cfg.MinDimension, *minDimPtr)
	num("dims", &cfg.DimensionCount, *dimsPtr)
	num("width", &cfg.Width, *widthPtr)
	num("height", &cfg.Height, *heightPtr)
	str("resampler", &cfg.Resampler, *resamplerPtr)
	str("compression", &cfg.Compression, *compressionPtr)
	str("manifest", &cfg.ManifestPath, *manifestPtr)
	if set["stats"] {
		cfg.ShowStats = *statsPtr
	}
	cfg.DryRun = *dryRunPtr
}
