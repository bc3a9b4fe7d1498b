package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"

	"github.com/ivlev/rotframes/internal/config"
	"github.com/ivlev/rotframes/internal/engine"
	"github.com/ivlev/rotframes/internal/manifest"
	"github.com/ivlev/rotframes/internal/preview"
	"github.com/ivlev/rotframes/internal/source"
	"github.com/ivlev/rotframes/internal/system"
	"github.com/ivlev/rotframes/internal/transform"
)

var version = "dev"

var (
	modePtr        = flag.String("mode", string(config.ModeMulti), "Generation mode: multi (one directory per size, cleans the asset dir) or single (one flat directory)")
	configPtr      = flag.String("config", "", "YAML file with generation parameters")
	sourcePtr      = flag.String("source", "", "Source image, directory (newest image wins) or PDF")
	pagePtr        = flag.Int("page", 0, "PDF page to use as the sprite")
	dpiPtr         = flag.Int("dpi", 150, "DPI for PDF sources")
	assetDirPtr    = flag.String("asset-dir", "", "Output directory")
	keepPtr        = flag.String("keep", "", "Asset directory entry spared by cleanup (default: source file name)")
	dirPrefixPtr   = flag.String("dir-prefix", "dim", "Per-size directory prefix (multi)")
	framePrefixPtr = flag.String("frame-prefix", "bird_", "Frame file name prefix")
	offsetPtr      = flag.Int("offset", 0, "Degrees between consecutive frames")
	framesPtr      = flag.Int("frames", 0, "Number of frames per size")
	minDimPtr      = flag.Int("min-dim", 0, "Smallest square size (multi)")
	dimsPtr        = flag.Int("dims", 0, "Number of sizes (multi)")
	widthPtr       = flag.Int("width", 0, "Frame width (single)")
	heightPtr      = flag.Int("height", 0, "Frame height (single)")
	resamplerPtr   = flag.String("resampler", "linear", "Resampler: "+strings.Join(transform.Resamplers(), ", "))
	compressionPtr = flag.String("compression", "default", "PNG compression: default, best, fast, none")
	manifestPtr    = flag.String("manifest", "", "Write a YAML manifest of the generated frames")
	dryRunPtr      = flag.Bool("dry-run", false, "Print the plan and the entries cleanup would remove, write nothing")
	previewPtr     = flag.Bool("preview", false, "Show the first frame on the terminal")
	gifPtr         = flag.String("gif", "", "Write an animated GIF of the first size's frames")
	gifDelayPtr    = flag.Int("gif-delay", 4, "GIF frame delay in 1/100 s")
	statsPtr       = flag.Bool("stats", false, "Print a performance report")
)

// failf reports a fatal error and returns the process exit status.
func failf(format string, args ...interface{}) int {
	msg := fmt.Sprintf(format, args...)
	glog.Errorf("%s", msg)
	fmt.Fprintf(os.Stderr, "[-] %s\n", msg)
	return 1
}

func main() {
	os.Exit(run())
}

// run returns instead of exiting so deferred cleanup (source close, log
// flush) always happens.
func run() int {
	flagutil.Parse()
	defer glog.Flush()

	cfg, err := buildConfig()
	if err != nil {
		return failf("config: %v", err)
	}
	cfg.BuildVersion = version

	src, err := source.Open(cfg.SourcePath)
	if err != nil {
		return failf("%v", &engine.StageError{Stage: engine.StageLoad, Err: err})
	}
	return generate(cfg, src)
}

// generate runs the frame project on an opened source and owns closing it.
func generate(cfg *config.Config, src source.Source) int {
	defer src.Close()

	rs, err := transform.NewResizer(cfg.Resampler)
	if err != nil {
		return failf("config: %v", err)
	}
	pw, err := engine.NewPNGWriter(cfg.Compression)
	if err != nil {
		return failf("config: %v", err)
	}

	project := engine.NewFrameProject(cfg, src, rs, pw)
	res, err := project.Run()
	if err != nil {
		stage, _ := engine.StageOf(err)
		return failf("run failed at stage %q: %v", stage, err)
	}

	if cfg.DryRun {
		for _, dir := range res.Dirs {
			fmt.Printf("[*] would write %d frames to %s\n", cfg.MaxImages, dir)
		}
		for _, path := range res.Removed {
			fmt.Printf("[!] would remove %s\n", path)
		}
		return 0
	}

	if cfg.ManifestPath != "" {
		if err := manifest.Write(res.Manifest(cfg), cfg.ManifestPath); err != nil {
			return failf("manifest: %v", err)
		}
		fmt.Printf("[*] Manifest: %s\n", cfg.ManifestPath)
	}

	first := firstCycle(res)
	if *gifPtr != "" {
		if err := preview.WriteGIF(first, *gifPtr, *gifDelayPtr); err != nil {
			return failf("gif: %v", err)
		}
		fmt.Printf("[*] GIF preview: %s\n", *gifPtr)
	}
	if *previewPtr && len(first) > 0 {
		if err := preview.PrintFile(first[0]); err != nil {
			glog.Warningf("preview: %v", err)
		}
	}

	if cfg.ShowStats {
		fmt.Print(system.Collect(cfg.BuildVersion, len(res.Frames), res.Elapsed).Report())
	}

	fmt.Printf("[+++] Done! %d frames in %s\n", len(res.Frames), cfg.AssetDir)
	return 0
}

// firstCycle returns the frame files of the first output directory.
func firstCycle(res *engine.Result) []string {
	var paths []string
	for _, f := range res.Frames {
		if len(res.Dirs) > 0 && f.Dir != res.Dirs[0] {
			break
		}
		paths = append(paths, f.Path)
	}
	return paths
}
