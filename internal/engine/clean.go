package engine

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/ivlev/rotframes/internal/config"
)

// KeepEntry names the asset dir entry that cleanup must spare so the resolved
// source survives. A source outside the asset dir falls back to cfg.Keep().
// An explicit keep file that would not protect the source is an error.
func KeepEntry(cfg *config.Config, sourcePath string) (string, error) {
	if sourcePath == "" {
		return cfg.Keep(), nil
	}
	entry, inside, err := topEntry(cfg.AssetDir, sourcePath)
	if err != nil {
		return "", err
	}
	if !inside {
		return cfg.Keep(), nil
	}
	if cfg.KeepFile != "" && cfg.KeepFile != entry {
		return "", errors.Errorf("keep entry %q would not spare source %s (lives under %q)", cfg.KeepFile, sourcePath, entry)
	}
	for _, dir := range OutputDirs(cfg) {
		if filepath.Base(dir) == entry {
			return "", errors.Errorf("source %s lives in output directory %s", sourcePath, dir)
		}
	}
	return entry, nil
}

// topEntry returns the first path element of path below dir.
func topEntry(dir, path string) (string, bool, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", false, errors.Wrapf(err, "resolving %s", dir)
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", false, errors.Wrapf(err, "resolving %s", path)
	}
	rel, err := filepath.Rel(absDir, absPath)
	if err != nil {
		return "", false, nil
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false, nil
	}
	return strings.Split(rel, string(filepath.Separator))[0], true, nil
}

// CleanAssetDir removes every entry of dir except the one named keep:
// directories recursively, files one by one. It returns the removed paths.
// With dryRun set nothing is deleted and the paths that would go are
// returned. A missing dir has nothing to clean.
func CleanAssetDir(dir, keep string, dryRun bool) ([]string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "resolving %s", dir)
	}
	if filepath.Dir(abs) == abs {
		return nil, errors.Errorf("refusing to clean filesystem root %s", abs)
	}

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "listing %s", dir)
	}

	var removed []string
	for _, entry := range entries {
		if entry.Name() == keep {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if !dryRun {
			if entry.IsDir() {
				err = os.RemoveAll(path)
			} else {
				err = os.Remove(path)
			}
			if err != nil {
				return removed, errors.Wrapf(err, "removing %s", path)
			}
		}
		glog.V(1).Infof("removed %s (dry run: %v)", path, dryRun)
		removed = append(removed, path)
	}
	return removed, nil
}
