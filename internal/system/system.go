package system

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".pdf"}

// IsImage reports whether name has an extension the sources can decode.
func IsImage(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// FindLatestImage returns the most recently modified decodable file in dir.
func FindLatestImage(dir string) (string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var latestFile string
	var latestTime time.Time

	for _, f := range files {
		if f.IsDir() || !IsImage(f.Name()) {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		if latestFile == "" || info.ModTime().After(latestTime) {
			latestTime = info.ModTime()
			latestFile = filepath.Join(dir, f.Name())
		}
	}

	if latestFile == "" {
		return "", fmt.Errorf("no images found in %s", dir)
	}

	return latestFile, nil
}
