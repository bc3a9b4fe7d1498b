package manifest

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const Version = "1.0"

// Write writes a manifest to a YAML file, creating its directory
func Write(m *Manifest, path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return errors.Wrap(err, "encoding manifest")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "creating manifest directory for %s", path)
	}
	return os.WriteFile(path, data, 0644)
}

// Read reads a manifest from a YAML file
func Read(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, "parsing manifest %s", path)
	}

	return &m, nil
}
