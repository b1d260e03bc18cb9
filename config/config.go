// Package config loads project-level generation defaults from the
// .layergen.yaml file. It sits outside the generation core: the core
// only ever sees the already-resolved load.Defaults value.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/syssam/layergen/compiler/load"
)

// DefaultFile is the conventional defaults file name.
const DefaultFile = ".layergen.yaml"

// Load reads project defaults from the given file. A missing file is
// not an error: generation then runs on built-in defaults.
func Load(path string) (*load.Defaults, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &load.Defaults{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read defaults %s: %w", path, err)
	}
	var defs load.Defaults
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("parse defaults %s: %w", path, err)
	}
	return &defs, nil
}

// LoadDir loads defaults from DefaultFile under dir.
func LoadDir(dir string) (*load.Defaults, error) {
	return Load(filepath.Join(dir, DefaultFile))
}
