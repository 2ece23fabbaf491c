// Package config provides the configuration loader for carve.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/carve/internal/core/domain"
	"go.trai.ch/carve/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration at path and merges it over the defaults.
// A missing file is only an error when required is set.
func (l *Loader) Load(path string, required bool) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			l.logger.Debug("no " + path + " found, using defaults")
			return cfg, nil
		}
		return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	parsed, err := Parse(data, filepath.Dir(path))
	if err != nil {
		return domain.Config{}, zerr.With(err, "path", path)
	}

	l.logger.Debug("loaded configuration from " + path)
	return parsed, nil
}

// Parse decodes a configuration document and merges it over the defaults.
// Relative root and out paths set in the document are resolved against dir.
func Parse(data []byte, dir string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	var carvefile Carvefile
	if err := yaml.Unmarshal(data, &carvefile); err != nil {
		return domain.Config{}, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	carvefile.apply(&cfg)
	if carvefile.Root != nil {
		cfg.Root = resolve(dir, cfg.Root)
	}
	if carvefile.Out != nil {
		cfg.Out = resolve(dir, cfg.Out)
	}

	if err := cfg.Namespace.Validate(); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
