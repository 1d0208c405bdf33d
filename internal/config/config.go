// Package config handles the optional defaults file for uranus-bib.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no config path is given.
const DefaultFile = ".uranus-bib.yml"

// Config holds defaults for the command line flags.
type Config struct {
	OutFormat          string `yaml:"out_format,omitempty"`
	BibAssetsDir       string `yaml:"bib_assets_dir,omitempty"`
	BibAssetsURLPrefix string `yaml:"bib_assets_url_prefix,omitempty"`
	People             string `yaml:"people,omitempty"`
	LogLevel           string `yaml:"log_level,omitempty"`
}

// Load reads the config file at path.
// With an empty path it tries DefaultFile and returns an empty config (not an
// error) if that file doesn't exist. An explicit path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(ExpandPath(path))
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.BibAssetsDir = ExpandPath(cfg.BibAssetsDir)
	cfg.People = ExpandPath(cfg.People)
	return &cfg, nil
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[1:])
}
