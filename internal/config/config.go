package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pelletier/go-toml/v2"
)

const fileName = "todos.toml"

// Config controls which files are scanned and which words count as markers.
// It is read from an optional todos.toml at the scan root; every field may
// be omitted.
type Config struct {
	// Extensions lists file extensions (without the dot) of files to scan.
	Extensions []string `toml:"extensions"`
	// Markers lists the word prefixes treated as actionable-comment markers.
	Markers []string `toml:"markers"`
	// Ignore lists glob patterns of root-relative paths to skip. Patterns
	// use doublestar syntax, so "vendored/**" skips a whole subtree.
	Ignore []string `toml:"ignore"`
}

func defaultConfig() *Config {
	return &Config{
		Extensions: []string{"rs"},
		Markers:    []string{"TODO", "FIXME", "XXX"},
		Ignore:     []string{},
	}
}

// Read loads todos.toml from the scan root. A missing file yields the
// defaults with no error. An unreadable or invalid file also yields the
// defaults, along with an error the caller can surface as a warning.
func Read(root string) (*Config, error) {
	path := filepath.Join(root, fileName)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("read %s: %w", path, err)
	}

	cfg := defaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parse %s: %w", path, err)
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = defaultConfig().Extensions
	}
	if len(cfg.Markers) == 0 {
		cfg.Markers = defaultConfig().Markers
	}
	for _, pattern := range cfg.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return defaultConfig(), fmt.Errorf("parse %s: invalid ignore pattern %q", path, pattern)
		}
	}
	return cfg, nil
}
