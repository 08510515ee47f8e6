// Package config loads jsopt.toml, the optional per-project defaults file.
// Flags always win over the file; the file wins over built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds tool-wide defaults.
type Config struct {
	Output struct {
		Format string `toml:"format"` // pretty | json | msgpack
		Color  string `toml:"color"`  // auto | on | off
	} `toml:"output"`
	Limits struct {
		MaxDiagnostics int `toml:"max-diagnostics"`
		Jobs           int `toml:"jobs"` // 0 means GOMAXPROCS
	} `toml:"limits"`
}

// Default returns the built-in defaults used when no jsopt.toml exists.
func Default() Config {
	var cfg Config
	cfg.Output.Format = "pretty"
	cfg.Output.Color = "auto"
	cfg.Limits.MaxDiagnostics = 64
	cfg.Limits.Jobs = 0
	return cfg
}

// ValidFormat reports whether s names a known output format.
func ValidFormat(s string) bool {
	switch s {
	case "pretty", "json", "msgpack":
		return true
	}
	return false
}

// ValidColor reports whether s names a known color mode.
func ValidColor(s string) bool {
	switch s {
	case "auto", "on", "off":
		return true
	}
	return false
}

// Find walks up from startDir to locate jsopt.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "jsopt.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load parses path over the built-in defaults. Keys the file leaves out
// keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if meta.IsDefined("output", "format") && !ValidFormat(cfg.Output.Format) {
		return Config{}, fmt.Errorf("%s: unknown output.format %q", path, cfg.Output.Format)
	}
	if meta.IsDefined("output", "color") && !ValidColor(cfg.Output.Color) {
		return Config{}, fmt.Errorf("%s: unknown output.color %q", path, cfg.Output.Color)
	}
	if cfg.Limits.MaxDiagnostics < 1 {
		return Config{}, fmt.Errorf("%s: limits.max-diagnostics must be positive", path)
	}
	if cfg.Limits.Jobs < 0 {
		return Config{}, fmt.Errorf("%s: limits.jobs must not be negative", path)
	}
	return cfg, nil
}

// Discover finds and loads jsopt.toml starting from startDir. When no file
// exists the built-in defaults come back with ok=false.
func Discover(startDir string) (Config, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Default(), false, err
	}
	if !ok {
		return Default(), false, nil
	}
	cfg, err := Load(path)
	if err != nil {
		return Default(), false, err
	}
	return cfg, true, nil
}
