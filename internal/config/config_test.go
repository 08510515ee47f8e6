package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"jsopt/internal/config"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "jsopt.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := config.Default()
	if cfg.Output.Format != "pretty" || cfg.Output.Color != "auto" {
		t.Fatalf("unexpected output defaults: %+v", cfg.Output)
	}
	if cfg.Limits.MaxDiagnostics != 64 || cfg.Limits.Jobs != 0 {
		t.Fatalf("unexpected limit defaults: %+v", cfg.Limits)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[output]
format = "json"

[limits]
max-diagnostics = 10
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output.Format != "json" {
		t.Fatalf("format = %q, want json", cfg.Output.Format)
	}
	// Undefined keys keep their defaults.
	if cfg.Output.Color != "auto" {
		t.Fatalf("color = %q, want auto", cfg.Output.Color)
	}
	if cfg.Limits.MaxDiagnostics != 10 {
		t.Fatalf("max-diagnostics = %d, want 10", cfg.Limits.MaxDiagnostics)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []string{
		"[output]\nformat = \"xml\"\n",
		"[output]\ncolor = \"maybe\"\n",
		"[limits]\nmax-diagnostics = 0\n",
		"[limits]\njobs = -1\n",
	}
	for _, content := range cases {
		path := writeConfig(t, t.TempDir(), content)
		if _, err := config.Load(path); err == nil {
			t.Fatalf("Load accepted %q", content)
		}
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[limits]\nmax-diagnostics = 5\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	cfg, ok, err := config.Discover(nested)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if !ok {
		t.Fatal("config not found from nested dir")
	}
	if cfg.Limits.MaxDiagnostics != 5 {
		t.Fatalf("max-diagnostics = %d, want 5", cfg.Limits.MaxDiagnostics)
	}
}

func TestDiscoverMissingFallsBack(t *testing.T) {
	cfg, ok, err := config.Discover(t.TempDir())
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if ok {
		t.Fatal("unexpectedly found a config")
	}
	if cfg.Output.Format != "pretty" {
		t.Fatalf("defaults not returned: %+v", cfg)
	}
}
