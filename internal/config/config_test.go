package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"specsort/internal/config"
)

func TestDefaultsValidate(t *testing.T) {
	cfg := config.Default()
	// normalize runs inside Load; emulate the parts Validate depends on.
	cfg.Logging.Format = "console"
	cfg.Logging.Level = "info"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, path, exists, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatalf("expected exists=false for %s", path)
	}
	if cfg.Organize.ReferenceDir != "tol" {
		t.Errorf("ReferenceDir = %q, want tol", cfg.Organize.ReferenceDir)
	}
	if cfg.Organize.ReferencePrefix != "t" {
		t.Errorf("ReferencePrefix = %q, want t", cfg.Organize.ReferencePrefix)
	}
	if got := cfg.Organize.BinaryExtensions; len(got) != 1 || got[0] != ".spe" {
		t.Errorf("BinaryExtensions = %v", got)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "specsort.toml")
	content := `
[paths]
log_dir = "` + filepath.Join(dir, "logs") + `"

[organize]
binary_extensions = ["SPE", " .IMG "]
reference_dir = "references"
sample_extension = "dat"

[logging]
format = "JSON"
level = "Debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved = %q exists = %v", resolved, exists)
	}
	if got := cfg.Organize.BinaryExtensions; len(got) != 2 || got[0] != ".spe" || got[1] != ".img" {
		t.Errorf("BinaryExtensions = %v", got)
	}
	if cfg.Organize.ReferenceDir != "references" {
		t.Errorf("ReferenceDir = %q", cfg.Organize.ReferenceDir)
	}
	if cfg.Organize.SampleExtension != ".dat" {
		t.Errorf("SampleExtension = %q", cfg.Organize.SampleExtension)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Errorf("logging = %q/%q", cfg.Logging.Format, cfg.Logging.Level)
	}
	if cfg.HistoryDBPath() != filepath.Join(cfg.Paths.LogDir, "history.db") {
		t.Errorf("HistoryDBPath = %q", cfg.HistoryDBPath())
	}
}

func TestLoadRejectsBadLogFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "specsort.toml")
	if err := os.WriteFile(path, []byte("[logging]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, _, _, err := config.Load(path)
	if err == nil || !strings.Contains(err.Error(), "logging.format") {
		t.Fatalf("expected logging.format error, got %v", err)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("sample config not found after CreateSample")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sample config invalid: %v", err)
	}
}

func TestRules(t *testing.T) {
	cfg := config.Default()
	rules := cfg.Rules()
	if rules.ReferencePrefix != "t" {
		t.Errorf("ReferencePrefix = %q", rules.ReferencePrefix)
	}
	if len(rules.ExcludedNames) != 3 {
		t.Errorf("ExcludedNames = %v", rules.ExcludedNames)
	}
}
