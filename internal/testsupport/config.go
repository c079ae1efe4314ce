package testsupport

import (
	"path/filepath"
	"testing"

	"specsort/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with a unique temp log directory per
// test and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(t.TempDir(), "logs")
	cfg.Logging.Format = "console"
	cfg.Logging.Level = "error"

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithOverwrite enables destination overwriting on the test config.
func WithOverwrite() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Organize.OverwriteExisting = true
	}
}

// WithExclude replaces the exclusion list on the test config.
func WithExclude(names ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Organize.Exclude = names
	}
}
