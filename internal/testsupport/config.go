package testsupport

import (
	"path/filepath"
	"testing"

	"chronicle/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.ReportDir = filepath.Join(base, "reports")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithCategories sets the classification buckets on the test config.
func WithCategories(categories ...config.Category) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Categories = categories
	}
}

// WithCompilationMinutes overrides the compilation duration bounds.
func WithCompilationMinutes(target, min, max int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Compilation.TargetDurationMinutes = target
		cfg.Compilation.MinDurationMinutes = min
		cfg.Compilation.MaxDurationMinutes = max
	}
}
