package testsupport

import (
	"path/filepath"
	"testing"

	"reconcile/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config whose every path lives under a unique temp
// directory per test. It defaults common fields and applies any provided
// options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.InventoryFile = filepath.Join(base, "inventory.json")
	cfg.Paths.ExportFile = filepath.Join(base, "export.md")
	cfg.Paths.DatabasePath = filepath.Join(base, "projects.db")
	cfg.Paths.ReportPath = filepath.Join(base, "report.json")
	cfg.Paths.DecisionPath = filepath.Join(base, "decisions.json")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithThresholds overrides the matching thresholds on the test config.
func WithThresholds(floor, review, discount float64) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Matching.ConfidenceFloor = floor
		cfg.Matching.ReviewThreshold = review
		cfg.Matching.TitleDiscount = discount
	}
}

// WithChunkSize overrides the child-row insert chunk size.
func WithChunkSize(size int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Apply.InsertChunkSize = size
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DatabasePath)
}
