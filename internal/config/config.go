package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains input, artifact, and log locations.
type Paths struct {
	InventoryFile string `toml:"inventory_file"`
	ExportFile    string `toml:"export_file"`
	DatabasePath  string `toml:"database_path"`
	ReportPath    string `toml:"report_path"`
	DecisionPath  string `toml:"decision_path"`
	LogDir        string `toml:"log_dir"`
}

// CDN contains settings describing the video CDN the inventory came from.
type CDN struct {
	Hostname            string   `toml:"hostname"`
	ExcludedCollections []string `toml:"excluded_collections"`
}

// Matching contains the scoring thresholds used by the three-way matcher.
// The defaults reproduce the thresholds the reconciliation has always run
// with; they are configuration rather than constants so a reviewer can
// tighten or loosen the floor without a rebuild.
type Matching struct {
	// ConfidenceFloor is the minimum score a candidate must reach to be
	// claimed by a match. Default: 0.4
	ConfidenceFloor float64 `toml:"confidence_floor"`
	// ReviewThreshold marks matches below it as needing human review.
	// Default: 0.7
	ReviewThreshold float64 `toml:"review_threshold"`
	// TitleDiscount scales export matches that came from a video title
	// rather than the owner label. Default: 0.9
	TitleDiscount float64 `toml:"title_discount"`
}

// Apply contains settings for the apply pass.
type Apply struct {
	// InsertChunkSize bounds how many child rows go into one insert call.
	InsertChunkSize int `toml:"insert_chunk_size"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for reconcile.
type Config struct {
	Paths    Paths    `toml:"paths"`
	CDN      CDN      `toml:"cdn"`
	Matching Matching `toml:"matching"`
	Apply    Apply    `toml:"apply"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/reconcile/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("reconcile.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories artifacts and logs land in.
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.Paths.LogDir}
	for _, artifact := range []string{c.Paths.ReportPath, c.Paths.DatabasePath} {
		if dir := filepath.Dir(artifact); dir != "" && dir != "." {
			dirs = append(dirs, dir)
		}
	}
	for _, dir := range dirs {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// Sample returns the embedded sample configuration text.
func Sample() string {
	return sampleConfig
}
