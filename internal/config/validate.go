package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateMatching(); err != nil {
		return err
	}
	if err := c.validateApply(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.InventoryFile == "" {
		return errors.New("paths.inventory_file must be set")
	}
	if c.Paths.ExportFile == "" {
		return errors.New("paths.export_file must be set")
	}
	if c.Paths.DatabasePath == "" {
		return errors.New("paths.database_path must be set")
	}
	if c.Paths.ReportPath == "" {
		return errors.New("paths.report_path must be set")
	}
	if c.Paths.DecisionPath == "" {
		return errors.New("paths.decision_path must be set")
	}
	return nil
}

func (c *Config) validateMatching() error {
	if c.Matching.ConfidenceFloor < 0 || c.Matching.ConfidenceFloor > 1 {
		return errors.New("matching.confidence_floor must be between 0 and 1")
	}
	if c.Matching.ReviewThreshold < 0 || c.Matching.ReviewThreshold > 1 {
		return errors.New("matching.review_threshold must be between 0 and 1")
	}
	if c.Matching.ReviewThreshold < c.Matching.ConfidenceFloor {
		return errors.New("matching.review_threshold must not be below matching.confidence_floor")
	}
	if c.Matching.TitleDiscount <= 0 || c.Matching.TitleDiscount > 1 {
		return errors.New("matching.title_discount must be in (0, 1]")
	}
	return nil
}

func (c *Config) validateApply() error {
	if c.Apply.InsertChunkSize < 1 {
		return errors.New("apply.insert_chunk_size must be at least 1")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
