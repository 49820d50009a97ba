package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeCDN()
	c.normalizeMatching()
	c.normalizeApply()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.InventoryFile, err = expandPath(c.Paths.InventoryFile); err != nil {
		return fmt.Errorf("paths.inventory_file: %w", err)
	}
	if c.Paths.ExportFile, err = expandPath(c.Paths.ExportFile); err != nil {
		return fmt.Errorf("paths.export_file: %w", err)
	}
	if c.Paths.DatabasePath, err = expandPath(c.Paths.DatabasePath); err != nil {
		return fmt.Errorf("paths.database_path: %w", err)
	}
	if c.Paths.ReportPath, err = expandPath(c.Paths.ReportPath); err != nil {
		return fmt.Errorf("paths.report_path: %w", err)
	}
	if c.Paths.DecisionPath, err = expandPath(c.Paths.DecisionPath); err != nil {
		return fmt.Errorf("paths.decision_path: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeCDN() {
	c.CDN.Hostname = strings.TrimSpace(c.CDN.Hostname)
	if c.CDN.Hostname == "" {
		c.CDN.Hostname = defaultCDNHostname
	}
	cleaned := make([]string, 0, len(c.CDN.ExcludedCollections))
	for _, name := range c.CDN.ExcludedCollections {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	c.CDN.ExcludedCollections = cleaned
}

func (c *Config) normalizeMatching() {
	if c.Matching.ConfidenceFloor == 0 {
		c.Matching.ConfidenceFloor = defaultConfidenceFloor
	}
	if c.Matching.ReviewThreshold == 0 {
		c.Matching.ReviewThreshold = defaultReviewThreshold
	}
	if c.Matching.TitleDiscount == 0 {
		c.Matching.TitleDiscount = defaultTitleDiscount
	}
}

func (c *Config) normalizeApply() {
	if c.Apply.InsertChunkSize == 0 {
		c.Apply.InsertChunkSize = defaultInsertChunkSize
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
