// Package report persists the matching pass output and summarizes it.
//
// The report artifact is the sole interface between the matching pass and
// the human-gated apply pass: a reviewer turns it into a decision file,
// and apply never re-derives a match from it.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"reconcile/internal/matcher"
)

// Report is the durable artifact of one matching pass.
type Report struct {
	matcher.Partitions
}

// Summary aggregates the counts a reviewer scans first.
type Summary struct {
	Matched        int
	HighConfidence int
	LowConfidence  int
	VideoOnly      int
	ExportOnly     int
	DatabaseOnly   int
}

// New wraps a matching pass output into a Report.
func New(partitions matcher.Partitions) *Report {
	return &Report{Partitions: partitions}
}

// Summarize computes counts, splitting matches at the provided review
// threshold.
func (r *Report) Summarize(reviewThreshold float64) Summary {
	s := Summary{
		Matched:      len(r.Matched),
		VideoOnly:    len(r.VideoOnly),
		ExportOnly:   len(r.ExportOnly),
		DatabaseOnly: len(r.DatabaseOnly),
	}
	for _, m := range r.Matched {
		if m.Confidence >= reviewThreshold {
			s.HighConfidence++
		} else {
			s.LowConfidence++
		}
	}
	return s
}

// Write persists the report as indented JSON, creating parent directories
// as needed.
func (r *Report) Write(path string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}
	encoded, err := json.MarshalIndent(r.Partitions, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := os.WriteFile(path, append(encoded, '\n'), 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}

// Read loads a previously written report.
func Read(path string) (*Report, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	var partitions matcher.Partitions
	if err := json.Unmarshal(raw, &partitions); err != nil {
		return nil, fmt.Errorf("parse report %s: %w", path, err)
	}
	return &Report{Partitions: partitions}, nil
}
