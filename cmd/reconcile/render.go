package main

import (
	"fmt"
	"io"
	"strconv"

	"reconcile/internal/export"
	"reconcile/internal/inventory"
	"reconcile/internal/matcher"
	"reconcile/internal/report"
	"reconcile/internal/store"
)

func printSummary(out io.Writer, summary report.Summary) {
	rows := [][]string{
		{"Matched", strconv.Itoa(summary.Matched)},
		{"  high confidence", strconv.Itoa(summary.HighConfidence)},
		{"  needs review", strconv.Itoa(summary.LowConfidence)},
		{"Video only", strconv.Itoa(summary.VideoOnly)},
		{"Export only", strconv.Itoa(summary.ExportOnly)},
		{"Database only", strconv.Itoa(summary.DatabaseOnly)},
	}
	fmt.Fprintln(out, renderTable([]string{"Bucket", "Count"}, rows, 1))
}

// printMatched lists matched pairs in report order, which is ascending by
// confidence so the riskiest pairings come first.
func printMatched(out io.Writer, matched []matcher.MatchResult) {
	if len(matched) == 0 {
		return
	}
	colorize := isTerminal(out)
	fmt.Fprintln(out, "\nMatched (worst first):")
	for _, m := range matched {
		line := fmt.Sprintf("  [%3.0f%%] %s", m.Confidence*100, matchLabel(m))
		if m.Notes != "" {
			line += "  (" + m.Notes + ")"
		}
		if colorize && m.Notes != "" {
			line = "\x1b[33m" + line + "\x1b[0m"
		}
		fmt.Fprintln(out, line)
	}
}

func matchLabel(m matcher.MatchResult) string {
	label := fmt.Sprintf("%q (%d videos)", m.VideoGroup.Owner, len(m.VideoGroup.Videos))
	if m.External != nil {
		label += fmt.Sprintf(" / export %q [%s]", m.External.Name, m.External.Kind)
	}
	if m.Database != nil {
		label += fmt.Sprintf(" / db %q (%s)", m.Database.Title, m.Database.Slug)
	}
	return label
}

func printVideoOnly(out io.Writer, groups []inventory.VideoGroup) {
	if len(groups) == 0 {
		return
	}
	fmt.Fprintln(out, "\nVideo only (need new projects):")
	for _, group := range groups {
		fmt.Fprintf(out, "  %q, %d video(s):\n", group.Owner, len(group.Videos))
		for _, video := range group.Videos {
			fmt.Fprintf(out, "    - %s\n", video.Title)
		}
	}
}

func printExportOnly(out io.Writer, records []export.Record) {
	if len(records) == 0 {
		return
	}
	fmt.Fprintln(out, "\nExport only (no videos):")
	for _, record := range records {
		fmt.Fprintf(out, "  %q by %s [%s]\n", record.Name, record.Owner, record.Kind)
	}
}

func printDatabaseOnly(out io.Writer, projects []store.Project) {
	if len(projects) == 0 {
		return
	}
	fmt.Fprintln(out, "\nDatabase only (no matches):")
	for _, project := range projects {
		state := "draft"
		if project.Published {
			state = "published"
		}
		fmt.Fprintf(out, "  %q (%s), %s\n", project.Title, project.Slug, state)
	}
}
