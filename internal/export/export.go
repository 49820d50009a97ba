package export

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Record is one project row from the notes export.
type Record struct {
	Name          string   `json:"name"`
	Owner         string   `json:"owner"`
	Kind          string   `json:"kind"`
	LocationCount *int     `json:"location_count"`
	CastCount     *int     `json:"cast_count"`
	CrewCount     *int     `json:"crew_count"`
	DayCount      *int     `json:"day_count"`
	TechniqueTags []string `json:"technique_tags"`
	AddonTags     []string `json:"addon_tags"`
	StyleTags     []string `json:"style_tags"`
	DeliveredTags []string `json:"delivered_tags"`
	CreditsText   string   `json:"credits_text"`
}

const (
	rowMarker      = "\U0001f680" // 🚀 starts every data row
	distressMarker = "\U0001f198" // 🆘 flags owners needing attention; stripped
	lineBreak      = "<br>"
	headerMarker   = "#<br>project"
	minColumns     = 12
)

// Load reads the export file and returns one Record per well-formed data
// row. Rows missing the marker glyph, the minimum column count, or a name
// are skipped silently; only an unreadable file is fatal.
func Load(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}
	defer file.Close()

	var records []Record
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if record, ok := parseRow(scanner.Text()); ok {
			records = append(records, record)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan export %s: %w", path, err)
	}
	return records, nil
}

func parseRow(line string) (Record, bool) {
	if !strings.HasPrefix(line, "|") {
		return Record{}, false
	}
	if strings.Contains(line, "---") {
		return Record{}, false
	}
	if strings.Contains(line, headerMarker) {
		return Record{}, false
	}
	if !strings.Contains(line, rowMarker) {
		return Record{}, false
	}

	raw := strings.Split(line, "|")
	cells := make([]string, 0, len(raw))
	for _, cell := range raw {
		if trimmed := strings.TrimSpace(cell); trimmed != "" {
			cells = append(cells, trimmed)
		}
	}
	if len(cells) < minColumns {
		return Record{}, false
	}

	record := Record{
		Name:          parseName(cells[0]),
		Owner:         parseOwner(cells[1]),
		Kind:          cells[2],
		LocationCount: parseCount(cells[3]),
		CastCount:     parseCount(cells[4]),
		CrewCount:     parseCount(cells[5]),
		DayCount:      parseCount(cells[6]),
		TechniqueTags: parseTags(cells[7]),
		AddonTags:     parseTags(cells[8]),
		StyleTags:     parseTags(cells[9]),
		DeliveredTags: parseTags(cells[10]),
		CreditsText:   cells[11],
	}
	return record, true
}

// parseName turns "🚀<br>Name<br>#" into "Name".
func parseName(cell string) string {
	cell = strings.ReplaceAll(cell, rowMarker, "")
	for _, part := range strings.Split(cell, lineBreak) {
		part = strings.TrimSpace(strings.ReplaceAll(part, "#", ""))
		if part != "" {
			return part
		}
	}
	return ""
}

// parseOwner turns "OwnerName<br>#" into "OwnerName".
func parseOwner(cell string) string {
	first, _, _ := strings.Cut(cell, lineBreak)
	first = strings.ReplaceAll(first, "#", "")
	first = strings.ReplaceAll(first, distressMarker, "")
	return strings.TrimSpace(first)
}

// parseTags splits a multi-value cell on the line-break marker, dropping
// empty and placeholder tokens.
func parseTags(cell string) []string {
	var tags []string
	for _, part := range strings.Split(cell, lineBreak) {
		part = strings.TrimSpace(part)
		if part == "" || part == "#" {
			continue
		}
		tags = append(tags, part)
	}
	return tags
}

// parseCount reads a scalar count cell. Non-numeric cells come back nil,
// matching how absent scope data is omitted during apply.
func parseCount(cell string) *int {
	first, _, _ := strings.Cut(cell, lineBreak)
	first = strings.TrimSpace(strings.ReplaceAll(first, "#", ""))
	if first == "" {
		return nil
	}
	n, err := strconv.Atoi(first)
	if err != nil {
		return nil
	}
	return &n
}
