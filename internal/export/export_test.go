package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeExport(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.md")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func dataRow(cells ...string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}

func validRow() string {
	return dataRow(
		"\U0001f680<br>Spring Launch<br>#",
		"Acme Corp<br>#",
		"commercial",
		"3",
		"5",
		"12",
		"2",
		"drone<br>gimbal<br>#",
		"#",
		"documentary<br>#",
		"cutdowns<br>bts<br>#",
		"director Jane Doe gaffer John Smith",
	)
}

func TestLoadParsesDataRow(t *testing.T) {
	path := writeExport(t,
		"| #<br>project | client | type |",
		"|---|---|---|",
		validRow(),
		"not a table line",
	)

	records, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Load returned %d records, want 1", len(records))
	}

	r := records[0]
	if r.Name != "Spring Launch" {
		t.Errorf("Name = %q", r.Name)
	}
	if r.Owner != "Acme Corp" {
		t.Errorf("Owner = %q", r.Owner)
	}
	if r.Kind != "commercial" {
		t.Errorf("Kind = %q", r.Kind)
	}
	if r.LocationCount == nil || *r.LocationCount != 3 {
		t.Errorf("LocationCount = %v", r.LocationCount)
	}
	if r.DayCount == nil || *r.DayCount != 2 {
		t.Errorf("DayCount = %v", r.DayCount)
	}
	if len(r.TechniqueTags) != 2 || r.TechniqueTags[0] != "drone" || r.TechniqueTags[1] != "gimbal" {
		t.Errorf("TechniqueTags = %v", r.TechniqueTags)
	}
	if len(r.AddonTags) != 0 {
		t.Errorf("AddonTags = %v, want empty for placeholder cell", r.AddonTags)
	}
	if len(r.DeliveredTags) != 2 {
		t.Errorf("DeliveredTags = %v", r.DeliveredTags)
	}
	if r.CreditsText != "director Jane Doe gaffer John Smith" {
		t.Errorf("CreditsText = %q", r.CreditsText)
	}
}

func TestLoadStripsDistressMarker(t *testing.T) {
	row := strings.Replace(validRow(), "Acme Corp<br>#", "\U0001f198Acme Corp<br>#", 1)
	records, err := Load(writeExport(t, row))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(records) != 1 || records[0].Owner != "Acme Corp" {
		t.Fatalf("records = %+v", records)
	}
}

func TestLoadSkipsNonDataRows(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"missing pipe prefix", strings.TrimPrefix(validRow(), "|")},
		{"rule separator", "|---|---|"},
		{"header row", "| #<br>project | client |"},
		{"no marker glyph", strings.ReplaceAll(validRow(), "\U0001f680", "")},
		{"too few columns", dataRow("\U0001f680<br>Name", "Owner", "type")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := Load(writeExport(t, tt.line))
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if len(records) != 0 {
				t.Errorf("row was not skipped: %+v", records)
			}
		})
	}
}

func TestLoadNonNumericCountsAreNil(t *testing.T) {
	row := strings.Replace(validRow(), "| 3 |", "| tbd |", 1)
	records, err := Load(writeExport(t, row))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	if records[0].LocationCount != nil {
		t.Errorf("LocationCount = %v, want nil", *records[0].LocationCount)
	}
}

func TestLoadFatalOnMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.md")); err == nil {
		t.Error("Load succeeded on missing file")
	}
}
