// Package decision loads the human-reviewed reconciliation file that
// turns a match report into authoritative apply instructions.
//
// The decision file is the only state carried between the matching pass
// and the apply pass; apply trusts its action fields completely and never
// re-derives a match.
package decision

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Action is the reviewer's verdict for one video group.
type Action string

const (
	ActionUpdate Action = "UPDATE"
	ActionCreate Action = "CREATE"
	ActionSkip   Action = "SKIP"
)

// Video is one CDN video attached to a decision entry.
type Video struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
}

// ExportData carries the notes-export fields a reviewer kept for apply.
// Nil pointers and empty slices mean "no data"; apply never writes
// absence over an existing value.
type ExportData struct {
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

// Entry is one reviewed video group.
type Entry struct {
	Owner             string      `json:"owner"`
	Action            Action      `json:"action"`
	ProjectID         string      `json:"project_id,omitempty"`
	ProjectSlug       string      `json:"project_slug,omitempty"`
	ExportName        string      `json:"export_name,omitempty"`
	ExportKind        string      `json:"export_kind,omitempty"`
	ExportData        *ExportData `json:"export_data,omitempty"`
	Videos            []Video     `json:"videos"`
	NewTitle          string      `json:"new_title,omitempty"`
	NewSlug           string      `json:"new_slug,omitempty"`
	IsCampaign        bool        `json:"is_campaign"`
	PasswordProtected bool        `json:"password_protected"`
	Published         *bool       `json:"published,omitempty"`
	Note              string      `json:"note,omitempty"`
}

// File is the complete decision artifact.
type File struct {
	Projects []Entry        `json:"projects"`
	Summary  map[string]int `json:"summary,omitempty"`
}

// Load reads and validates a decision file. Any structural problem is
// fatal: a bad decision file must stop the apply pass before it mutates
// anything.
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read decision file: %w", err)
	}
	var file File
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse decision file %s: %w", path, err)
	}
	if err := file.Validate(); err != nil {
		return nil, fmt.Errorf("decision file %s: %w", path, err)
	}
	return &file, nil
}

// Validate checks action values, UPDATE targets, and the summary block
// when one is present.
func (f *File) Validate() error {
	counts := map[Action]int{}
	for i, entry := range f.Projects {
		switch entry.Action {
		case ActionUpdate, ActionCreate, ActionSkip:
		default:
			return fmt.Errorf("entry %d (%s): unknown action %q", i, entry.Owner, entry.Action)
		}
		if entry.Action == ActionUpdate && strings.TrimSpace(entry.ProjectID) == "" {
			return fmt.Errorf("entry %d (%s): UPDATE without a project_id", i, entry.Owner)
		}
		counts[entry.Action]++
	}

	for key, want := range f.Summary {
		action := Action(strings.ToUpper(key))
		switch action {
		case ActionUpdate, ActionCreate, ActionSkip:
			if got := counts[action]; got != want {
				return fmt.Errorf("summary says %d %s entries, file has %d", want, action, got)
			}
		}
	}
	return nil
}

// ByAction partitions entries into update, create, and skip lists,
// preserving file order.
func (f *File) ByAction() (updates, creates, skips []Entry) {
	for _, entry := range f.Projects {
		switch entry.Action {
		case ActionUpdate:
			updates = append(updates, entry)
		case ActionCreate:
			creates = append(creates, entry)
		case ActionSkip:
			skips = append(skips, entry)
		}
	}
	return updates, creates, skips
}
