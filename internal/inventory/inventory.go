package inventory

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// VideoAsset is one immutable record from the CDN inventory export.
type VideoAsset struct {
	Title         string `json:"title"`
	SourceURL     string `json:"bunny_url"`
	ThumbnailURL  string `json:"thumbnail_url"`
	Collection    string `json:"collection"`
	VimeoURL      string `json:"vimeo_url,omitempty"`
	TransferredAt string `json:"transferred_at,omitempty"`
}

// ID extracts the video identifier: the final path segment of the source
// URL (…/play/604035/GUID → GUID).
func (v VideoAsset) ID() string {
	trimmed := strings.TrimRight(v.SourceURL, "/")
	if idx := strings.LastIndex(trimmed, "/"); idx != -1 {
		return trimmed[idx+1:]
	}
	return trimmed
}

// titleDelimiters lists the glyphs separating owner from display name,
// tried in order.
var titleDelimiters = []string{" • ", " · ", " - "}

// OwnerName extracts the owner label from a video title. When no delimiter
// is present the whole title is the owner.
func OwnerName(title string) string {
	for _, sep := range titleDelimiters {
		if idx := strings.Index(title, sep); idx != -1 {
			return strings.TrimSpace(title[:idx])
		}
	}
	return strings.TrimSpace(title)
}

// DisplayTitle extracts the per-video display name from a title, falling
// back to the whole title when no delimiter is present.
func DisplayTitle(title string) string {
	for _, sep := range titleDelimiters {
		if idx := strings.Index(title, sep); idx != -1 {
			return strings.TrimSpace(title[idx+len(sep):])
		}
	}
	return strings.TrimSpace(title)
}

// StripOwnerPrefix removes a leading "Owner •/·/-" segment from a video
// title for storage. Unlike DisplayTitle it also accepts the bare glyphs,
// matching how applied video rows have always been titled.
func StripOwnerPrefix(title string) string {
	for _, sep := range []string{"•", "·", " - "} {
		if idx := strings.Index(title, sep); idx != -1 {
			return strings.TrimSpace(title[idx+len(sep):])
		}
	}
	return strings.TrimSpace(title)
}

// Load reads a CDN inventory JSON export. Assets with no title or source
// URL are dropped; an unreadable or undecodable file is fatal.
func Load(path string) ([]VideoAsset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read inventory: %w", err)
	}

	var assets []VideoAsset
	if err := json.Unmarshal(raw, &assets); err != nil {
		return nil, fmt.Errorf("parse inventory %s: %w", path, err)
	}

	kept := make([]VideoAsset, 0, len(assets))
	for _, asset := range assets {
		if strings.TrimSpace(asset.Title) == "" || strings.TrimSpace(asset.SourceURL) == "" {
			continue
		}
		kept = append(kept, asset)
	}
	return kept, nil
}
