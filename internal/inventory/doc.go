// Package inventory loads the CDN video inventory and clusters its assets
// into per-owner groups.
//
// Video titles embed an owner label and a display name separated by a
// delimiter glyph ("Acme Corp • Spring Launch"). Grouping keys on the raw
// extracted owner so original casing survives into reports; all fuzzy
// comparison happens downstream on demand.
package inventory
