// Package config loads and validates the reconcile configuration file.
//
// Configuration lives in a TOML file resolved from --config, then
// ~/.config/reconcile/config.toml, then ./reconcile.toml. Load applies
// defaults, expands ~ in path fields, and validates every section before
// returning, so downstream code never re-checks ranges or empty paths.
package config
