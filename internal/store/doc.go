// Package store manages the project database backing the reconciliation
// engine: projects plus their child video and credit rows, persisted in
// SQLite.
//
// Projects are keyed by opaque string IDs minted on insert. Child rows are
// replaced wholesale rather than merged, so re-running an apply pass is
// idempotent at the row-set level even though row identities change.
package store
