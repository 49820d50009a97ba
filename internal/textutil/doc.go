// Package textutil provides the string canonicalization and similarity
// scoring used by the reconciliation matcher.
//
// Normalize produces a comparison key only; original strings are kept for
// storage and display. MatchScore ranks candidate pairs and is symmetric,
// but it is a heuristic rather than a metric, so it must not be used for
// transitive clustering.
package textutil
