// Package matcher pairs CDN video groups with notes-export records and
// database projects.
//
// The assignment is greedy and single-pass: groups are visited in loader
// order, each claims at most one export record and one database project,
// and a claimed record never re-enters candidacy. That is deliberately not
// a global optimum — low-margin ties go to whichever group came first —
// and the tradeoff is accepted because input order is stable and a human
// reviews every result. Strategy isolates the algorithm so an optimal
// assignment could be substituted later.
package matcher
