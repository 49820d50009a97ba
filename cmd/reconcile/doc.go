// Package main hosts the reconcile CLI entrypoint and command graph.
//
// The Cobra-based command tree turns terminal invocations into the two
// halves of the reconciliation workflow: the matching pass that writes a
// review report, and the apply pass that executes a reviewed decision
// file against the project store. It centralizes configuration
// resolution and structured logging setup so subcommands can focus on
// user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the
// internal packages first, then surface it through dedicated commands or
// flags here.
package main
