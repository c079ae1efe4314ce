// Package main hosts the specsort CLI entrypoint and command graph.
//
// The Cobra-based command tree covers the organize pass itself, the dry-run
// scan preview, run-history inspection, and configuration scaffolding. It
// centralizes configuration resolution and structured logging setup so
// subcommands can focus on user experience instead of wiring.
package main
