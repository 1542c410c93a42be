// Package app wires application dependencies for the CLI and runs a release.
//
// It builds the logger, publish invoker and sequencer from Config, exposing
// them via the Wire struct, and returns every failure as an error. Mapping
// that error to an exit code is left to the entry point.
package app
