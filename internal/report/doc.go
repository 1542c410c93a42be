// Package report persists the outcome of a run as a JSON document.
//
// Files are written through a temp file and an atomic rename, so an
// interrupted write never leaves a truncated report behind.
package report
