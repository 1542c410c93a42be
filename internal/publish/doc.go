// Package publish runs the external publish tool against one target.
//
// Each invocation is a single shell command that changes into the target
// directory and runs the tool with --allow-dirty, adding --dry-run when the
// run only simulates the upload. A non-zero exit from the tool is reported
// in the returned domain.Result, never as a Go error, so the caller owns the
// continue-or-abort decision.
package publish
