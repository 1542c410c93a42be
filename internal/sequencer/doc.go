// Package sequencer publishes targets one after another, in the order given.
//
// The sequencer never reorders or parallelizes: later targets are assumed to
// depend on earlier ones. Before each target it prints a progress line, and
// it stops early only when the context is cancelled (a user interrupt) or,
// when configured with StopOnFailure, after the first failed target.
package sequencer
