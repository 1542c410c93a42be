package domain

import "context"

// Invoker runs the external publish tool against a single target.
//
// Implementations must not treat a non-zero exit as an error return; the
// outcome is carried in the Result so the caller decides what to do next.
type Invoker interface {
	Publish(ctx context.Context, t Target, dryRun bool) Result
}
