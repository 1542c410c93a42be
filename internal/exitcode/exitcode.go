// Package exitcode maps the outcome of a run to a process exit code and the
// message printed before exiting.
package exitcode

import (
	"context"
	"errors"
	"fmt"

	"catalyzer-release/internal/domain"
)

// Exit codes returned by publish-all.
const (
	// Success covers a completed run and a user interrupt.
	Success = 0
	// Failure covers every other error.
	Failure = 1
)

// InterruptNotice is printed when the user interrupts a run.
const InterruptNotice = "Exiting..."

// Classify returns the exit code for err and the message to print. The
// message is empty when nothing should be printed.
func Classify(err error) (int, string) {
	switch {
	case err == nil:
		return Success, ""
	case errors.Is(err, domain.ErrInterrupted), errors.Is(err, context.Canceled):
		return Success, InterruptNotice
	default:
		return Failure, fmt.Sprintf("An error occurred: %v", err)
	}
}
