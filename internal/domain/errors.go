package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInterrupted is returned when the user interrupts a run.
	ErrInterrupted = errors.New("interrupted")
	// ErrInvalidPlan is returned for malformed plan files.
	ErrInvalidPlan = errors.New("invalid plan")
)

// PublishError reports that a target failed while the sequencer was
// configured to stop on the first failure.
type PublishError struct {
	Target   Target
	ExitCode int
	Err      error
}

func (e *PublishError) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := fmt.Sprintf("publishing %s (%s) failed", e.Target.Name, e.Target.Path)
	if e.ExitCode != 0 {
		base += fmt.Sprintf(" with exit code %d", e.ExitCode)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *PublishError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
