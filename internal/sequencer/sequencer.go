package sequencer

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"catalyzer-release/internal/domain"
)

// Policy decides what happens after a target fails to publish.
type Policy int

const (
	// ContinueOnFailure records the failure and moves to the next target.
	ContinueOnFailure Policy = iota
	// StopOnFailure aborts the run with a *domain.PublishError.
	StopOnFailure
)

func (p Policy) String() string {
	switch p {
	case StopOnFailure:
		return "stop"
	default:
		return "continue"
	}
}

// Sequencer drives an Invoker over an ordered list of targets.
type Sequencer struct {
	invoker domain.Invoker
	out     io.Writer
	log     logrus.FieldLogger
	policy  Policy
	now     func() time.Time
}

// Option customizes a Sequencer.
type Option func(*Sequencer)

// WithOutput sets where progress lines are printed (default os.Stdout).
func WithOutput(w io.Writer) Option { return func(s *Sequencer) { s.out = w } }

// WithLogger sets the structured logger.
func WithLogger(l logrus.FieldLogger) Option { return func(s *Sequencer) { s.log = l } }

// WithPolicy sets the failure policy (default ContinueOnFailure).
func WithPolicy(p Policy) Option { return func(s *Sequencer) { s.policy = p } }

// New returns a sequencer publishing through inv.
func New(inv domain.Invoker, opts ...Option) *Sequencer {
	s := &Sequencer{
		invoker: inv,
		out:     os.Stdout,
		policy:  ContinueOnFailure,
		now:     time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	if s.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		s.log = l
	}
	return s
}

// Run publishes targets in order. It returns domain.ErrInterrupted as soon
// as ctx is done, without visiting the remaining targets.
func (s *Sequencer) Run(ctx context.Context, targets []domain.Target, dryRun bool) (domain.Report, error) {
	report := domain.Report{DryRun: dryRun, StartedAt: s.now().UTC()}

	s.log.WithFields(logrus.Fields{
		"targets": len(targets),
		"dry_run": dryRun,
		"policy":  s.policy.String(),
	}).Info("sequence.start")

	for i, t := range targets {
		if ctx.Err() != nil {
			s.log.WithField("remaining", len(targets)-i).Warn("sequence.interrupted")
			report.EndedAt = s.now().UTC()
			return report, domain.ErrInterrupted
		}

		fmt.Fprintf(s.out, "Publishing %s...\n", t.Path)
		res := s.invoker.Publish(ctx, t, dryRun)
		report.Results = append(report.Results, res)

		// The tool usually exits non-zero when interrupted; that is not a
		// publish failure.
		if ctx.Err() != nil {
			s.log.WithField("remaining", len(targets)-i-1).Warn("sequence.interrupted")
			report.EndedAt = s.now().UTC()
			return report, domain.ErrInterrupted
		}
		if res.OK() {
			continue
		}
		entry := s.log.WithFields(logrus.Fields{
			"target":    t.Name,
			"path":      t.Path,
			"exit_code": res.ExitCode,
		})
		if res.Err != nil {
			entry = entry.WithError(res.Err)
		}
		if s.policy == StopOnFailure {
			entry.Error("sequence.aborted")
			report.EndedAt = s.now().UTC()
			return report, &domain.PublishError{Target: t, ExitCode: res.ExitCode, Err: res.Err}
		}
		entry.Warn("publish.failed")
	}

	report.EndedAt = s.now().UTC()
	s.log.WithFields(logrus.Fields{
		"published": len(report.Results) - len(report.Failed()),
		"failed":    len(report.Failed()),
	}).Info("sequence.done")
	return report, nil
}
