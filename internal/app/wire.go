package app

import (
	"os"

	"github.com/sirupsen/logrus"

	"catalyzer-release/internal/logging"
	"catalyzer-release/internal/publish"
	"catalyzer-release/internal/sequencer"
)

// Wire bundles the logger and sequencer for the CLI.
type Wire struct {
	Log       *logrus.Logger
	Sequencer *sequencer.Sequencer
}

// NewWire constructs the dependency graph from cfg. The invoker is only
// reachable through the sequencer.
func NewWire(cfg Config) (*Wire, error) {
	stdout := cfg.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := cfg.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	log, err := logging.New(stderr, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	// The tool shares the terminal with the progress lines.
	ex := cfg.Executor
	if ex == nil {
		ex = &publish.ShellExecutor{Stdin: os.Stdin, Stdout: stdout, Stderr: stderr}
	}
	inv := publish.NewInvoker(cfg.Tool, ex, log)

	policy := sequencer.ContinueOnFailure
	if cfg.Strict {
		policy = sequencer.StopOnFailure
	}
	seq := sequencer.New(inv,
		sequencer.WithOutput(stdout),
		sequencer.WithLogger(log),
		sequencer.WithPolicy(policy),
	)

	return &Wire{Log: log, Sequencer: seq}, nil
}
