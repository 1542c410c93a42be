package publish

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"catalyzer-release/internal/domain"
)

// Executor runs a shell command line and reports its exit status.
type Executor interface {
	Exec(ctx context.Context, command string) (exitCode int, err error)
}

// ShellExecutor runs commands through the platform shell with the given
// stdio. The child is not killed when ctx is cancelled; an interrupt from
// the terminal reaches it through the process group instead.
type ShellExecutor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewShellExecutor returns an executor wired to the process stdio.
func NewShellExecutor() *ShellExecutor {
	return &ShellExecutor{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Exec starts command and waits for it to finish.
func (s *ShellExecutor) Exec(ctx context.Context, command string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 1, err
	}
	name, args := shell(command)
	cmd := exec.Command(name, args...)
	cmd.Stdin = s.Stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode(), fmt.Errorf("publish command exited with code %d", ee.ExitCode())
	}
	return 1, err
}

func shell(command string) (string, []string) {
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C", command}
	}
	return "sh", []string{"-c", command}
}

// ShellInvoker publishes targets by running Command through an Executor.
type ShellInvoker struct {
	tool   string
	runner Executor
	log    logrus.FieldLogger
}

// NewInvoker returns an invoker for tool. A nil executor uses the process
// shell; a nil logger discards output.
func NewInvoker(tool string, ex Executor, log logrus.FieldLogger) *ShellInvoker {
	if ex == nil {
		ex = NewShellExecutor()
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	if tool == "" {
		tool = DefaultTool
	}
	return &ShellInvoker{tool: tool, runner: ex, log: log}
}

// Publish runs the publish tool for t and returns its outcome.
func (i *ShellInvoker) Publish(ctx context.Context, t domain.Target, dryRun bool) domain.Result {
	command := Command(i.tool, t, dryRun)
	entry := i.log.WithFields(logrus.Fields{
		"target":  t.Name,
		"path":    t.Path,
		"dry_run": dryRun,
	})
	entry.WithField("command", command).Debug("publish.exec")

	start := time.Now()
	code, err := i.runner.Exec(ctx, command)
	res := domain.Result{
		Target:   t,
		Command:  command,
		ExitCode: code,
		Err:      err,
		Duration: time.Since(start),
	}
	entry.WithFields(logrus.Fields{
		"exit_code": code,
		"duration":  res.Duration.String(),
	}).Debug("publish.done")
	return res
}

var _ domain.Invoker = (*ShellInvoker)(nil)
