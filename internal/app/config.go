package app

import (
	"io"

	"catalyzer-release/internal/publish"
	"catalyzer-release/internal/workspace"
)

// PublishArg is the only argument that turns off the dry run, and only when
// it is the first argument.
const PublishArg = "--publish"

// Config holds runtime wiring options for building the app.
type Config struct {
	Args     []string         // raw arguments, program name excluded
	Dir      string           // base directory override; default is the working directory
	PlanFile string           // optional YAML plan; default is the catalyzer crates
	Tool     string           // publish command, default "cargo publish"
	Strict   bool             // stop at the first failed target
	Report   string           // optional path of a JSON run report
	LogLevel string           // logrus level name
	Stdout   io.Writer        // progress lines; defaults to os.Stdout
	Stderr   io.Writer        // logs and tool stderr; defaults to os.Stderr
	Getwd    workspace.Getwd  // optional; defaults to os.Getwd
	Executor publish.Executor // optional; defaults to the process shell
}

// DryRunFromArgs reports whether the run only simulates publishing. Only a
// first argument equal to PublishArg disables the dry run; everything else
// is ignored.
func DryRunFromArgs(args []string) bool {
	return len(args) == 0 || args[0] != PublishArg
}
