package commands

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"catalyzer-release/internal/app"
	"catalyzer-release/internal/logging"
	"catalyzer-release/internal/publish"
)

// options are the flags shared by every subcommand.
type options struct {
	dir      string
	planFile string
	tool     string
	strict   bool
	report   string
	logLevel string
}

func (o *options) config(args []string, stdout, stderr io.Writer) app.Config {
	return app.Config{
		Args:     args,
		Dir:      o.dir,
		PlanFile: o.planFile,
		Tool:     o.tool,
		Strict:   o.strict,
		Report:   o.report,
		LogLevel: o.logLevel,
		Stdout:   stdout,
		Stderr:   stderr,
	}
}

// Execute runs the CLI with args (program name excluded). Errors are
// returned unprinted; the caller maps them to an exit code.
func Execute(ctx context.Context, args []string) error {
	root := newRootCmd(args, os.Stdout, os.Stderr)
	return root.ExecuteContext(ctx)
}

func newRootCmd(rawArgs []string, stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	if rawArgs == nil {
		// cobra falls back to os.Args when given nil.
		rawArgs = []string{}
	}

	root := &cobra.Command{
		Use:   "publish-all [--publish]",
		Short: "Publish the catalyzer crates in dependency order",
		Long: "Publish utils, macros, core and the root crate, one after another.\n\n" +
			"Every publish is a dry run unless the first argument is exactly --publish.",
		Example: "  publish-all\n  publish-all --publish\n  publish-all --publish --plan release.yaml --strict",
		Args:    cobra.ArbitraryArgs,
		// --publish and anything else the caller passes are read from the raw args.
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := app.Run(cmd.Context(), opts.config(rawArgs, stdout, stderr))
			return err
		},
	}
	root.SetArgs(rawArgs)
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&opts.dir, "dir", "", "base directory (default: current working directory)")
	pf.StringVar(&opts.planFile, "plan", "", "YAML file listing packages in publish order (default: catalyzer crates)")
	pf.StringVar(&opts.tool, "tool", publish.DefaultTool, "publish command run inside each package directory")
	pf.BoolVar(&opts.strict, "strict", false, "stop at the first package that fails to publish")
	root.Flags().StringVar(&opts.report, "report", "", "write a JSON report of the run to this file")
	pf.StringVar(&opts.logLevel, "log-level", logging.DefaultLevel, "log level (debug, info, warn, error)")

	root.AddCommand(planCmd(opts, stdout, stderr), versionCmd(stdout))
	return root
}
