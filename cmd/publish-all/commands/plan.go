package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"catalyzer-release/internal/app"
	"catalyzer-release/internal/publish"
)

// planCmd prints what a run would do. It never executes the publish tool.
func planCmd(opts *options, stdout, stderr io.Writer) *cobra.Command {
	var showPublish bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the publish order and commands without running them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var args []string
			if showPublish {
				args = []string{app.PublishArg}
			}
			a, err := app.New(opts.config(args, stdout, stderr))
			if err != nil {
				return err
			}
			p, err := a.Resolve()
			if err != nil {
				return err
			}

			mode := "dry run"
			if !a.DryRun() {
				mode = "publish"
			}
			fmt.Fprintf(stdout, "Plan %s (%s) from %s\n", p.Fingerprint, mode, p.Base)
			for i, t := range p.Targets {
				fmt.Fprintf(stdout, "%d. %s\t%s\n", i+1, t.Name, t.Path)
				fmt.Fprintf(stdout, "   %s\n", publish.Command(opts.tool, t, a.DryRun()))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showPublish, "publish", false, "show the commands of a real publish")
	return cmd
}
