package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"catalyzer-release/internal/buildinfo"
)

func versionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(stdout, buildinfo.String())
		},
	}
}
