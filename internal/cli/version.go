package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbukum/errkit/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Displays the version, commit and Go version of errkit.`,
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.Get()
	if flagJSON {
		return outputJSON(cmd.OutOrStdout(), info)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "errkit version %s (%s)\n", info, info.GoVersion)
	return nil
}
