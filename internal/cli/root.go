package cli

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagJSON   bool
	flagConfig string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "errkit",
	Short: "HTTP error taxonomy toolkit",
	Long: `errkit inspects the HTTP error catalog, renders OpenAPI error
documentation for a set of error kinds, and runs a demo server that answers
every failure with the standard error body.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and prints any failure to stderr. The
// returned error is left for main to turn into an exit status.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// ExitCode maps an Execute error to the process exit status: 0 on success,
// 4 for an unknown error kind and 1 otherwise.
func ExitCode(err error) int {
	return getExitCode(err)
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Path to the service config file")

	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
