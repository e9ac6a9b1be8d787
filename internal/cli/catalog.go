package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kbukum/errkit/server/endpoint"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the error catalog",
	Long: `Lists every error kind the service can answer with: the standard HTTP
kinds followed by the custom kinds declared under errors.custom in the
service config.`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func runCatalog(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	entries := endpoint.Describe(catalog)
	if flagJSON {
		return outputJSON(cmd.OutOrStdout(), entries)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STATUS\tNAME\tCODE\tMESSAGE")
	for _, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.StatusCode, e.Name, e.Code, e.Message)
	}
	return w.Flush()
}
