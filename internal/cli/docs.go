package cli

import (
	"github.com/spf13/cobra"

	"github.com/kbukum/errkit/schema"
	"github.com/kbukum/errkit/server"
	"github.com/kbukum/errkit/version"
)

var (
	flagDocsMethod string
	flagDocsPath   string
)

var docsCmd = &cobra.Command{
	Use:   "docs <name>...",
	Short: "Render error response documentation",
	Long: `Groups the named error kinds by status code and prints the response
fragments. With --path the fragments are printed as a complete OpenAPI
document describing that route.`,
	Example: `  errkit docs NotFoundError ValidationError
  errkit docs --path /users/:id NotFoundError ValidationError`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDocs,
}

func init() {
	docsCmd.Flags().StringVar(&flagDocsMethod, "method", "GET", "HTTP method of the documented route")
	docsCmd.Flags().StringVar(&flagDocsPath, "path", "", "Route path (gin syntax); prints an OpenAPI document")
}

func runDocs(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	selected := make([]any, len(args))
	for i, name := range args {
		selected[i] = name
	}
	fragments, err := schema.Group(catalog, selected...)
	if err != nil {
		return err
	}

	if flagDocsPath == "" {
		return outputJSON(cmd.OutOrStdout(), fragments)
	}

	docs := server.NewDocs(serviceName, version.Get().Version)
	docs.Route(flagDocsMethod, flagDocsPath, fragments)
	return outputJSON(cmd.OutOrStdout(), docs.Document())
}
