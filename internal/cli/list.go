package cli

import (
	"github.com/spf13/cobra"

	"github.com/KevinLozano-bot/arcadectl/internal/engine"
)

// newListCommand creates "list" which builds the catalog and prints
// every machine in declaration order.
func newListCommand(opts *Options) *cobra.Command {
	var (
		onlyTypes string
		skipTypes string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the machines built from the catalog definition",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := LoggerFromContext(cmd.Context())

			result, cfg, err := buildCatalogFromCmd(opts, cmd)
			if err != nil {
				return err
			}

			entries := result.FilterByType(parseNameSet(onlyTypes), parseNameSet(skipTypes))
			logger.Info("catalog built",
				"catalog", cfg.Catalog,
				"machines", result.Catalog.Len(),
				"selected", len(entries),
			)

			return engine.RenderSummaries(cmd.OutOrStdout(), opts.Output, engine.SummarizeEntries(entries))
		},
	}

	addVarsFlags(cmd)
	cmd.Flags().StringVar(&onlyTypes, "only-types", "", "List only selected machine types (comma-separated)")
	cmd.Flags().StringVar(&skipTypes, "skip-types", "", "Skip selected machine types (comma-separated)")

	return cmd
}
