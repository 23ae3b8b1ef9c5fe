package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KevinLozano-bot/arcadectl/internal/engine"
)

// newShowCommand creates "show" which prints a single catalog machine
// addressed by its declaration name.
func newShowCommand(opts *Options) *cobra.Command {
	var machineName string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a single machine from the catalog definition",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, _, err := buildCatalogFromCmd(opts, cmd)
			if err != nil {
				return err
			}

			entry, ok := result.MachineByName(machineName)
			if !ok {
				return fmt.Errorf("machine %q not found in catalog", machineName)
			}

			return engine.RenderSummaries(cmd.OutOrStdout(), opts.Output, []engine.Summary{engine.Summarize(entry)})
		},
	}

	addVarsFlags(cmd)
	cmd.Flags().StringVar(&machineName, "machine", "", "Catalog machine name")
	_ = cmd.MarkFlagRequired("machine")

	return cmd
}
