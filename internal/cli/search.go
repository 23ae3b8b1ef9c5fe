package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KevinLozano-bot/arcadectl/internal/arcade"
	"github.com/KevinLozano-bot/arcadectl/internal/catalog"
	"github.com/KevinLozano-bot/arcadectl/internal/engine"
)

// newSearchCommand creates the "search" group with the catalog queries.
func newSearchCommand(opts *Options) *cobra.Command {
	return newGroupCommand(
		"search",
		"Search machines in the catalog",
		newSearchCountCommand(opts),
		newSearchMaterialCommand(opts),
		newSearchGameCommand(opts),
		newSearchPriceCommand(opts),
		newSearchWeightCommand(opts),
		newSearchPowerCommand(opts),
	)
}

// newSearchCountCommand creates "search count" for exact videogame counts.
func newSearchCountCommand(opts *Options) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Find machines with an exact number of installed videogames",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, _, err := buildCatalogFromCmd(opts, cmd)
			if err != nil {
				return err
			}
			return renderMachineReport(cmd, opts, result, result.Catalog.SearchByVideogameCount(count))
		},
	}

	addVarsFlags(cmd)
	cmd.Flags().IntVar(&count, "count", 0, "Exact number of installed videogames")
	_ = cmd.MarkFlagRequired("count")

	return cmd
}

// newSearchMaterialCommand creates "search material" for material lookups.
func newSearchMaterialCommand(opts *Options) *cobra.Command {
	var material string

	cmd := &cobra.Command{
		Use:   "material",
		Short: "Find machines built from a material",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, _, err := buildCatalogFromCmd(opts, cmd)
			if err != nil {
				return err
			}
			return renderMachineReport(cmd, opts, result, result.Catalog.SearchByMaterial(material))
		},
	}

	addVarsFlags(cmd)
	cmd.Flags().StringVar(&material, "material", "", "Material label, matched case-insensitively")
	_ = cmd.MarkFlagRequired("material")

	return cmd
}

// newSearchGameCommand creates "search game" for installed-title lookups.
func newSearchGameCommand(opts *Options) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "game",
		Short: "Find machines that have a videogame installed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, _, err := buildCatalogFromCmd(opts, cmd)
			if err != nil {
				return err
			}
			return renderMachineReport(cmd, opts, result, result.Catalog.SearchByVideogameName(name))
		},
	}

	addVarsFlags(cmd)
	cmd.Flags().StringVar(&name, "name", "", "Videogame title, matched case-insensitively")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

// newSearchPriceCommand creates "search price" over machine totals.
func newSearchPriceCommand(opts *Options) *cobra.Command {
	return newRangeSearchCommand(opts, "price",
		"Find machines whose total price falls in a range", "currency units",
		func(c *catalog.Manager, min, max float64) []*arcade.Machine {
			return c.SearchByPriceRange(min, max)
		})
}

// newSearchWeightCommand creates "search weight" over machine weights.
func newSearchWeightCommand(opts *Options) *cobra.Command {
	return newRangeSearchCommand(opts, "weight",
		"Find machines whose weight falls in a range", "kilograms",
		func(c *catalog.Manager, min, max float64) []*arcade.Machine {
			return c.SearchByWeightRange(min, max)
		})
}

// newSearchPowerCommand creates "search power" over power draw.
func newSearchPowerCommand(opts *Options) *cobra.Command {
	return newRangeSearchCommand(opts, "power",
		"Find machines whose power consumption falls in a range", "watts",
		func(c *catalog.Manager, min, max float64) []*arcade.Machine {
			return c.SearchByPowerConsumptionRange(min, max)
		})
}

// newRangeSearchCommand builds a search subcommand over an inclusive
// numeric range. An inverted range is accepted and matches nothing.
func newRangeSearchCommand(opts *Options, use, short, unit string, search func(*catalog.Manager, float64, float64) []*arcade.Machine) *cobra.Command {
	var (
		min float64
		max float64
	)

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, _, err := buildCatalogFromCmd(opts, cmd)
			if err != nil {
				return err
			}
			return renderMachineReport(cmd, opts, result, search(result.Catalog, min, max))
		},
	}

	addVarsFlags(cmd)
	cmd.Flags().Float64Var(&min, "min", 0, fmt.Sprintf("Lower bound in %s (inclusive)", unit))
	cmd.Flags().Float64Var(&max, "max", 0, fmt.Sprintf("Upper bound in %s (inclusive)", unit))
	_ = cmd.MarkFlagRequired("min")
	_ = cmd.MarkFlagRequired("max")

	return cmd
}

// renderMachineReport maps matched machines back to their catalog
// entries and renders them in the requested output format. An empty
// match list renders an empty report and is not an error.
func renderMachineReport(cmd *cobra.Command, opts *Options, result *engine.BuildResult, machines []*arcade.Machine) error {
	logger := LoggerFromContext(cmd.Context())

	if len(machines) == 0 {
		logger.Info("no machines matched")
	}

	summaries := make([]engine.Summary, 0, len(machines))
	for _, machine := range machines {
		entry, ok := result.EntryFor(machine)
		if !ok {
			entry = engine.BuiltMachine{Machine: machine}
		}
		summaries = append(summaries, engine.Summarize(entry))
	}

	return engine.RenderSummaries(cmd.OutOrStdout(), opts.Output, summaries)
}
