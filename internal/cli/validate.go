package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KevinLozano-bot/arcadectl/internal/arcade"
)

// newValidateCommand creates "validate" which checks the catalog
// definition against the predefined machine types without building it.
func newValidateCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the catalog definition",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := LoggerFromContext(cmd.Context())

			cfg, _, err := loadCatalogFromCmd(opts, cmd)
			if err != nil {
				return err
			}

			knownTypes := make(map[string]struct{})
			for _, machineType := range arcade.MachineTypes() {
				knownTypes[machineType] = struct{}{}
			}
			knownMaterials := make(map[string]struct{})
			for _, material := range arcade.Materials() {
				knownMaterials[material] = struct{}{}
			}

			var unknownTypes int
			for _, machine := range cfg.Machines {
				if _, ok := knownTypes[machine.Type]; !ok {
					unknownTypes++
					logger.Error("unknown machine type", "machine", machine.Name, "type", machine.Type)
					continue
				}
				if _, ok := knownMaterials[strings.ToLower(machine.Material)]; !ok {
					logger.Warn("material has no pricing rule, machine stays unadjusted",
						"machine", machine.Name, "material", machine.Material)
				}
			}

			if unknownTypes > 0 {
				return fmt.Errorf("catalog validation failed: %d machine(s) with unknown type", unknownTypes)
			}

			logger.Info("catalog definition is valid",
				"catalog", cfg.Catalog, "machines", len(cfg.Machines))
			return nil
		},
	}

	addVarsFlags(cmd)

	return cmd
}
