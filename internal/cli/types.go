package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/KevinLozano-bot/arcadectl/internal/arcade"
)

// typesReport lists the predefined machine types and the materials
// with pricing rules.
type typesReport struct {
	MachineTypes []string `yaml:"machineTypes" json:"machineTypes"`
	Materials    []string `yaml:"materials" json:"materials"`
}

// newTypesCommand creates "types" which prints the predefined machine
// types and material pricing rules.
func newTypesCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "Print the predefined machine types and materials",
		RunE: func(cmd *cobra.Command, _ []string) error {
			report := typesReport{
				MachineTypes: arcade.MachineTypes(),
				Materials:    arcade.Materials(),
			}

			switch strings.ToLower(strings.TrimSpace(opts.Output)) {
			case "json":
				payload, _ := json.MarshalIndent(report, "", "  ")
				fmt.Fprintln(cmd.OutOrStdout(), string(payload))
				return nil
			case "", "yaml":
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(report); err != nil {
					_ = enc.Close()
					return fmt.Errorf("encode types report: %w", err)
				}
				return enc.Close()
			default:
				return fmt.Errorf("unsupported output format %q", opts.Output)
			}
		},
	}
}
