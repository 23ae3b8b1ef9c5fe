package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KevinLozano-bot/arcadectl/internal/arcade"
	"github.com/KevinLozano-bot/arcadectl/internal/config"
	"github.com/KevinLozano-bot/arcadectl/internal/engine"
)

// newCreateCommand creates "create" which builds a single machine from
// flags, without touching the catalog definition file.
func newCreateCommand(opts *Options) *cobra.Command {
	var (
		machineType string
		material    string
		color       string
		games       []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Build a single machine and print its report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := LoggerFromContext(cmd.Context())

			factory := arcade.NewFactory()
			machine, ok := factory.CreateMachine(machineType, material, color)
			if !ok {
				return fmt.Errorf("unknown machine type %q, expected one of: %s",
					machineType, strings.Join(arcade.MachineTypes(), ", "))
			}

			for _, raw := range games {
				spec, err := parseGameSpec(raw)
				if err != nil {
					return err
				}
				machine.AddVideogame(arcade.NewVideogame(
					spec.Name,
					spec.Storytelling,
					spec.Graphics,
					spec.Category,
					spec.Price,
					spec.Year,
					spec.HighDefinition,
				))
			}

			logger.Info("machine built",
				"type", machineType,
				"material", material,
				"weight", machine.Weight,
				"totalPrice", machine.TotalPrice(),
			)

			summary := engine.Summarize(engine.BuiltMachine{Type: machineType, Machine: machine})
			return engine.RenderSummaries(cmd.OutOrStdout(), opts.Output, []engine.Summary{summary})
		},
	}

	cmd.Flags().StringVar(&machineType, "type", "", "Machine type key, matched case-sensitively (see \"arcadectl types\")")
	cmd.Flags().StringVar(&material, "material", "", "Cabinet material (wood, aluminium, carbon fiber or any custom label)")
	cmd.Flags().StringVar(&color, "color", "", "Cabinet color")
	cmd.Flags().StringArrayVar(&games, "game", nil, "Videogame to install, in name=...,price=... form (repeatable)")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("material")

	return cmd
}

// parseGameSpec parses a --game value of comma-separated key=value
// pairs into a videogame declaration. Supported keys: name,
// storytelling, graphics, category, price, year, hd.
func parseGameSpec(raw string) (config.VideogameSpec, error) {
	var spec config.VideogameSpec

	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return spec, fmt.Errorf("invalid game attribute %q, expected key=value", part)
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		switch key {
		case "name":
			spec.Name = value
		case "storytelling":
			spec.Storytelling = value
		case "graphics":
			spec.Graphics = value
		case "category":
			spec.Category = value
		case "price":
			price, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return spec, fmt.Errorf("invalid game price %q: %w", value, err)
			}
			spec.Price = price
		case "year":
			year, err := strconv.Atoi(value)
			if err != nil {
				return spec, fmt.Errorf("invalid game year %q: %w", value, err)
			}
			spec.Year = year
		case "hd":
			hd, err := strconv.ParseBool(value)
			if err != nil {
				return spec, fmt.Errorf("invalid game hd flag %q: %w", value, err)
			}
			spec.HighDefinition = hd
		default:
			return spec, fmt.Errorf("unknown game attribute %q", key)
		}
	}

	if strings.TrimSpace(spec.Name) == "" {
		return spec, fmt.Errorf("game spec %q: name is required", raw)
	}
	return spec, nil
}
