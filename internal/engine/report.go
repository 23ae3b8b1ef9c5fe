package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KevinLozano-bot/arcadectl/internal/arcade"
)

// Summary is the flattened report row for a single machine.
type Summary struct {
	// Name is the catalog entry name; empty for machines built ad hoc.
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
	// Type is the machine type key; empty when unknown.
	Type string `yaml:"type,omitempty" json:"type,omitempty"`
	// Material is the material label of the cabinet.
	Material string `yaml:"material" json:"material"`
	// Color is the cabinet color.
	Color string `yaml:"color,omitempty" json:"color,omitempty"`
	// Dimensions is the cabinet footprint in meters.
	Dimensions DimensionsSummary `yaml:"dimensions" json:"dimensions"`
	// Weight is the machine weight in kilograms.
	Weight float64 `yaml:"weight" json:"weight"`
	// PowerConsumption is the power draw in watts.
	PowerConsumption float64 `yaml:"powerConsumption" json:"powerConsumption"`
	// Memory is the installed memory in gigabytes.
	Memory int `yaml:"memory" json:"memory"`
	// Processors is the number of installed processors.
	Processors int `yaml:"processors" json:"processors"`
	// TotalPrice is the machine price including installed videogames.
	TotalPrice float64 `yaml:"totalPrice" json:"totalPrice"`
	// Videogames lists the installed games in insertion order.
	Videogames []VideogameSummary `yaml:"videogames,omitempty" json:"videogames,omitempty"`
	// Extras holds the category-specific equipment attributes.
	Extras map[string]any `yaml:"extras,omitempty" json:"extras,omitempty"`
}

// DimensionsSummary reports the cabinet footprint.
type DimensionsSummary struct {
	Length float64 `yaml:"length" json:"length"`
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// VideogameSummary reports a single installed videogame.
type VideogameSummary struct {
	Name           string  `yaml:"name" json:"name"`
	Storytelling   string  `yaml:"storytelling,omitempty" json:"storytelling,omitempty"`
	Graphics       string  `yaml:"graphics,omitempty" json:"graphics,omitempty"`
	Category       string  `yaml:"category,omitempty" json:"category,omitempty"`
	Price          float64 `yaml:"price" json:"price"`
	Year           int     `yaml:"year,omitempty" json:"year,omitempty"`
	HighDefinition bool    `yaml:"highDefinition,omitempty" json:"highDefinition,omitempty"`
}

// Summarize flattens a built machine into a report row.
func Summarize(entry BuiltMachine) Summary {
	machine := entry.Machine
	if machine == nil {
		return Summary{Name: entry.Name, Type: entry.Type}
	}

	summary := Summary{
		Name:     entry.Name,
		Type:     entry.Type,
		Material: machine.Material,
		Color:    machine.Color,
		Dimensions: DimensionsSummary{
			Length: machine.Dimensions.Length,
			Width:  machine.Dimensions.Width,
			Height: machine.Dimensions.Height,
		},
		Weight:           machine.Weight,
		PowerConsumption: machine.PowerConsumption,
		Memory:           machine.Memory,
		Processors:       machine.Processors,
		TotalPrice:       machine.TotalPrice(),
		Extras:           extrasSummary(machine.Extras),
	}

	for _, game := range machine.Videogames() {
		summary.Videogames = append(summary.Videogames, VideogameSummary{
			Name:           game.Name,
			Storytelling:   game.StorytellingCreator,
			Graphics:       game.GraphicsCreator,
			Category:       game.Category,
			Price:          game.Price,
			Year:           game.Year,
			HighDefinition: game.HighDefinition,
		})
	}

	return summary
}

// SummarizeEntries flattens entries into report rows in order.
func SummarizeEntries(entries []BuiltMachine) []Summary {
	out := make([]Summary, 0, len(entries))
	for _, entry := range entries {
		out = append(out, Summarize(entry))
	}
	return out
}

// extrasSummary flattens the category-specific equipment into plain
// key/value attributes for rendering.
func extrasSummary(extras arcade.Extras) map[string]any {
	switch e := extras.(type) {
	case *arcade.DanceExtras:
		return map[string]any{
			"difficulties":       e.Difficulties,
			"arrowCardinalities": e.ArrowCardinalities,
			"controlsPrice":      e.ControlsPrice,
		}
	case *arcade.ShootingExtras:
		return map[string]any{
			"guns":       e.Guns,
			"targetType": e.TargetType,
		}
	case *arcade.RacingExtras:
		return map[string]any{
			"steeringType": e.SteeringType,
			"seats":        e.Seats,
		}
	case *arcade.VirtualRealityExtras:
		return map[string]any{
			"glassesType":       e.GlassesType,
			"glassesResolution": e.GlassesResolution,
			"glassesPrice":      e.GlassesPrice,
		}
	default:
		return nil
	}
}

// RenderSummaries writes report rows to w in the requested format. YAML
// output is a multi-document stream with one document per machine; JSON
// output is a single array.
func RenderSummaries(w io.Writer, format string, summaries []Summary) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		payload, err := json.MarshalIndent(summaries, "", "  ")
		if err != nil {
			return fmt.Errorf("encode report as json: %w", err)
		}
		payload = append(payload, '\n')
		if _, err := w.Write(payload); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		return nil
	case "", "yaml":
		if len(summaries) == 0 {
			return nil
		}
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		for _, summary := range summaries {
			if err := enc.Encode(summary); err != nil {
				_ = enc.Close()
				return fmt.Errorf("encode report: %w", err)
			}
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("finalize report stream: %w", err)
		}
		if _, err := w.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
