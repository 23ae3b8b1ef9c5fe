// Package engine contains the high-level orchestration logic for catalog operations.
package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KevinLozano-bot/arcadectl/internal/arcade"
	"github.com/KevinLozano-bot/arcadectl/internal/catalog"
	"github.com/KevinLozano-bot/arcadectl/internal/config"
)

// Engine builds populated catalogs from declarative catalog definitions.
type Engine struct {
	factory *arcade.Factory
}

// NewEngine constructs a new Engine instance with a default factory.
func NewEngine() *Engine {
	return &Engine{factory: arcade.NewFactory()}
}

// UnknownMachineTypeError indicates that a catalog entry references a
// machine type the factory does not provide.
type UnknownMachineTypeError struct {
	// Name is the catalog entry name.
	Name string
	// Type is the unknown machine type key.
	Type string
}

func (e *UnknownMachineTypeError) Error() string {
	if e == nil {
		return "unknown machine type"
	}
	return fmt.Sprintf("machine %q: unknown machine type %q", e.Name, e.Type)
}

// IsUnknownMachineTypeError reports whether err indicates an unknown machine type.
func IsUnknownMachineTypeError(err error) bool {
	var target *UnknownMachineTypeError
	return errors.As(err, &target)
}

// BuiltMachine pairs a catalog declaration with the machine built from it.
type BuiltMachine struct {
	// Name is the declaration name.
	Name string
	// Type is the machine type key from the declaration.
	Type string
	// Machine is the constructed and registered machine.
	Machine *arcade.Machine
}

// BuildResult holds a populated catalog together with the per-entry
// machines in declaration order.
type BuildResult struct {
	// Catalog is the populated catalog manager.
	Catalog *catalog.Manager
	// Entries lists the built machines in declaration order.
	Entries []BuiltMachine
}

// BuildCatalog constructs and registers every machine declared in cfg,
// in declaration order. Declared videogames are installed right after
// construction, so machine totals already include them.
func (e *Engine) BuildCatalog(cfg *config.CatalogConfig) (*BuildResult, error) {
	if cfg == nil {
		return nil, fmt.Errorf("catalog config is nil")
	}

	result := &BuildResult{Catalog: catalog.NewManager()}
	for _, spec := range cfg.Machines {
		machine, ok := e.factory.CreateMachine(spec.Type, spec.Material, spec.Color)
		if !ok {
			return nil, &UnknownMachineTypeError{Name: spec.Name, Type: spec.Type}
		}

		for _, game := range spec.Videogames {
			machine.AddVideogame(arcade.NewVideogame(
				game.Name,
				game.Storytelling,
				game.Graphics,
				game.Category,
				game.Price,
				game.Year,
				game.HighDefinition,
			))
		}

		result.Catalog.Register(machine)
		result.Entries = append(result.Entries, BuiltMachine{
			Name:    spec.Name,
			Type:    spec.Type,
			Machine: machine,
		})
	}

	return result, nil
}

// MachineByName returns the entry declared under the given name.
func (r *BuildResult) MachineByName(name string) (BuiltMachine, bool) {
	for _, entry := range r.Entries {
		if entry.Name == name {
			return entry, true
		}
	}
	return BuiltMachine{}, false
}

// EntryFor returns the entry that produced the given machine, compared
// by pointer identity. It lets search results be mapped back to their
// declaration names.
func (r *BuildResult) EntryFor(machine *arcade.Machine) (BuiltMachine, bool) {
	for _, entry := range r.Entries {
		if entry.Machine == machine {
			return entry, true
		}
	}
	return BuiltMachine{}, false
}

// FilterByType returns the entries whose machine type passes the
// only/skip sets. Set keys are matched case-insensitively; empty sets
// disable the corresponding filter.
func (r *BuildResult) FilterByType(only, skip map[string]struct{}) []BuiltMachine {
	var out []BuiltMachine
	for _, entry := range r.Entries {
		if !typeIncluded(entry.Type, only, skip) {
			continue
		}
		out = append(out, entry)
	}
	return out
}

func typeIncluded(machineType string, only, skip map[string]struct{}) bool {
	key := strings.ToLower(strings.TrimSpace(machineType))
	if len(only) > 0 {
		if _, ok := only[key]; !ok {
			return false
		}
	}
	if _, ok := skip[key]; ok {
		return false
	}
	return true
}
