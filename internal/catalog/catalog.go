// Package catalog implements the in-memory machine catalog and its
// search operations.
package catalog

import (
	"strings"

	"github.com/KevinLozano-bot/arcadectl/internal/arcade"
)

// Manager holds registered machines in registration order and answers
// the catalog searches. Every search is a read-only linear scan that
// returns matches in registration order; no search mutates the store.
// A Manager is meant to be owned by a single goroutine.
type Manager struct {
	machines []*arcade.Machine
}

// NewManager constructs an empty catalog.
func NewManager() *Manager {
	return &Manager{}
}

// Register appends a machine to the catalog. Machines are not
// deduplicated: registering the same machine twice yields two entries.
func (c *Manager) Register(machine *arcade.Machine) {
	if machine == nil {
		return
	}
	c.machines = append(c.machines, machine)
}

// Len returns the number of registered machines.
func (c *Manager) Len() int {
	return len(c.machines)
}

// Machines returns every registered machine in registration order. The
// returned slice is a copy and may be modified freely by the caller.
func (c *Manager) Machines() []*arcade.Machine {
	out := make([]*arcade.Machine, len(c.machines))
	copy(out, c.machines)
	return out
}

// SearchByVideogameCount returns the machines with exactly count
// installed videogames.
func (c *Manager) SearchByVideogameCount(count int) []*arcade.Machine {
	return c.filter(func(m *arcade.Machine) bool {
		return m.VideogameCount() == count
	})
}

// SearchByMaterial returns the machines built from the given material,
// matched case-insensitively.
func (c *Manager) SearchByMaterial(material string) []*arcade.Machine {
	return c.filter(func(m *arcade.Machine) bool {
		return strings.EqualFold(m.Material, material)
	})
}

// SearchByVideogameName returns the machines that have a videogame with
// the given name installed, matched case-insensitively.
func (c *Manager) SearchByVideogameName(name string) []*arcade.Machine {
	return c.filter(func(m *arcade.Machine) bool {
		return m.HasVideogame(name)
	})
}

// SearchByPriceRange returns the machines whose total price lies within
// the inclusive [min, max] range. An inverted range matches nothing.
func (c *Manager) SearchByPriceRange(min, max float64) []*arcade.Machine {
	return c.filter(func(m *arcade.Machine) bool {
		price := m.TotalPrice()
		return min <= price && price <= max
	})
}

// SearchByWeightRange returns the machines whose weight lies within the
// inclusive [min, max] range. An inverted range matches nothing.
func (c *Manager) SearchByWeightRange(min, max float64) []*arcade.Machine {
	return c.filter(func(m *arcade.Machine) bool {
		return min <= m.Weight && m.Weight <= max
	})
}

// SearchByPowerConsumptionRange returns the machines whose power draw
// lies within the inclusive [min, max] range. An inverted range matches
// nothing.
func (c *Manager) SearchByPowerConsumptionRange(min, max float64) []*arcade.Machine {
	return c.filter(func(m *arcade.Machine) bool {
		return min <= m.PowerConsumption && m.PowerConsumption <= max
	})
}

// filter collects the machines matching the predicate, preserving
// registration order.
func (c *Manager) filter(match func(*arcade.Machine) bool) []*arcade.Machine {
	var out []*arcade.Machine
	for _, m := range c.machines {
		if match(m) {
			out = append(out, m)
		}
	}
	return out
}
