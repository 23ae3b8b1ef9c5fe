// Package arcade contains the arcade machine model and the construction
// pipeline: predefined machine templates, material adjustments and the
// factory that combines them into ready-to-register machines.
package arcade

import "strings"

// Dimensions describes the physical footprint of a machine in meters.
type Dimensions struct {
	// Length is the cabinet length in meters.
	Length float64
	// Width is the cabinet width in meters.
	Width float64
	// Height is the cabinet height in meters.
	Height float64
}

// Machine is a configurable arcade machine together with its installed
// videogames. Weight, price and power consumption start from the values
// of the template that produced the machine and are scaled at most once
// by a material adjustment. Afterwards the price moves only through
// AddVideogame and RemoveVideogame, so TotalPrice never needs to re-sum
// the game list.
type Machine struct {
	// Material is the free-form material label the cabinet is built from.
	Material string
	// Dimensions is the physical footprint of the cabinet.
	Dimensions Dimensions
	// Weight is the machine weight in kilograms.
	Weight float64
	// PowerConsumption is the power draw in watts.
	PowerConsumption float64
	// Memory is the installed memory in gigabytes.
	Memory int
	// Processors is the number of installed processors.
	Processors int
	// Color is the free-form cabinet color.
	Color string
	// Extras carries category-specific equipment attached by the
	// template that produced the machine; nil for plain cabinets.
	Extras Extras

	// basePrice is the running total: template base price, scaled once
	// by the material adjustment, plus every installed game's price.
	basePrice float64
	// videogames holds the installed games in insertion order.
	videogames []*Videogame
}

// NewMachine constructs a machine with the given base configuration and
// no installed videogames.
func NewMachine(material string, dims Dimensions, weight, powerConsumption float64, memory, processors int, basePrice float64, color string) *Machine {
	return &Machine{
		Material:         material,
		Dimensions:       dims,
		Weight:           weight,
		PowerConsumption: powerConsumption,
		Memory:           memory,
		Processors:       processors,
		Color:            color,
		basePrice:        basePrice,
	}
}

// AddVideogame installs a videogame and adds its price to the machine
// total. Games are not deduplicated: installing the same game twice
// counts it twice.
func (m *Machine) AddVideogame(game *Videogame) {
	if game == nil {
		return
	}
	m.videogames = append(m.videogames, game)
	m.basePrice += game.Price
}

// RemoveVideogame uninstalls the first occurrence of game, compared by
// pointer identity, and subtracts its price from the machine total.
// Removing a game that is not installed is a no-op.
func (m *Machine) RemoveVideogame(game *Videogame) {
	if game == nil {
		return
	}
	for i, installed := range m.videogames {
		if installed == game {
			m.videogames = append(m.videogames[:i], m.videogames[i+1:]...)
			m.basePrice -= game.Price
			return
		}
	}
}

// TotalPrice returns the current machine price including all installed
// videogames.
func (m *Machine) TotalPrice() float64 {
	return m.basePrice
}

// Videogames returns the installed videogames in insertion order. The
// returned slice is a copy and may be modified freely by the caller.
func (m *Machine) Videogames() []*Videogame {
	out := make([]*Videogame, len(m.videogames))
	copy(out, m.videogames)
	return out
}

// VideogameCount returns the number of installed videogames.
func (m *Machine) VideogameCount() int {
	return len(m.videogames)
}

// HasVideogame reports whether a videogame with the given name is
// installed, matched case-insensitively.
func (m *Machine) HasVideogame(name string) bool {
	for _, game := range m.videogames {
		if strings.EqualFold(game.Name, name) {
			return true
		}
	}
	return false
}
