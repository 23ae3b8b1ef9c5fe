package engine

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KevinLozano-bot/arcadectl/internal/config"
)

func showroomConfig() *config.CatalogConfig {
	return &config.CatalogConfig{
		Catalog: "showroom",
		Machines: []config.MachineSpec{
			{
				Name:     "racer-one",
				Type:     "Racing",
				Material: "aluminium",
				Color:    "silver",
				Videogames: []config.VideogameSpec{
					{Name: "Night Drift", Category: "racing", Price: 100, Year: 2020, HighDefinition: true},
				},
			},
			{
				Name:     "corner-cabinet",
				Type:     "ClassicalArcade",
				Material: "wood",
				Color:    "yellow",
			},
		},
	}
}

func TestEngine_BuildCatalog(t *testing.T) {
	result, err := NewEngine().BuildCatalog(showroomConfig())

	require.NoError(t, err)
	require.Len(t, result.Entries, 2)
	assert.Equal(t, 2, result.Catalog.Len())

	racer := result.Entries[0]
	assert.Equal(t, "racer-one", racer.Name)
	assert.Equal(t, "Racing", racer.Type)
	assert.InDelta(t, 171.0, racer.Machine.Weight, 1e-9)
	assert.InDelta(t, 6710.0, racer.Machine.TotalPrice(), 1e-9)
	assert.Equal(t, 1, racer.Machine.VideogameCount())

	cabinet := result.Entries[1]
	assert.Equal(t, "corner-cabinet", cabinet.Name)
	assert.InDelta(t, 2850.0, cabinet.Machine.TotalPrice(), 1e-9)

	machines := result.Catalog.Machines()
	require.Len(t, machines, 2)
	assert.Same(t, racer.Machine, machines[0])
	assert.Same(t, cabinet.Machine, machines[1])
}

func TestEngine_BuildCatalog_UnknownType(t *testing.T) {
	cfg := &config.CatalogConfig{
		Machines: []config.MachineSpec{
			{Name: "mystery", Type: "PinballMachine", Material: "wood"},
		},
	}

	_, err := NewEngine().BuildCatalog(cfg)

	require.Error(t, err)
	assert.True(t, IsUnknownMachineTypeError(err))
	assert.Contains(t, err.Error(), `machine "mystery"`)
	assert.Contains(t, err.Error(), `"PinballMachine"`)

	var typed *UnknownMachineTypeError
	require.True(t, errors.As(err, &typed))
	assert.Equal(t, "mystery", typed.Name)
	assert.Equal(t, "PinballMachine", typed.Type)
}

func TestEngine_BuildCatalog_NilConfig(t *testing.T) {
	_, err := NewEngine().BuildCatalog(nil)

	require.Error(t, err)
	assert.False(t, IsUnknownMachineTypeError(err))
}

func TestIsUnknownMachineTypeError_OtherErrors(t *testing.T) {
	assert.False(t, IsUnknownMachineTypeError(fmt.Errorf("boom")))
	assert.False(t, IsUnknownMachineTypeError(nil))
}

func TestBuildResult_MachineByName(t *testing.T) {
	result, err := NewEngine().BuildCatalog(showroomConfig())
	require.NoError(t, err)

	entry, ok := result.MachineByName("corner-cabinet")
	require.True(t, ok)
	assert.Equal(t, "ClassicalArcade", entry.Type)

	_, ok = result.MachineByName("nope")
	assert.False(t, ok)
}

func TestBuildResult_EntryFor(t *testing.T) {
	result, err := NewEngine().BuildCatalog(showroomConfig())
	require.NoError(t, err)

	matches := result.Catalog.SearchByMaterial("aluminium")
	require.Len(t, matches, 1)

	entry, ok := result.EntryFor(matches[0])
	require.True(t, ok)
	assert.Equal(t, "racer-one", entry.Name)
}

func TestBuildResult_FilterByType(t *testing.T) {
	result, err := NewEngine().BuildCatalog(showroomConfig())
	require.NoError(t, err)

	only := map[string]struct{}{"racing": {}}
	filtered := result.FilterByType(only, nil)
	require.Len(t, filtered, 1)
	assert.Equal(t, "racer-one", filtered[0].Name)

	skip := map[string]struct{}{"classicalarcade": {}}
	filtered = result.FilterByType(nil, skip)
	require.Len(t, filtered, 1)
	assert.Equal(t, "racer-one", filtered[0].Name)

	assert.Len(t, result.FilterByType(nil, nil), 2)
}
