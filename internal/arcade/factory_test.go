package arcade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_CreateMachine_RacingAluminium(t *testing.T) {
	factory := NewFactory()

	machine, ok := factory.CreateMachine(TypeRacing, "Aluminium", "silver")

	require.True(t, ok)
	assert.InDelta(t, 171.0, machine.Weight, 1e-9)
	assert.InDelta(t, 6600.0, machine.TotalPrice(), 1e-9)
	assert.InDelta(t, 1200.0, machine.PowerConsumption, 1e-9)
	assert.Equal(t, "Aluminium", machine.Material)
	assert.Equal(t, "silver", machine.Color)
}

func TestFactory_CreateMachine_UnknownTypeReportsFalse(t *testing.T) {
	factory := NewFactory()

	machine, ok := factory.CreateMachine("PinballMachine", "wood", "red")

	assert.False(t, ok)
	assert.Nil(t, machine)
}

func TestFactory_CreateMachine_TypeIsCaseSensitive(t *testing.T) {
	factory := NewFactory()

	machine, ok := factory.CreateMachine("racing", "wood", "red")

	assert.False(t, ok)
	assert.Nil(t, machine)
}

func TestFactory_CreateMachine_MaterialIsCaseInsensitive(t *testing.T) {
	factory := NewFactory()

	machine, ok := factory.CreateMachine(TypeClassicalArcade, "WOOD", "brown")

	require.True(t, ok)
	assert.InDelta(t, 110.0, machine.Weight, 1e-9)
	assert.InDelta(t, 2850.0, machine.TotalPrice(), 1e-9)
	assert.InDelta(t, 575.0, machine.PowerConsumption, 1e-9)
}

func TestFactory_CreateMachine_CarbonFiberMixedCase(t *testing.T) {
	factory := NewFactory()

	machine, ok := factory.CreateMachine(TypeClassicalArcade, "Carbon Fiber", "black")

	require.True(t, ok)
	assert.InDelta(t, 85.0, machine.Weight, 1e-9)
	assert.InDelta(t, 3600.0, machine.TotalPrice(), 1e-9)
	assert.InDelta(t, 450.0, machine.PowerConsumption, 1e-9)
}

func TestFactory_CreateMachine_UnknownMaterialKeepsBaseValues(t *testing.T) {
	factory := NewFactory()

	machine, ok := factory.CreateMachine(TypeClassicalArcade, "Steel", "grey")

	require.True(t, ok)
	assert.Equal(t, 100.0, machine.Weight)
	assert.Equal(t, 3000.0, machine.TotalPrice())
	assert.Equal(t, 500.0, machine.PowerConsumption)
	assert.Equal(t, "Steel", machine.Material)
}

func TestFactory_CreateMachine_Deterministic(t *testing.T) {
	factory := NewFactory()

	first, ok := factory.CreateMachine(TypeShooting, "wood", "green")
	require.True(t, ok)
	second, ok := factory.CreateMachine(TypeShooting, "wood", "green")
	require.True(t, ok)

	assert.Equal(t, first, second)
	assert.NotSame(t, first, second)
}
