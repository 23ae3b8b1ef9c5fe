package arcade

// Material keys with a pricing rule. Lookup is case-insensitive; any
// other material label is accepted as-is without adjustment.
const (
	// MaterialWood identifies the wood adjustment rule.
	MaterialWood = "wood"
	// MaterialAluminium identifies the aluminium adjustment rule.
	MaterialAluminium = "aluminium"
	// MaterialCarbonFiber identifies the carbon fiber adjustment rule.
	MaterialCarbonFiber = "carbon fiber"
)

// MaterialAdjuster applies material-specific corrections to a freshly
// built machine. Each method scales the machine's current value in
// place; the factory calls the three methods exactly once per machine,
// always in the order weight, price, power consumption.
type MaterialAdjuster interface {
	// AdjustWeight scales the machine weight.
	AdjustWeight(m *Machine)
	// AdjustPrice scales the machine base price.
	AdjustPrice(m *Machine)
	// AdjustPowerConsumption scales the machine power draw.
	AdjustPowerConsumption(m *Machine)
}

// woodAdjuster makes cabinets heavier and hungrier but cheaper.
type woodAdjuster struct{}

func (woodAdjuster) AdjustWeight(m *Machine) {
	m.Weight *= 1.10
}

func (woodAdjuster) AdjustPrice(m *Machine) {
	m.basePrice *= 0.95
}

func (woodAdjuster) AdjustPowerConsumption(m *Machine) {
	m.PowerConsumption *= 1.15
}

// aluminiumAdjuster makes cabinets lighter and pricier.
type aluminiumAdjuster struct{}

func (aluminiumAdjuster) AdjustWeight(m *Machine) {
	m.Weight *= 0.95
}

func (aluminiumAdjuster) AdjustPrice(m *Machine) {
	m.basePrice *= 1.10
}

// AdjustPowerConsumption leaves the power draw unchanged for aluminium.
func (aluminiumAdjuster) AdjustPowerConsumption(*Machine) {}

// carbonFiberAdjuster makes cabinets much lighter and frugal at a premium.
type carbonFiberAdjuster struct{}

func (carbonFiberAdjuster) AdjustWeight(m *Machine) {
	m.Weight *= 0.85
}

func (carbonFiberAdjuster) AdjustPrice(m *Machine) {
	m.basePrice *= 1.20
}

func (carbonFiberAdjuster) AdjustPowerConsumption(m *Machine) {
	m.PowerConsumption *= 0.90
}

// materialAdjusters maps lowercase material keys to their adjusters.
func materialAdjusters() map[string]MaterialAdjuster {
	return map[string]MaterialAdjuster{
		MaterialWood:        woodAdjuster{},
		MaterialAluminium:   aluminiumAdjuster{},
		MaterialCarbonFiber: carbonFiberAdjuster{},
	}
}

// Materials returns the material keys with pricing rules in stable order.
func Materials() []string {
	return []string{
		MaterialWood,
		MaterialAluminium,
		MaterialCarbonFiber,
	}
}
