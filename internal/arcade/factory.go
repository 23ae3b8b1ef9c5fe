package arcade

import "strings"

// Factory assembles machines: it selects the template for a requested
// machine type and applies the material adjustment when the material
// carries a pricing rule.
type Factory struct {
	templates map[string]Template
	adjusters map[string]MaterialAdjuster
}

// NewFactory constructs a factory over the predefined template and
// material adjustment sets.
func NewFactory() *Factory {
	return &Factory{
		templates: machineTemplates(),
		adjusters: materialAdjusters(),
	}
}

// CreateMachine builds a machine of the given type with the given
// material and color. The machine type is matched case-sensitively;
// when it is unknown, CreateMachine reports false and no machine is
// built. The material is matched case-insensitively; a material
// without a pricing rule leaves the machine unadjusted, which is not
// an error because arbitrary material labels are valid.
func (f *Factory) CreateMachine(machineType, material, color string) (*Machine, bool) {
	tmpl, ok := f.templates[machineType]
	if !ok {
		return nil, false
	}

	machine := tmpl.CreateMachine(material, color)

	if adjuster, ok := f.adjusters[strings.ToLower(material)]; ok {
		adjuster.AdjustWeight(machine)
		adjuster.AdjustPrice(machine)
		adjuster.AdjustPowerConsumption(machine)
	}

	return machine, true
}
