package arcade

// Machine type keys accepted by the factory. Lookup is case-sensitive.
const (
	// TypeDanceRevolution identifies the dance machine template.
	TypeDanceRevolution = "DanceRevolution"
	// TypeClassicalArcade identifies the classical cabinet template.
	TypeClassicalArcade = "ClassicalArcade"
	// TypeShooting identifies the shooting machine template.
	TypeShooting = "Shooting"
	// TypeRacing identifies the racing machine template.
	TypeRacing = "Racing"
	// TypeVirtualReality identifies the VR machine template.
	TypeVirtualReality = "VirtualReality"
)

// Template produces a pre-configured machine for one predefined
// category. Implementations are deterministic: the same material and
// color always yield an identically configured machine.
type Template interface {
	// CreateMachine builds a fresh machine of the template's category.
	CreateMachine(material, color string) *Machine
}

// danceRevolutionTemplate builds dance machines with a four-arrow pad.
type danceRevolutionTemplate struct{}

func (danceRevolutionTemplate) CreateMachine(material, color string) *Machine {
	m := NewMachine(material, Dimensions{Length: 2.0, Width: 1.5, Height: 2.2}, 200, 1000, 8, 2, 5000, color)
	m.Extras = &DanceExtras{
		Difficulties:       []string{"Easy", "Medium", "Hard"},
		ArrowCardinalities: 4,
		ControlsPrice:      500,
	}
	return m
}

// classicalArcadeTemplate builds plain cabinets without extra equipment.
type classicalArcadeTemplate struct{}

func (classicalArcadeTemplate) CreateMachine(material, color string) *Machine {
	return NewMachine(material, Dimensions{Length: 0.8, Width: 0.6, Height: 1.8}, 100, 500, 4, 1, 3000, color)
}

// shootingTemplate builds shooting machines with mounted guns.
type shootingTemplate struct{}

func (shootingTemplate) CreateMachine(material, color string) *Machine {
	m := NewMachine(material, Dimensions{Length: 1.5, Width: 1.2, Height: 2.0}, 150, 800, 8, 2, 4000, color)
	m.Extras = &ShootingExtras{
		Guns:       2,
		TargetType: "Moving",
	}
	return m
}

// racingTemplate builds racing machines with a force-feedback cockpit.
type racingTemplate struct{}

func (racingTemplate) CreateMachine(material, color string) *Machine {
	m := NewMachine(material, Dimensions{Length: 2.0, Width: 1.8, Height: 1.5}, 180, 1200, 16, 4, 6000, color)
	m.Extras = &RacingExtras{
		SteeringType: "Force Feedback",
		Seats:        1,
	}
	return m
}

// virtualRealityTemplate builds VR machines bundled with a headset.
type virtualRealityTemplate struct{}

func (virtualRealityTemplate) CreateMachine(material, color string) *Machine {
	m := NewMachine(material, Dimensions{Length: 2.5, Width: 2.5, Height: 2.2}, 220, 1500, 32, 8, 8000, color)
	m.Extras = &VirtualRealityExtras{
		GlassesType:       "OLED",
		GlassesResolution: "4K",
		GlassesPrice:      1000,
	}
	return m
}

// machineTemplates maps the machine type keys to their templates.
func machineTemplates() map[string]Template {
	return map[string]Template{
		TypeDanceRevolution: danceRevolutionTemplate{},
		TypeClassicalArcade: classicalArcadeTemplate{},
		TypeShooting:        shootingTemplate{},
		TypeRacing:          racingTemplate{},
		TypeVirtualReality:  virtualRealityTemplate{},
	}
}

// MachineTypes returns the predefined machine type keys in stable order.
func MachineTypes() []string {
	return []string{
		TypeDanceRevolution,
		TypeClassicalArcade,
		TypeShooting,
		TypeRacing,
		TypeVirtualReality,
	}
}
