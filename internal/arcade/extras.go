package arcade

// Extras is the category-specific equipment a template attaches to the
// machines it produces. The set of implementations is closed: one per
// predefined category that ships extra equipment. Extras are
// descriptive only and never feed into the price, weight or power
// bookkeeping.
type Extras interface {
	// extras marks the closed set of equipment payloads.
	extras()
}

// DanceExtras describes the dance pad shipped with DanceRevolution machines.
type DanceExtras struct {
	// Difficulties lists the selectable difficulty levels.
	Difficulties []string
	// ArrowCardinalities is the number of arrow directions on the pad.
	ArrowCardinalities int
	// ControlsPrice is the reference price of the pad controls. It is
	// informational and not part of the machine total.
	ControlsPrice float64
}

// ShootingExtras describes the gun equipment shipped with Shooting machines.
type ShootingExtras struct {
	// Guns is the number of mounted guns.
	Guns int
	// TargetType describes the target mechanism.
	TargetType string
}

// RacingExtras describes the cockpit equipment shipped with Racing machines.
type RacingExtras struct {
	// SteeringType describes the steering hardware.
	SteeringType string
	// Seats is the number of cockpit seats.
	Seats int
}

// VirtualRealityExtras describes the headset shipped with VirtualReality machines.
type VirtualRealityExtras struct {
	// GlassesType is the headset display technology.
	GlassesType string
	// GlassesResolution is the headset resolution label.
	GlassesResolution string
	// GlassesPrice is the reference price of the headset. It is
	// informational and not part of the machine total.
	GlassesPrice float64
}

func (*DanceExtras) extras()          {}
func (*ShootingExtras) extras()       {}
func (*RacingExtras) extras()         {}
func (*VirtualRealityExtras) extras() {}
