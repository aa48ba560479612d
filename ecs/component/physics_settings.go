package component

// PhysicsSettings is the world singleton holding the fixed-step tuning.
type PhysicsSettings struct {
	// DT is the fixed tick length in seconds.
	DT float64
	// LandingTolerance is how far the player's bottom may sink past a
	// surface top and still land on it.
	LandingTolerance float64
	// ContactSkin is the gap still treated as touching.
	ContactSkin float64
}

var PhysicsSettingsComponent = NewComponent[PhysicsSettings]()
