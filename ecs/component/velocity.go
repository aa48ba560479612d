package component

// Velocity is the vertical speed in world units per second. Positive is up.
type Velocity struct {
	VY float64
}

var VelocityComponent = NewComponent[Velocity]()
