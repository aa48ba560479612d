package component

// Patrol drives a hazard back and forth along X. The patrol system owns
// Transform.X of entities carrying it; the collision core only reads it.
type Patrol struct {
	VX   float64
	MinX float64
	MaxX float64
	// Script is the prefab script path that advances the patrol each tick.
	Script string
}

var PatrolComponent = NewComponent[Patrol]()
