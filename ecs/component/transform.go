package component

// Transform is an entity's top-left position in world space. Y grows downward.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()
