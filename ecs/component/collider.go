package component

// Collider gives an entity its extent. Together with Transform it forms the
// entity's bounding box.
type Collider struct {
	Width  float64
	Height float64
}

// Box returns the world-space bounds for t and c.
func Box(t *Transform, c *Collider) AABB {
	if t == nil || c == nil {
		return AABB{}
	}
	return AABB{X: t.X, Y: t.Y, W: c.Width, H: c.Height}
}

var ColliderComponent = NewComponent[Collider]()
