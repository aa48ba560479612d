package component

// AABB is an axis-aligned bounding box in world units, top-left origin.
type AABB struct {
	X float64
	Y float64
	W float64
	H float64
}

func (a AABB) Right() float64  { return a.X + a.W }
func (a AABB) Bottom() float64 { return a.Y + a.H }

// Overlaps reports whether a and b intersect with positive area on both
// axes. Boxes that only share an edge do not overlap.
func (a AABB) Overlaps(b AABB) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// Grow returns a copy padded by dx on the left and right and dy on the top
// and bottom.
func (a AABB) Grow(dx, dy float64) AABB {
	return AABB{X: a.X - dx, Y: a.Y - dy, W: a.W + 2*dx, H: a.H + 2*dy}
}
