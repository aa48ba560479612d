package component

// GravityState carries the jump and fall state of a body.
//
// RemainingJumpBudget is measured in world units of height still available
// to the current jump; it stays within [0, MaxJumpHeight].
type GravityState struct {
	Acceleration        float64
	MaxJumpHeight       float64
	RemainingJumpBudget float64
	Airborne            bool
	Ascending           bool
}

// Reset restores a grounded, full-budget state.
func (g *GravityState) Reset() {
	g.RemainingJumpBudget = g.MaxJumpHeight
	g.Airborne = false
	g.Ascending = false
}

var GravityStateComponent = NewComponent[GravityState]()
