package component

// CollisionOutcome is the per-tick collision result for the player.
type CollisionOutcome struct {
	Grounded     bool
	BlockedLeft  bool
	BlockedRight bool
	HazardHit    bool
	GoalReached  bool
	// Ceiling is set while ascending into the underside of a solid.
	Ceiling bool
	// GroundY is the top edge of the supporting solid when Grounded.
	GroundY float64
}

var CollisionOutcomeComponent = NewComponent[CollisionOutcome]()
