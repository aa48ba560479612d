package component

// LevelBounds stores the world-space bounds shared by every level.
type LevelBounds struct {
	Width  float64
	Height float64
	// DeathY is the y past which a falling player is lost.
	DeathY float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
