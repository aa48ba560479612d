package component

type Point struct {
	X float64
	Y float64
}

// LevelState is the world singleton tracking level progression.
// Current is zero-based; Current == Total only once the final goal is reached.
type LevelState struct {
	Current int
	Total   int
	Spawns  []Point
	// PendingAdvance is set when a non-final goal was reached; the advance is
	// applied at the next tick boundary.
	PendingAdvance bool
}

// Final reports whether the active level is the last one.
func (l *LevelState) Final() bool {
	return l.Current >= l.Total-1
}

// Spawn returns the spawn point of level idx.
func (l *LevelState) Spawn(idx int) (Point, bool) {
	if idx < 0 || idx >= len(l.Spawns) {
		return Point{}, false
	}
	return l.Spawns[idx], true
}

var LevelStateComponent = NewComponent[LevelState]()

// LevelMember scopes an entity to one level. Entities without it are active
// in every level.
type LevelMember struct {
	Index int
}

var LevelMemberComponent = NewComponent[LevelMember]()
