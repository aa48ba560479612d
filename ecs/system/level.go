package system

import (
	"log"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// LevelSystem decides the tick's game outcome from the player's collision
// result. A hazard or a fall below the level always beats a goal touched on
// the same tick. Reaching a non-final goal only marks the advance; it is
// applied by LevelAdvanceSystem at the start of the next tick.
type LevelSystem struct {
	debug bool
}

func NewLevelSystem(debug bool) *LevelSystem {
	return &LevelSystem{debug: debug}
}

func (ls *LevelSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	status, ok := ecs.Singleton(w, component.StatusComponent.Kind())
	if !ok || status.State.Terminal() {
		return
	}
	state, ok := ecs.Singleton(w, component.LevelStateComponent.Kind())
	if !ok {
		return
	}
	player, ok := playerEntity(w)
	if !ok {
		return
	}
	out, okO := ecs.Get(w, player, component.CollisionOutcomeComponent.Kind())
	t, okT := ecs.Get(w, player, component.TransformComponent.Kind())
	if !okO || !okT {
		return
	}

	fell := false
	if bounds, ok := ecs.Singleton(w, component.LevelBoundsComponent.Kind()); ok {
		fell = t.Y > bounds.DeathY
	}

	switch {
	case out.HazardHit || fell:
		if fell {
			w.Events().Push(ecs.Event{Type: ecs.EventFellOut, Entity: player, Data: t.Y})
		}
		ls.setStatus(w, status, component.GameLost)
	case out.GoalReached && state.Final():
		state.Current = state.Total
		state.PendingAdvance = false
		ls.setStatus(w, status, component.GameWon)
	case out.GoalReached:
		state.PendingAdvance = true
	}
}

func (ls *LevelSystem) setStatus(w *ecs.World, status *component.Status, next component.GameState) {
	if status.State == next {
		return
	}
	if ls.debug {
		log.Printf("level: status %s -> %s", status.State, next)
	}
	status.State = next
	w.Events().Push(ecs.Event{Type: ecs.EventStatusChanged, Data: next})
}

// LevelAdvanceSystem applies a pending level advance at the tick boundary:
// the next level becomes active and the player restarts at its spawn with
// no velocity and a full jump budget.
type LevelAdvanceSystem struct {
	debug bool
}

func NewLevelAdvanceSystem(debug bool) *LevelAdvanceSystem {
	return &LevelAdvanceSystem{debug: debug}
}

func (la *LevelAdvanceSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	state, ok := ecs.Singleton(w, component.LevelStateComponent.Kind())
	if !ok || !state.PendingAdvance {
		return
	}
	state.PendingAdvance = false
	if !Playing(w) || state.Final() {
		return
	}

	next := state.Current + 1
	spawn, ok := state.Spawn(next)
	if !ok {
		log.Printf("level: no spawn for level %d", next)
		return
	}
	state.Current = next

	if player, ok := playerEntity(w); ok {
		PlaceAtSpawn(w, player, spawn)
	}
	if la.debug {
		log.Printf("level: advanced to %d/%d", state.Current+1, state.Total)
	}
	w.Events().Push(ecs.Event{Type: ecs.EventLevelAdvanced, Data: state.Current})
}

// PlaceAtSpawn puts e at spawn and clears its motion state.
func PlaceAtSpawn(w *ecs.World, e ecs.Entity, spawn component.Point) {
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		t.X = spawn.X
		t.Y = spawn.Y
	}
	if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
		*v = component.Velocity{}
	}
	if g, ok := ecs.Get(w, e, component.GravityStateComponent.Kind()); ok {
		g.Reset()
	}
	if out, ok := ecs.Get(w, e, component.CollisionOutcomeComponent.Kind()); ok {
		*out = component.CollisionOutcome{}
	}
}
