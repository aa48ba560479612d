package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// State is a copy of every component a tick may mutate. Restoring it undoes
// a partially applied tick.
type State struct {
	transforms map[ecs.Entity]component.Transform
	velocities map[ecs.Entity]component.Velocity
	gravity    map[ecs.Entity]component.GravityState
	outcomes   map[ecs.Entity]component.CollisionOutcome
	inputs     map[ecs.Entity]component.Input
	patrols    map[ecs.Entity]component.Patrol
	levels     map[ecs.Entity]component.LevelState
	statuses   map[ecs.Entity]component.Status
}

func CaptureState(w *ecs.World) *State {
	s := &State{
		transforms: capture(w, component.TransformComponent.Kind()),
		velocities: capture(w, component.VelocityComponent.Kind()),
		gravity:    capture(w, component.GravityStateComponent.Kind()),
		outcomes:   capture(w, component.CollisionOutcomeComponent.Kind()),
		inputs:     capture(w, component.InputComponent.Kind()),
		patrols:    capture(w, component.PatrolComponent.Kind()),
		levels:     capture(w, component.LevelStateComponent.Kind()),
		statuses:   capture(w, component.StatusComponent.Kind()),
	}
	for e, l := range s.levels {
		l.Spawns = append([]component.Point(nil), l.Spawns...)
		s.levels[e] = l
	}
	return s
}

// RestoreState writes s back onto the entities that are still alive.
func RestoreState(w *ecs.World, s *State) {
	if w == nil || s == nil {
		return
	}
	restore(w, component.TransformComponent.Kind(), s.transforms)
	restore(w, component.VelocityComponent.Kind(), s.velocities)
	restore(w, component.GravityStateComponent.Kind(), s.gravity)
	restore(w, component.CollisionOutcomeComponent.Kind(), s.outcomes)
	restore(w, component.InputComponent.Kind(), s.inputs)
	restore(w, component.PatrolComponent.Kind(), s.patrols)
	restore(w, component.LevelStateComponent.Kind(), s.levels)
	restore(w, component.StatusComponent.Kind(), s.statuses)
}

func capture[T any](w *ecs.World, kind component.ComponentKind[T]) map[ecs.Entity]T {
	out := map[ecs.Entity]T{}
	ecs.ForEach(w, kind, func(e ecs.Entity, v *T) {
		out[e] = *v
	})
	return out
}

func restore[T any](w *ecs.World, kind component.ComponentKind[T], values map[ecs.Entity]T) {
	for e, v := range values {
		if cur, ok := ecs.Get(w, e, kind); ok {
			*cur = v
		}
	}
}
