package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// ActiveLevel returns the index of the level being played, or -1 when the
// world has no level state.
func ActiveLevel(w *ecs.World) int {
	state, ok := ecs.Singleton(w, component.LevelStateComponent.Kind())
	if !ok {
		return -1
	}
	return state.Current
}

// InScope reports whether e takes part in the active level. Entities without
// a LevelMember are shared by every level.
func InScope(w *ecs.World, e ecs.Entity) bool {
	m, ok := ecs.Get(w, e, component.LevelMemberComponent.Kind())
	if !ok {
		return true
	}
	return m.Index == ActiveLevel(w)
}

// Playing reports whether the game status allows physics to run.
func Playing(w *ecs.World) bool {
	status, ok := ecs.Singleton(w, component.StatusComponent.Kind())
	return ok && status.State == component.GamePlaying
}

func physicsSettings(w *ecs.World) component.PhysicsSettings {
	if s, ok := ecs.Singleton(w, component.PhysicsSettingsComponent.Kind()); ok && s.DT > 0 {
		return *s
	}
	return component.PhysicsSettings{DT: 1.0 / 60, LandingTolerance: 4, ContactSkin: 0.5}
}

func playerEntity(w *ecs.World) (ecs.Entity, bool) {
	return ecs.First(w, component.PlayerTagComponent.Kind())
}
