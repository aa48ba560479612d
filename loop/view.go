package loop

import (
	"sort"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/system"
)

// Box is one drawable entity in a View.
type Box struct {
	ID   string
	Kind component.EntityKind
	Box  component.AABB
}

// View is a read-only copy of what a renderer needs for one frame.
type View struct {
	Tick   uint64
	Status component.GameState
	// Level is zero-based; it equals Levels once the game is won.
	Level  int
	Levels int

	Player     component.AABB
	VY         float64
	Grounded   bool
	JumpBudget float64
	MaxJump    float64

	Camera component.AABB
	World  component.LevelBounds
	// Boxes holds the in-scope level entities, ordered by kind then id.
	Boxes []Box
}

func (s *Simulation) View() View {
	w := s.world
	v := View{Tick: s.ticks, Status: s.Status()}

	if state, ok := ecs.Singleton(w, component.LevelStateComponent.Kind()); ok {
		v.Level = state.Current
		v.Levels = state.Total
	}
	if bounds, ok := ecs.Singleton(w, component.LevelBoundsComponent.Kind()); ok {
		v.World = *bounds
	}

	if player, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		v.Player = boxOf(w, player)
		if vel, ok := ecs.Get(w, player, component.VelocityComponent.Kind()); ok {
			v.VY = vel.VY
		}
		if out, ok := ecs.Get(w, player, component.CollisionOutcomeComponent.Kind()); ok {
			v.Grounded = out.Grounded
		}
		if g, ok := ecs.Get(w, player, component.GravityStateComponent.Kind()); ok {
			v.JumpBudget = g.RemainingJumpBudget
			v.MaxJump = g.MaxJumpHeight
		}
	}
	if cam, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
		v.Camera = boxOf(w, cam)
	}

	ecs.ForEach(w, component.KindComponent.Kind(), func(e ecs.Entity, k *component.Kind) {
		switch k.Kind {
		case component.KindPlayer, component.KindCameraAnchor:
			return
		}
		if !system.InScope(w, e) {
			return
		}
		b := Box{Kind: k.Kind, Box: boxOf(w, e)}
		if id, ok := ecs.Get(w, e, component.IdentityComponent.Kind()); ok {
			b.ID = id.ID
		}
		v.Boxes = append(v.Boxes, b)
	})
	sort.Slice(v.Boxes, func(i, j int) bool {
		if v.Boxes[i].Kind != v.Boxes[j].Kind {
			return v.Boxes[i].Kind < v.Boxes[j].Kind
		}
		return v.Boxes[i].ID < v.Boxes[j].ID
	})
	return v
}

func boxOf(w *ecs.World, e ecs.Entity) component.AABB {
	t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	c, _ := ecs.Get(w, e, component.ColliderComponent.Kind())
	return component.Box(t, c)
}
