package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// MovementSystem integrates the player's position. Horizontal motion is a
// fixed step per tick in the held direction, dropped entirely when that side
// is blocked. Vertical motion follows VY; a grounded, resting player is kept
// flush on the surface below.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (m *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := physicsSettings(w).DT

	ecs.ForEach4(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), component.VelocityComponent.Kind(), component.CollisionOutcomeComponent.Kind(), func(e ecs.Entity, p *component.Player, t *component.Transform, v *component.Velocity, out *component.CollisionOutcome) {
		var in component.Input
		if input, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
			in = *input
		}
		height := 0.0
		if c, ok := ecs.Get(w, e, component.ColliderComponent.Kind()); ok {
			height = c.Height
		}
		integrate(t, *v, *out, in, p.MoveSpeed, height, dt)
	})
}

func integrate(t *component.Transform, v component.Velocity, out component.CollisionOutcome, in component.Input, moveSpeed, height, dt float64) {
	switch dir := in.Direction(); {
	case dir < 0 && !out.BlockedLeft:
		t.X -= moveSpeed * dt
	case dir > 0 && !out.BlockedRight:
		t.X += moveSpeed * dt
	}

	t.Y -= v.VY * dt
	if out.Grounded && v.VY == 0 {
		t.Y = out.GroundY - height
	}
}
