package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// GravitySystem turns the collision outcome and the held jump into vertical
// velocity. The jump budget is world units of height; every ascending tick
// spends JumpSpeed*dt of it.
type GravitySystem struct{}

func NewGravitySystem() *GravitySystem {
	return &GravitySystem{}
}

func (g *GravitySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := physicsSettings(w).DT

	ecs.ForEach4(w, component.GravityStateComponent.Kind(), component.VelocityComponent.Kind(), component.CollisionOutcomeComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, gs *component.GravityState, v *component.Velocity, out *component.CollisionOutcome, in *component.Input) {
		jumpSpeed := 0.0
		if p, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
			jumpSpeed = p.JumpSpeed
		}
		stepGravity(gs, v, *out, *in, jumpSpeed, dt)
	})
}

func stepGravity(gs *component.GravityState, v *component.Velocity, out component.CollisionOutcome, in component.Input, jumpSpeed, dt float64) {
	if out.Grounded && !gs.Ascending {
		gs.Reset()
		v.VY = 0
	}

	if out.Ceiling {
		gs.Ascending = false
		gs.RemainingJumpBudget = 0
		if v.VY > 0 {
			v.VY = 0
		}
	}

	canAscend := out.Grounded || gs.Ascending
	if in.Up && canAscend && gs.RemainingJumpBudget > 0 && !out.Ceiling {
		gs.RemainingJumpBudget -= jumpSpeed * dt
		if gs.RemainingJumpBudget < 0 {
			gs.RemainingJumpBudget = 0
		}
		gs.Ascending = true
		gs.Airborne = true
		v.VY = jumpSpeed
		return
	}

	gs.Ascending = false
	if !out.Grounded || v.VY != 0 {
		gs.Airborne = true
		v.VY += gs.Acceleration * dt
	}
}
