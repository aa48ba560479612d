package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

// NewPlayerAt places the player with its top-left corner at (x, y). A zero
// width or height falls back to the prefab collider.
func NewPlayerAt(w *ecs.World, id string, x, y, width, height float64, tuning prefabs.Tuning) (ecs.Entity, error) {
	if width == 0 {
		width = tuning.Player.Collider.Width
	}
	if height == 0 {
		height = tuning.Player.Collider.Height
	}
	e, err := newPlaced(w, component.KindPlayer, id, component.AABB{X: x, Y: y, W: width, H: height})
	if err != nil {
		return 0, err
	}

	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		MoveSpeed: tuning.Player.MoveSpeed,
		JumpSpeed: tuning.Player.JumpSpeed,
	}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return 0, fmt.Errorf("player: add velocity: %w", err)
	}
	gravity := &component.GravityState{
		Acceleration:  tuning.World.Gravity,
		MaxJumpHeight: tuning.Player.MaxJumpHeight,
	}
	gravity.Reset()
	if err := ecs.Add(w, e, component.GravityStateComponent.Kind(), gravity); err != nil {
		return 0, fmt.Errorf("player: add gravity: %w", err)
	}
	if err := ecs.Add(w, e, component.CollisionOutcomeComponent.Kind(), &component.CollisionOutcome{}); err != nil {
		return 0, fmt.Errorf("player: add collision outcome: %w", err)
	}
	return e, nil
}
