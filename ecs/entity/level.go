package entity

import (
	"errors"
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

const sharedScope = -1

// LoadLevelSetToWorld creates the world singletons and every entity of every
// level. Level-specific entities are scoped with LevelMember; shared ones are
// active everywhere. The player is placed at the first level's spawn.
func LoadLevelSetToWorld(world *ecs.World, set *levels.Set, tuning prefabs.Tuning) error {
	if world == nil {
		return errors.New("load level set: world is nil")
	}
	if set == nil || len(set.Levels) == 0 {
		return errors.New("load level set: no levels")
	}

	spawns := make([]component.Point, 0, len(set.Levels))
	for _, lvl := range set.Levels {
		if lvl.Spawn == nil {
			return fmt.Errorf("load level set: %s: %w", lvl.Name, levels.ErrMissingSpawn)
		}
		spawns = append(spawns, component.Point{X: lvl.Spawn.X, Y: lvl.Spawn.Y})
	}

	if err := newGameState(world, set, tuning, spawns); err != nil {
		return err
	}

	for _, ent := range set.Shared.Entities {
		if err := placeEntity(world, ent, sharedScope, tuning); err != nil {
			return fmt.Errorf("load level set: %s: %w", set.Shared.Name, err)
		}
	}
	for idx, lvl := range set.Levels {
		for _, ent := range lvl.Entities {
			if err := placeEntity(world, ent, idx, tuning); err != nil {
				return fmt.Errorf("load level set: %s: %w", lvl.Name, err)
			}
		}
	}

	player, ok := ecs.First(world, component.PlayerTagComponent.Kind())
	if !ok {
		return fmt.Errorf("load level set: %w", levels.ErrMissingPlayer)
	}
	t, _ := ecs.Get(world, player, component.TransformComponent.Kind())
	t.X = spawns[0].X
	t.Y = spawns[0].Y
	return nil
}

func newGameState(world *ecs.World, set *levels.Set, tuning prefabs.Tuning, spawns []component.Point) error {
	e := ecs.CreateEntity(world)
	if err := ecs.Add(world, e, component.LevelStateComponent.Kind(), &component.LevelState{
		Total:  len(set.Levels),
		Spawns: spawns,
	}); err != nil {
		return fmt.Errorf("game state: add level state: %w", err)
	}
	if err := ecs.Add(world, e, component.StatusComponent.Kind(), &component.Status{State: component.GamePlaying}); err != nil {
		return fmt.Errorf("game state: add status: %w", err)
	}
	if err := ecs.Add(world, e, component.LevelBoundsComponent.Kind(), &component.LevelBounds{
		Width:  set.World.Width,
		Height: set.World.Height,
		DeathY: set.World.DeathY,
	}); err != nil {
		return fmt.Errorf("game state: add level bounds: %w", err)
	}
	if err := ecs.Add(world, e, component.PhysicsSettingsComponent.Kind(), physicsSettings(tuning)); err != nil {
		return fmt.Errorf("game state: add physics settings: %w", err)
	}
	return nil
}

func physicsSettings(tuning prefabs.Tuning) *component.PhysicsSettings {
	return &component.PhysicsSettings{
		DT:               tuning.DT(),
		LandingTolerance: tuning.World.LandingTolerance,
		ContactSkin:      tuning.World.ContactSkin,
	}
}

func placeEntity(world *ecs.World, ent levels.Entity, scope int, tuning prefabs.Tuning) error {
	kind, ok := component.ParseEntityKind(ent.Type)
	if !ok {
		return fmt.Errorf("entity %q: %w %q", ent.ID, levels.ErrUnknownKind, ent.Type)
	}
	box := component.AABB{X: ent.X, Y: ent.Y, W: ent.W, H: ent.H}

	var (
		e   ecs.Entity
		err error
	)
	switch kind {
	case component.KindPlayer:
		_, err = NewPlayerAt(world, ent.ID, ent.X, ent.Y, ent.W, ent.H, tuning)
		return err
	case component.KindCameraAnchor:
		_, err = NewCameraAt(world, ent.ID, box, tuning.Camera)
		return err
	case component.KindPlatform, component.KindGround:
		e, err = NewSolidAt(world, kind, ent.ID, box)
	case component.KindHazard:
		e, err = NewHazardAt(world, ent.ID, box)
	case component.KindPatrolHazard:
		e, err = NewPatrolHazardAt(world, ent.ID, box, component.Patrol{
			VX:     ent.PropFloat("vx", 0),
			MinX:   ent.PropFloat("min_x", ent.X),
			MaxX:   ent.PropFloat("max_x", ent.X),
			Script: ent.PropString("script", ""),
		})
	case component.KindGoal:
		e, err = NewGoalAt(world, ent.ID, box)
	default:
		return fmt.Errorf("entity %q: %w %q", ent.ID, levels.ErrUnknownKind, ent.Type)
	}
	if err != nil {
		return err
	}
	if scope == sharedScope {
		return nil
	}
	return ScopeTo(world, e, scope)
}

// ApplyTuning pushes reloaded tuning into a running world without touching
// positions or progression. The jump budget is clamped to the new maximum.
func ApplyTuning(world *ecs.World, tuning prefabs.Tuning) {
	if settings, ok := ecs.Singleton(world, component.PhysicsSettingsComponent.Kind()); ok {
		*settings = *physicsSettings(tuning)
	}
	ecs.ForEach2(world, component.PlayerComponent.Kind(), component.GravityStateComponent.Kind(), func(_ ecs.Entity, p *component.Player, g *component.GravityState) {
		p.MoveSpeed = tuning.Player.MoveSpeed
		p.JumpSpeed = tuning.Player.JumpSpeed
		g.Acceleration = tuning.World.Gravity
		g.MaxJumpHeight = tuning.Player.MaxJumpHeight
		if g.RemainingJumpBudget > g.MaxJumpHeight {
			g.RemainingJumpBudget = g.MaxJumpHeight
		}
	})
	ecs.ForEach(world, component.CameraComponent.Kind(), func(_ ecs.Entity, c *component.Camera) {
		if s := tuning.Camera.Smoothness; s > 0 && s <= 1 {
			c.Smoothness = s
		}
	})
}
