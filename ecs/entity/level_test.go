package entity

import (
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

func testSet() *levels.Set {
	return &levels.Set{
		World: levels.World{Width: 1000, Height: 400, DeathY: 500},
		Shared: levels.Level{
			Name: "shared",
			Entities: []levels.Entity{
				{ID: "player", Type: "player", X: 0, Y: 0},
				{ID: "ground", Type: "ground", X: 0, Y: 300, W: 1000, H: 50},
				{ID: "camera", Type: "camera", W: 320, H: 240},
			},
		},
		Levels: []levels.Level{
			{
				Name:  "one",
				Spawn: &levels.Point{X: 10, Y: 268},
				Entities: []levels.Entity{
					{ID: "one-goal", Type: "goal", X: 900, Y: 200, W: 10, H: 100},
					{Type: "hazard", X: 400, Y: 290, W: 20, H: 10},
				},
			},
			{
				Name:  "two",
				Spawn: &levels.Point{X: 20, Y: 268},
				Entities: []levels.Entity{
					{ID: "two-goal", Type: "goal", X: 900, Y: 200, W: 10, H: 100},
					{ID: "two-walker", Type: "patrol_hazard", X: 500, Y: 280, W: 20, H: 20,
						Props: map[string]any{"vx": 50.0, "min_x": 450.0, "max_x": 600.0}},
				},
			},
		},
	}
}

func TestLoadLevelSetToWorld(t *testing.T) {
	w := ecs.NewWorld()
	tuning := prefabs.DefaultTuning()
	if err := LoadLevelSetToWorld(w, testSet(), tuning); err != nil {
		t.Fatalf("LoadLevelSetToWorld: %v", err)
	}

	state, ok := ecs.Singleton(w, component.LevelStateComponent.Kind())
	if !ok || state.Total != 2 || state.Current != 0 || len(state.Spawns) != 2 {
		t.Fatalf("unexpected level state %+v", state)
	}
	status, _ := ecs.Singleton(w, component.StatusComponent.Kind())
	if status.State != component.GamePlaying {
		t.Fatalf("expected playing, got %v", status.State)
	}

	player, ok := FindByID(w, "player")
	if !ok {
		t.Fatalf("player not found")
	}
	tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	if tr.X != 10 || tr.Y != 268 {
		t.Fatalf("player should start at level one spawn, got %+v", tr)
	}
	col, _ := ecs.Get(w, player, component.ColliderComponent.Kind())
	if col.Width != tuning.Player.Collider.Width || col.Height != tuning.Player.Collider.Height {
		t.Fatalf("expected prefab collider fallback, got %+v", col)
	}
	g, _ := ecs.Get(w, player, component.GravityStateComponent.Kind())
	if g.RemainingJumpBudget != g.MaxJumpHeight || g.Acceleration != tuning.World.Gravity {
		t.Fatalf("unexpected gravity state %+v", g)
	}

	ground, _ := FindByID(w, "ground")
	if ecs.Has(w, ground, component.LevelMemberComponent.Kind()) {
		t.Fatalf("shared ground should not be level scoped")
	}
	walker, _ := FindByID(w, "two-walker")
	m, ok := ecs.Get(w, walker, component.LevelMemberComponent.Kind())
	if !ok || m.Index != 1 {
		t.Fatalf("walker should be scoped to level 1, got %+v", m)
	}
	p, _ := ecs.Get(w, walker, component.PatrolComponent.Kind())
	if p.Script != defaultPatrolScript || p.VX != 50 {
		t.Fatalf("unexpected patrol %+v", p)
	}

	var generated int
	ecs.ForEach(w, component.IdentityComponent.Kind(), func(_ ecs.Entity, id *component.Identity) {
		if id.ID == "" {
			t.Fatalf("entity left without identity")
		}
		switch id.ID {
		case "player", "ground", "camera", "one-goal", "two-goal", "two-walker":
		default:
			generated++
		}
	})
	if generated != 1 {
		t.Fatalf("expected one generated id for the unnamed hazard, got %d", generated)
	}
}

func TestConstructorsRejectBadInput(t *testing.T) {
	w := ecs.NewWorld()
	if _, err := NewSolidAt(w, component.KindHazard, "x", component.AABB{W: 1, H: 1}); err == nil {
		t.Fatalf("expected error for non-solid kind")
	}
	if _, err := NewHazardAt(w, "x", component.AABB{W: -1, H: 1}); err == nil {
		t.Fatalf("expected error for negative size")
	}
	if _, err := NewPatrolHazardAt(w, "x", component.AABB{W: 1, H: 1}, component.Patrol{MinX: 5, MaxX: 5}); err == nil {
		t.Fatalf("expected error for empty patrol range")
	}
}

func TestApplyTuning(t *testing.T) {
	w := ecs.NewWorld()
	if err := LoadLevelSetToWorld(w, testSet(), prefabs.DefaultTuning()); err != nil {
		t.Fatal(err)
	}
	tuning := prefabs.DefaultTuning()
	tuning.Player.MoveSpeed = 99
	tuning.Player.MaxJumpHeight = 10
	tuning.World.TickRate = 30
	ApplyTuning(w, tuning)

	player, _ := FindByID(w, "player")
	p, _ := ecs.Get(w, player, component.PlayerComponent.Kind())
	g, _ := ecs.Get(w, player, component.GravityStateComponent.Kind())
	settings, _ := ecs.Singleton(w, component.PhysicsSettingsComponent.Kind())
	if p.MoveSpeed != 99 {
		t.Fatalf("move speed not applied: %v", p.MoveSpeed)
	}
	if g.MaxJumpHeight != 10 || g.RemainingJumpBudget != 10 {
		t.Fatalf("jump budget not clamped: %+v", g)
	}
	if settings.DT != 1.0/30 {
		t.Fatalf("dt not applied: %v", settings.DT)
	}
}
