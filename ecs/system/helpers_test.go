package system

import (
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

// heldInput is an InputSource whose state the test flips between ticks.
type heldInput struct {
	in component.Input
}

func (h *heldInput) Sample() component.Input { return h.in }

type harness struct {
	t     *testing.T
	world *ecs.World
	input *heldInput
	sched *ecs.Scheduler
}

var testGround = levels.Entity{ID: "ground", Type: "ground", X: 0, Y: 300, W: 1000, H: 50}

// newHarness loads a set whose shared part is the player (20x20) plus
// shared, and whose levels are given. Every level spawns at (100, 280),
// resting on testGround, unless it sets its own spawn.
func newHarness(t *testing.T, shared []levels.Entity, lvls ...levels.Level) *harness {
	t.Helper()
	set := &levels.Set{
		World: levels.World{Width: 1000, Height: 400, DeathY: 500},
		Shared: levels.Level{
			Name: "shared",
			Entities: append([]levels.Entity{
				{ID: "player", Type: "player", W: 20, H: 20},
			}, shared...),
		},
	}
	for _, lvl := range lvls {
		if lvl.Spawn == nil {
			lvl.Spawn = &levels.Point{X: 100, Y: 280}
		}
		set.Levels = append(set.Levels, lvl)
	}

	w := ecs.NewWorld()
	if err := entity.LoadLevelSetToWorld(w, set, prefabs.DefaultTuning()); err != nil {
		t.Fatalf("load: %v", err)
	}

	h := &harness{t: t, world: w, input: &heldInput{}}
	h.sched = ecs.NewScheduler()
	h.sched.Add(NewLevelAdvanceSystem(false))
	h.sched.Add(NewInputSystem(h.input))
	h.sched.AddWhen(Playing, NewPatrolSystem())
	h.sched.AddWhen(Playing, NewCollisionSystem())
	h.sched.AddWhen(Playing, NewGravitySystem())
	h.sched.AddWhen(Playing, NewMovementSystem())
	h.sched.AddWhen(Playing, NewLevelSystem(false))
	return h
}

func (h *harness) tick(n int) {
	for i := 0; i < n; i++ {
		h.sched.Update(h.world)
	}
}

func (h *harness) player() ecs.Entity {
	h.t.Helper()
	e, ok := ecs.First(h.world, component.PlayerTagComponent.Kind())
	if !ok {
		h.t.Fatalf("no player")
	}
	return e
}

func (h *harness) transform() *component.Transform {
	t, _ := ecs.Get(h.world, h.player(), component.TransformComponent.Kind())
	return t
}

func (h *harness) velocity() *component.Velocity {
	v, _ := ecs.Get(h.world, h.player(), component.VelocityComponent.Kind())
	return v
}

func (h *harness) gravity() *component.GravityState {
	g, _ := ecs.Get(h.world, h.player(), component.GravityStateComponent.Kind())
	return g
}

func (h *harness) outcome() *component.CollisionOutcome {
	o, _ := ecs.Get(h.world, h.player(), component.CollisionOutcomeComponent.Kind())
	return o
}

func (h *harness) status() component.GameState {
	s, _ := ecs.Singleton(h.world, component.StatusComponent.Kind())
	return s.State
}

func (h *harness) levelState() *component.LevelState {
	s, _ := ecs.Singleton(h.world, component.LevelStateComponent.Kind())
	return s
}

func farGoal(id string) levels.Entity {
	return levels.Entity{ID: id, Type: "goal", X: 900, Y: 200, W: 16, H: 100}
}
