package loop

import (
	"errors"
	"fmt"
	"log"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

// Options configures a Simulation.
type Options struct {
	Set    *levels.Set
	Tuning prefabs.Tuning
	// Input defaults to the keyboard.
	Input system.InputSource
	// StartLevel is the zero-based level the first run begins on. Reset
	// always returns to the first level.
	StartLevel int
	// ScriptLoader overrides where patrol scripts are read from.
	ScriptLoader func(name string) ([]byte, error)
	Debug        bool
}

// Simulation owns the world and runs one fixed step per Tick. Stage order:
// reset requests, pending level advance, input, then (only while playing)
// patrol, collision, gravity, movement and level outcome, then the camera.
type Simulation struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	set       *levels.Set
	tuning    prefabs.Tuning
	debug     bool
	ticks     uint64

	collision *system.CollisionSystem
	patrol    *system.PatrolSystem
	camera    *system.CameraSystem
}

func NewSimulation(opts Options) (*Simulation, error) {
	if opts.Set == nil {
		return nil, errors.New("simulation: no level set")
	}
	if err := opts.Tuning.Validate(); err != nil {
		return nil, fmt.Errorf("simulation: %w", err)
	}

	s := &Simulation{
		world:     ecs.NewWorld(),
		set:       opts.Set,
		tuning:    opts.Tuning,
		debug:     opts.Debug,
		collision: system.NewCollisionSystem(),
		patrol:    system.NewPatrolSystemWithLoader(opts.ScriptLoader),
		camera:    system.NewCameraSystem(),
	}
	if err := s.rebuild(s.world); err != nil {
		return nil, err
	}
	if opts.StartLevel != 0 {
		if err := s.startAt(opts.StartLevel); err != nil {
			return nil, err
		}
	}

	s.scheduler = ecs.NewScheduler()
	s.scheduler.Add(system.NewResetSystem(s.rebuild, s.invalidate))
	s.scheduler.Add(system.NewLevelAdvanceSystem(s.debug))
	s.scheduler.Add(system.NewInputSystem(opts.Input))
	s.scheduler.AddWhen(system.Playing, s.patrol)
	s.scheduler.AddWhen(system.Playing, s.collision)
	s.scheduler.AddWhen(system.Playing, system.NewGravitySystem())
	s.scheduler.AddWhen(system.Playing, system.NewMovementSystem())
	s.scheduler.AddWhen(system.Playing, system.NewLevelSystem(s.debug))
	s.scheduler.Add(s.camera)
	return s, nil
}

// rebuild loads the level set into a scratch world first so a bad set leaves
// w untouched.
func (s *Simulation) rebuild(w *ecs.World) error {
	if err := entity.LoadLevelSetToWorld(ecs.NewWorld(), s.set, s.tuning); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}
	w.Clear()
	if err := entity.LoadLevelSetToWorld(w, s.set, s.tuning); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}
	return nil
}

func (s *Simulation) invalidate() {
	s.collision.Invalidate()
	s.camera.Snap()
}

func (s *Simulation) startAt(idx int) error {
	state, ok := ecs.Singleton(s.world, component.LevelStateComponent.Kind())
	if !ok {
		return errors.New("simulation: no level state")
	}
	spawn, ok := state.Spawn(idx)
	if !ok {
		return fmt.Errorf("simulation: start level %d out of range [0, %d)", idx, state.Total)
	}
	state.Current = idx
	if player, ok := ecs.First(s.world, component.PlayerTagComponent.Kind()); ok {
		system.PlaceAtSpawn(s.world, player, spawn)
	}
	return nil
}

// Tick advances the game by one fixed step.
func (s *Simulation) Tick() {
	s.scheduler.Update(s.world)
	s.ticks++

	for _, ev := range s.world.Events().Drain() {
		switch ev.Type {
		case ecs.EventLevelAdvanced, ecs.EventReset:
			s.camera.Snap()
		}
		if s.debug {
			log.Printf("tick %d: %s %v", s.ticks, ev.Type, ev.Data)
		}
	}
}

// Reset rebuilds the world from the level set immediately.
func (s *Simulation) Reset() error {
	if err := s.rebuild(s.world); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// RequestReset queues a reset for the start of the next tick.
func (s *Simulation) RequestReset() error {
	return system.RequestReset(s.world)
}

// SetTuning applies new tuning to the running world. Later resets use it
// too.
func (s *Simulation) SetTuning(t prefabs.Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	s.tuning = t
	entity.ApplyTuning(s.world, t)
	return nil
}

// ReloadScripts recompiles patrol scripts on their next use.
func (s *Simulation) ReloadScripts() {
	s.patrol.Invalidate()
}

func (s *Simulation) World() *ecs.World {
	return s.world
}

func (s *Simulation) Ticks() uint64 {
	return s.ticks
}

func (s *Simulation) Status() component.GameState {
	if st, ok := ecs.Singleton(s.world, component.StatusComponent.Kind()); ok {
		return st.State
	}
	return component.GamePlaying
}
