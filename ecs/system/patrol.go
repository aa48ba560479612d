package system

import (
	"errors"
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

// errScriptUnavailable is returned for a script that already failed to
// load or compile; the failure was logged the first time.
var errScriptUnavailable = errors.New("patrol: script unavailable")

// patrolScript is a compiled patrol program; scripts are stateless between
// ticks so one compiled copy is shared by every hazard using the path.
type patrolScript struct {
	compiled *tengo.Compiled
	err      error
}

// PatrolSystem moves patrolling hazards by running their tengo script once
// per tick. The script sees x, vx, min_x, max_x, width and dt and writes back
// x and vx.
type PatrolSystem struct {
	load  func(name string) ([]byte, error)
	cache map[string]*patrolScript
}

func NewPatrolSystem() *PatrolSystem {
	return &PatrolSystem{load: prefabs.LoadScript}
}

// NewPatrolSystemWithLoader reads scripts through load instead of the prefab
// directory.
func NewPatrolSystemWithLoader(load func(name string) ([]byte, error)) *PatrolSystem {
	if load == nil {
		load = prefabs.LoadScript
	}
	return &PatrolSystem{load: load}
}

// Invalidate drops every compiled script so edited files are picked up.
func (ps *PatrolSystem) Invalidate() {
	if ps == nil {
		return
	}
	ps.cache = nil
}

func (ps *PatrolSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	dt := physicsSettings(w).DT

	ecs.ForEach3(w, component.PatrolComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind(), func(e ecs.Entity, p *component.Patrol, t *component.Transform, c *component.Collider) {
		if !InScope(w, e) {
			return
		}
		x, vx, err := ps.step(p, t.X, c.Width, dt)
		if errors.Is(err, errScriptUnavailable) {
			return
		}
		if err != nil {
			log.Printf("patrol: entity=%d script %q error: %v", e, p.Script, err)
			return
		}
		t.X = x
		p.VX = vx
	})
}

func (ps *PatrolSystem) step(p *component.Patrol, x, width, dt float64) (float64, float64, error) {
	script, err := ps.script(p.Script)
	if err != nil {
		return x, p.VX, err
	}
	c := script.compiled

	inputs := map[string]float64{
		"x":     x,
		"vx":    p.VX,
		"min_x": p.MinX,
		"max_x": p.MaxX,
		"width": width,
		"dt":    dt,
	}
	for name, v := range inputs {
		if err := c.Set(name, v); err != nil {
			return x, p.VX, fmt.Errorf("set %s: %w", name, err)
		}
	}
	if err := c.Run(); err != nil {
		return x, p.VX, err
	}
	return c.Get("x").Float(), c.Get("vx").Float(), nil
}

func (ps *PatrolSystem) script(name string) (*patrolScript, error) {
	if ps.cache == nil {
		ps.cache = map[string]*patrolScript{}
	}
	if cached, ok := ps.cache[name]; ok {
		if cached.err != nil {
			return nil, errScriptUnavailable
		}
		return cached, nil
	}

	cached := &patrolScript{}
	cached.compiled, cached.err = ps.compile(name)
	ps.cache[name] = cached
	return cached, cached.err
}

func (ps *PatrolSystem) compile(name string) (*tengo.Compiled, error) {
	src, err := ps.load(name)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	script := tengo.NewScript(src)
	for _, v := range []string{"x", "vx", "min_x", "max_x", "width", "dt"} {
		if err := script.Add(v, 0.0); err != nil {
			return nil, err
		}
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
}
