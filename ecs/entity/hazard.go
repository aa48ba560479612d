package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

const defaultPatrolScript = "patrol.tengo"

func NewHazardAt(w *ecs.World, id string, box component.AABB) (ecs.Entity, error) {
	e, err := newPlaced(w, component.KindHazard, id, box)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.HazardComponent.Kind(), &component.Hazard{}); err != nil {
		return 0, fmt.Errorf("hazard: add hazard: %w", err)
	}
	return e, nil
}

// NewPatrolHazardAt places a hazard that the patrol system moves along X
// between p.MinX and p.MaxX.
func NewPatrolHazardAt(w *ecs.World, id string, box component.AABB, p component.Patrol) (ecs.Entity, error) {
	if p.MaxX <= p.MinX {
		return 0, fmt.Errorf("patrol hazard %q: empty range [%v, %v]", id, p.MinX, p.MaxX)
	}
	if p.Script == "" {
		p.Script = defaultPatrolScript
	}
	e, err := newPlaced(w, component.KindPatrolHazard, id, box)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.HazardComponent.Kind(), &component.Hazard{}); err != nil {
		return 0, fmt.Errorf("patrol hazard: add hazard: %w", err)
	}
	if err := ecs.Add(w, e, component.PatrolComponent.Kind(), &p); err != nil {
		return 0, fmt.Errorf("patrol hazard: add patrol: %w", err)
	}
	return e, nil
}
