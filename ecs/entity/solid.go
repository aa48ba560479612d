package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// NewSolidAt places a platform or ground box.
func NewSolidAt(w *ecs.World, kind component.EntityKind, id string, box component.AABB) (ecs.Entity, error) {
	if !kind.Solid() {
		return 0, fmt.Errorf("solid: %s is not a solid kind", kind)
	}
	e, err := newPlaced(w, kind, id, box)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.SolidComponent.Kind(), &component.Solid{}); err != nil {
		return 0, fmt.Errorf("solid: add tag: %w", err)
	}
	return e, nil
}
