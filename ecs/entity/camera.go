package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

// NewCameraAt places the camera anchor. The box is the view rectangle.
func NewCameraAt(w *ecs.World, id string, box component.AABB, spec prefabs.CameraSpec) (ecs.Entity, error) {
	e, err := newPlaced(w, component.KindCameraAnchor, id, box)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}

	smooth := spec.Smoothness
	if smooth <= 0 || smooth > 1 {
		smooth = 0.15
	}
	if err := ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		ViewWidth:  box.W,
		ViewHeight: box.H,
		Smoothness: smooth,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}
	return e, nil
}
