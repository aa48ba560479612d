package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// CameraSystem eases the camera anchor toward the player's centre and keeps
// the view inside the level bounds. Nothing in the core reads the camera.
type CameraSystem struct {
	snapped bool
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Snap jumps the camera straight to its target on the next update.
func (cs *CameraSystem) Snap() {
	cs.snapped = false
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if cs == nil || w == nil {
		return
	}
	player, ok := playerEntity(w)
	if !ok {
		return
	}
	pt, okT := ecs.Get(w, player, component.TransformComponent.Kind())
	pc, okC := ecs.Get(w, player, component.ColliderComponent.Kind())
	if !okT || !okC {
		return
	}
	camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam, _ := ecs.Get(w, camEntity, component.CameraComponent.Kind())
	ct, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	targetX := pt.X + pc.Width/2 - cam.ViewWidth/2
	targetY := pt.Y + pc.Height/2 - cam.ViewHeight/2

	smooth := cam.Smoothness
	if !cs.snapped {
		smooth = 1
		cs.snapped = true
	}
	x := common.Lerp(ct.X, targetX, smooth)
	y := common.Lerp(ct.Y, targetY, smooth)

	if bounds, ok := ecs.Singleton(w, component.LevelBoundsComponent.Kind()); ok {
		x = cp.Clamp(x, 0, max(0, bounds.Width-cam.ViewWidth))
		y = cp.Clamp(y, 0, max(0, bounds.Height-cam.ViewHeight))
	}
	ct.X = x
	ct.Y = y
}
