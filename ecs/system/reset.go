package system

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// ResetSystem rebuilds the world when a ResetRequest is present. The reload
// callback owns the rebuild; onReset runs afterwards so index caches can be
// dropped. Requests are consumed even when the reload fails: the panic names
// the dropped request, and the tick is rolled back without it so a broken
// level set does not fault every tick.
type ResetSystem struct {
	reload  func(w *ecs.World) error
	onReset func()
}

func NewResetSystem(reload func(w *ecs.World) error, onReset func()) *ResetSystem {
	return &ResetSystem{reload: reload, onReset: onReset}
}

func (r *ResetSystem) Update(w *ecs.World) {
	if r == nil || w == nil || r.reload == nil {
		return
	}
	if _, ok := ecs.First(w, component.ResetRequestComponent.Kind()); !ok {
		return
	}
	ecs.ForEach(w, component.ResetRequestComponent.Kind(), func(e ecs.Entity, _ *component.ResetRequest) {
		ecs.DestroyEntity(w, e)
	})

	if err := r.reload(w); err != nil {
		panic(fmt.Sprintf("reset system: reload failed, reset request dropped: %v", err))
	}
	if r.onReset != nil {
		r.onReset()
	}
	w.Events().Push(ecs.Event{Type: ecs.EventReset})
}

// RequestReset asks the ResetSystem to rebuild the world on the next tick.
func RequestReset(w *ecs.World) error {
	return ecs.Add(w, ecs.CreateEntity(w), component.ResetRequestComponent.Kind(), &component.ResetRequest{})
}
