package entity

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// newPlaced creates the components every placed entity shares: identity,
// kind and bounding box. An empty id gets a generated one.
func newPlaced(w *ecs.World, kind component.EntityKind, id string, box component.AABB) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("%s: world is nil", kind)
	}
	if box.W < 0 || box.H < 0 {
		return 0, fmt.Errorf("%s %q: negative size %vx%v", kind, id, box.W, box.H)
	}
	if id == "" {
		id = uuid.NewString()
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.IdentityComponent.Kind(), &component.Identity{ID: id}); err != nil {
		return 0, fmt.Errorf("%s: add identity: %w", kind, err)
	}
	if err := ecs.Add(w, e, component.KindComponent.Kind(), &component.Kind{Kind: kind}); err != nil {
		return 0, fmt.Errorf("%s: add kind: %w", kind, err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: box.X, Y: box.Y}); err != nil {
		return 0, fmt.Errorf("%s: add transform: %w", kind, err)
	}
	if err := ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Width: box.W, Height: box.H}); err != nil {
		return 0, fmt.Errorf("%s: add collider: %w", kind, err)
	}
	return e, nil
}

// FindByID returns the live entity with the given identity.
func FindByID(w *ecs.World, id string) (ecs.Entity, bool) {
	var found ecs.Entity
	ecs.ForEach(w, component.IdentityComponent.Kind(), func(e ecs.Entity, ident *component.Identity) {
		if found == 0 && ident.ID == id {
			found = e
		}
	})
	return found, found != 0
}

// ScopeTo restricts e to level idx.
func ScopeTo(w *ecs.World, e ecs.Entity, idx int) error {
	if err := ecs.Add(w, e, component.LevelMemberComponent.Kind(), &component.LevelMember{Index: idx}); err != nil {
		return fmt.Errorf("scope to level %d: %w", idx, err)
	}
	return nil
}
