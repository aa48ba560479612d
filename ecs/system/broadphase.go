package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// Broadphase indexes the colliders of the active level in a chipmunk space
// so the player only tests nearby boxes. Everything lives on the static body;
// patrolling hazards are re-inserted each sync since they move.
type Broadphase struct {
	space  *cp.Space
	level  int
	built  bool
	moving map[ecs.Entity]*cp.Shape
	count  int
}

func NewBroadphase() *Broadphase {
	return &Broadphase{level: -1}
}

// Invalidate forces a full rebuild on the next Sync.
func (b *Broadphase) Invalidate() {
	if b == nil {
		return
	}
	b.built = false
}

// Sync rebuilds the index when the active level changed and refreshes the
// moving shapes.
func (b *Broadphase) Sync(w *ecs.World) {
	level := ActiveLevel(w)
	if !b.built || b.level != level {
		b.rebuild(w, level)
		return
	}
	moving := b.moving
	b.moving = make(map[ecs.Entity]*cp.Shape, len(moving))
	for e, shape := range moving {
		b.space.RemoveShape(shape)
		b.count--
		if ecs.IsAlive(w, e) {
			b.insert(w, e, true)
		}
	}
}

func (b *Broadphase) rebuild(w *ecs.World, level int) {
	b.space = cp.NewSpace()
	b.moving = map[ecs.Entity]*cp.Shape{}
	b.level = level
	b.built = true
	b.count = 0

	for _, e := range ecs.Entities(w) {
		if !collidable(w, e) || !InScope(w, e) {
			continue
		}
		b.insert(w, e, ecs.Has(w, e, component.PatrolComponent.Kind()))
	}
}

func (b *Broadphase) insert(w *ecs.World, e ecs.Entity, moving bool) {
	t, okT := ecs.Get(w, e, component.TransformComponent.Kind())
	c, okC := ecs.Get(w, e, component.ColliderComponent.Kind())
	if !okT || !okC {
		return
	}
	box := component.Box(t, c)
	shape := cp.NewBox2(b.space.StaticBody, toBB(box), 0)
	shape.UserData = e
	b.space.AddShape(shape)
	b.count++
	if moving {
		b.moving[e] = shape
	}
}

// Query returns the indexed entities whose boxes touch box.
func (b *Broadphase) Query(box component.AABB) []ecs.Entity {
	if b == nil || b.space == nil {
		return nil
	}
	var out []ecs.Entity
	b.space.BBQuery(toBB(box), cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		if e, ok := shape.UserData.(ecs.Entity); ok {
			out = append(out, e)
		}
	}, nil)
	return out
}

// Len returns the number of indexed shapes.
func (b *Broadphase) Len() int {
	if b == nil {
		return 0
	}
	return b.count
}

func collidable(w *ecs.World, e ecs.Entity) bool {
	return ecs.Has(w, e, component.SolidComponent.Kind()) ||
		ecs.Has(w, e, component.HazardComponent.Kind()) ||
		ecs.Has(w, e, component.GoalComponent.Kind())
}

// toBB maps a top-left box to chipmunk bounds; y grows downward so B < T
// still holds.
func toBB(a component.AABB) cp.BB {
	return cp.BB{L: a.X, B: a.Y, R: a.Right(), T: a.Bottom()}
}
