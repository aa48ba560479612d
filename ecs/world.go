package ecs

import "github.com/milk9111/platformer/ecs/component"

// World owns entities and their component stores.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its slot.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity in slot order.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities.list()
}

// First returns any live entity carrying kind.
func (w *World) First(kind component.AnyKind) (Entity, bool) {
	s := w.storeFor(kind.ID())
	if s == nil || s.Len() == 0 {
		return 0, false
	}
	return s.dense[0], true
}

// Query returns the live entities carrying every one of kinds.
func (w *World) Query(kinds ...component.AnyKind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.storeFor(k.ID())
		if s == nil {
			return nil
		}
		sets = append(sets, s)
	}
	return intersect(sets...)
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Clear destroys every entity. Component stores are kept so kinds stay valid.
func (w *World) Clear() {
	if w == nil {
		return
	}
	for _, e := range w.entities.list() {
		w.DestroyEntity(e)
	}
	w.events.Drain()
}

func (w *World) storeFor(id component.ComponentID) *SparseSet {
	if w == nil || w.stores == nil {
		return nil
	}
	return w.stores[id]
}

func (w *World) ensureStore(id component.ComponentID) *SparseSet {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s, ok := w.stores[id]
	if !ok {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

func CreateEntity(w *World) Entity { return w.CreateEntity() }

func DestroyEntity(w *World, e Entity) bool { return w.DestroyEntity(e) }

func IsAlive(w *World, e Entity) bool { return w.IsAlive(e) }

func Entities(w *World) []Entity { return w.Entities() }

func First(w *World, kind component.AnyKind) (Entity, bool) { return w.First(kind) }

func Query(w *World, kinds ...component.AnyKind) []Entity { return w.Query(kinds...) }
