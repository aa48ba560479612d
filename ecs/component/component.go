package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentKind is the typed key a world stores component T under. Kinds are
// minted once at package init, one per component type.
type ComponentKind[T any] struct {
	id ComponentID
}

func NewComponentKind[T any]() ComponentKind[T] {
	return ComponentKind[T]{id: ComponentID(nextComponentID.Add(1))}
}

func (k ComponentKind[T]) ID() ComponentID {
	return k.id
}

// Valid reports whether k was minted by NewComponentKind.
func (k ComponentKind[T]) Valid() bool {
	return k.id != 0
}

// AnyKind is satisfied by every ComponentKind regardless of its type
// parameter, so untyped queries can mix kinds.
type AnyKind interface {
	ID() ComponentID
}

// ComponentHandle is what each component file exports, e.g.
// TransformComponent; systems pass its Kind to the ecs helpers.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}

// ComponentID indexes a world's stores. Zero is never issued.
type ComponentID uint32

var nextComponentID atomic.Uint32
