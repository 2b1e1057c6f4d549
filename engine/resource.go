package engine

import (
	"reflect"
	"unsafe"
)

// Resource provides cached access to the single value of type T held by a
// World. Declare Resource fields on a System and the Scheduler wires them up
// on Register.
type Resource[T any] struct {
	world   *World
	dataPtr unsafe.Pointer
	typ     reflect.Type
}

// NewResource creates an accessor for T. If the world does not hold a T yet,
// it is added using the initializer, or the zero value when none is given.
func NewResource[T any](world *World, initializer ...T) *Resource[T] {
	typ := reflect.TypeFor[T]()

	entry := world.entry(typ)
	if entry == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		world.AddResource(value)
		entry = world.entry(typ)
	}

	return &Resource[T]{
		world:   world,
		dataPtr: entry.dataPtr,
		typ:     typ,
	}
}

// Init binds the accessor to a world.
// This is called automatically by the Scheduler during system registration.
func (r *Resource[T]) Init(world *World) {
	r.world = world
	r.typ = reflect.TypeFor[T]()
	r.dataPtr = nil
	r.updateCache()
}

// Get returns a pointer to the resource, or nil if the world does not hold one.
func (r *Resource[T]) Get() *T {
	if r.dataPtr == nil {
		r.updateCache()
	}
	if r.dataPtr == nil {
		return nil
	}
	return (*T)(r.dataPtr)
}

func (r *Resource[T]) updateCache() {
	if r.world == nil {
		return
	}
	if entry := r.world.entry(r.typ); entry != nil {
		r.dataPtr = entry.dataPtr
	}
}
