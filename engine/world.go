package engine

import (
	"reflect"
	"sort"
	"unsafe"

	"github.com/kamstrup/intmap"
)

// iface represents the internal memory layout of an interface{}.
type iface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// World holds the resources shared by the systems of a game. Every resource
// is a single value of a distinct Go type; systems reach it through a
// Resource field or ReadResource.
type World struct {
	resources *intmap.Map[uint64, *resourceEntry]
	types     []reflect.Type
}

type resourceEntry struct {
	typ     reflect.Type
	value   reflect.Value
	dataPtr unsafe.Pointer
}

// WorldStats describes the resources currently held by a World.
type WorldStats struct {
	ResourceCount int
	ResourceTypes []string
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		resources: intmap.New[uint64, *resourceEntry](16),
	}
}

// AddResource stores a copy of value as the resource for its type.
// Adding a second resource of the same type panics.
func (w *World) AddResource(value any) {
	if value == nil {
		panic("cannot add a nil resource")
	}

	typ := reflect.TypeOf(value)
	if typ.Kind() == reflect.Ptr {
		panic("resources are stored by value, got pointer " + typ.String())
	}

	key := typeKey(typ)
	if w.resources.Has(key) {
		panic("resource " + typ.String() + " already added")
	}

	ptr := reflect.New(typ)
	ptr.Elem().Set(reflect.ValueOf(value))

	w.resources.Put(key, &resourceEntry{
		typ:     typ,
		value:   ptr,
		dataPtr: ptr.UnsafePointer(),
	})
	w.types = append(w.types, typ)
}

// ReadResource points *out at the stored resource of type T, where out is
// a **T. It reports whether the resource exists.
func (w *World) ReadResource(out any) bool {
	outValue := reflect.ValueOf(out)
	if outValue.Kind() != reflect.Ptr || outValue.Elem().Kind() != reflect.Ptr {
		panic("ReadResource expects a pointer to a pointer, got " + outValue.Type().String())
	}

	entry := w.entry(outValue.Elem().Type().Elem())
	if entry == nil {
		return false
	}

	outValue.Elem().Set(entry.value)
	return true
}

func (w *World) entry(typ reflect.Type) *resourceEntry {
	entry, ok := w.resources.Get(typeKey(typ))
	if !ok {
		return nil
	}
	return entry
}

// CollectStats reports the number and names of the stored resources.
func (w *World) CollectStats() *WorldStats {
	names := make([]string, 0, len(w.types))
	for _, typ := range w.types {
		names = append(names, typ.String())
	}
	sort.Strings(names)

	return &WorldStats{
		ResourceCount: w.resources.Len(),
		ResourceTypes: names,
	}
}

// typeKey uses the runtime type descriptor address as a unique key.
func typeKey(t reflect.Type) uint64 {
	ptr := (*iface)(unsafe.Pointer(&t)).data
	return uint64(uintptr(ptr))
}

// Read returns the resource of type T held by w, or nil.
func Read[T any](w *World) *T {
	var ptr *T
	if !w.ReadResource(&ptr) {
		return nil
	}
	return ptr
}
