package stage

import (
	"fmt"
	"reflect"
)

// Resources stores at most one value per type for data that belongs to a
// scene as a whole rather than to an entity (viewport settings, clocks,
// asset caches). Values are held by pointer. Slots freed by removal are
// reused.
type Resources struct {
	items   []any
	types   map[reflect.Type]int
	freeIds []int
}

// AddResource stores res and returns its slot. It panics if res is nil or a
// resource of type T is already present.
func AddResource[T any](r *Resources, res *T) int {
	if res == nil {
		panic("stage: cannot add nil resource")
	}
	t := reflect.TypeFor[*T]()
	if r.types == nil {
		r.types = make(map[reflect.Type]int)
	}
	if _, ok := r.types[t]; ok {
		panic(fmt.Sprintf("stage: resource %s already present", t))
	}
	var slot int
	if n := len(r.freeIds); n > 0 {
		slot = r.freeIds[n-1]
		r.freeIds = r.freeIds[:n-1]
		r.items[slot] = res
	} else {
		slot = len(r.items)
		r.items = append(r.items, res)
	}
	r.types[t] = slot
	return slot
}

// GetResource returns the resource of type T, if present.
func GetResource[T any](r *Resources) (*T, bool) {
	slot, ok := r.types[reflect.TypeFor[*T]()]
	if !ok {
		return nil, false
	}
	return r.items[slot].(*T), true
}

// HasResource reports whether a resource of type T is present.
func HasResource[T any](r *Resources) bool {
	_, ok := r.types[reflect.TypeFor[*T]()]
	return ok
}

// RemoveResource removes the resource of type T and reports whether one was
// present.
func RemoveResource[T any](r *Resources) bool {
	t := reflect.TypeFor[*T]()
	slot, ok := r.types[t]
	if !ok {
		return false
	}
	delete(r.types, t)
	r.items[slot] = nil
	r.freeIds = append(r.freeIds, slot)
	return true
}

// Len returns the number of stored resources.
func (r *Resources) Len() int {
	return len(r.types)
}

// Clear removes every resource.
func (r *Resources) Clear() {
	clear(r.items)
	r.items = r.items[:0]
	clear(r.types)
	r.freeIds = r.freeIds[:0]
}
