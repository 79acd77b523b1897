package stage

import (
	"fmt"
	"reflect"
	"sync"
	"unsafe"
)

// ComponentTypeID is a dense identifier for a component type, assigned the
// first time the type is used and stable for the life of the process.
type ComponentTypeID uint8

// MaxComponentTypes is the number of distinct component types a Registry can
// hold. It matches the width of a Signature.
const MaxComponentTypes = 256

// Destroyer is implemented by component types that own resources which must
// be released when the component leaves its slot (remove, re-add, entity
// destruction or scene close).
type Destroyer interface {
	Destroy()
}

// typeInfo describes how a pool stores one component type without knowing
// the type statically.
type typeInfo struct {
	typ     reflect.Type
	zero    func(unsafe.Pointer)
	destroy func(unsafe.Pointer) // nil unless the type implements Destroyer
	size    uintptr
	align   uintptr
	id      ComponentTypeID
}

// Registry assigns ComponentTypeIDs to Go types in first-use order. Every
// Scene resolves its component types through a Registry; unless configured
// otherwise that is the process-wide default registry.
//
// A Registry is safe for concurrent use, since it is shared by all scenes.
type Registry struct {
	types map[reflect.Type]*typeInfo
	infos []*typeInfo
	mu    sync.Mutex
	limit int
}

var defaultRegistry = NewRegistry(MaxComponentTypes)

// NewRegistry creates an empty registry that accepts at most limit types.
// It panics if limit is outside [1, MaxComponentTypes].
func NewRegistry(limit int) *Registry {
	if limit < 1 || limit > MaxComponentTypes {
		panic(fmt.Sprintf("stage: registry limit %d outside [1, %d]", limit, MaxComponentTypes))
	}
	return &Registry{
		types: make(map[reflect.Type]*typeInfo, 16),
		limit: limit,
	}
}

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Len returns the number of registered component types.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.infos)
}

// Limit returns the maximum number of types r accepts.
func (r *Registry) Limit() int {
	return r.limit
}

// Type returns the Go type registered under id, or nil.
func (r *Registry) Type(id ComponentTypeID) reflect.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	if int(id) >= len(r.infos) {
		return nil
	}
	return r.infos[id].typ
}

// RegisterComponent returns the ComponentTypeID of T in r, registering T if
// this is its first use. It panics when r is full.
func RegisterComponent[T any](r *Registry) ComponentTypeID {
	return typeInfoOf[T](r).id
}

// ComponentTypeOf returns the ComponentTypeID of T in the default registry,
// registering it on first use.
func ComponentTypeOf[T any]() ComponentTypeID {
	return typeInfoOf[T](defaultRegistry).id
}

// typeInfoOf registers or fetches the descriptor for T.
func typeInfoOf[T any](r *Registry) *typeInfo {
	t := reflect.TypeFor[T]()
	r.mu.Lock()
	defer r.mu.Unlock()
	if info, ok := r.types[t]; ok {
		return info
	}
	if len(r.infos) >= r.limit {
		panic(fmt.Sprintf("stage: cannot register component %s: maximum number of component types (%d) reached", t, r.limit))
	}
	info := &typeInfo{
		typ:   t,
		size:  t.Size(),
		align: uintptr(t.Align()),
		id:    ComponentTypeID(len(r.infos)),
		zero: func(p unsafe.Pointer) {
			var z T
			*(*T)(p) = z
		},
	}
	if _, ok := any((*T)(nil)).(Destroyer); ok {
		info.destroy = func(p unsafe.Pointer) {
			any((*T)(p)).(Destroyer).Destroy()
		}
	}
	r.types[t] = info
	r.infos = append(r.infos, info)
	return info
}

// info returns the descriptor registered under id. id must be registered.
func (r *Registry) info(id ComponentTypeID) *typeInfo {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.infos[id]
}
