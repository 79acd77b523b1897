package stage

import (
	"fmt"
	"reflect"
	"unsafe"
)

// pool is the fixed-capacity storage for one component type inside a Scene.
// Slot i belongs to EntityID i. The backing array is allocated once, zeroed,
// and never moves, so pointers handed out by the Scene stay valid until the
// slot is reset or the Scene is closed.
type pool struct {
	info     *typeInfo
	data     reflect.Value // keeps the backing array reachable for the GC
	base     unsafe.Pointer
	capacity int
}

// newPool allocates a zeroed pool of capacity slots for the described type.
// Zero-size types are allowed; all of their slots share one address.
func newPool(info *typeInfo, capacity int) *pool {
	if capacity <= 0 {
		panic(fmt.Sprintf("stage: invalid pool capacity %d for %s", capacity, info.typ))
	}
	slice := reflect.MakeSlice(reflect.SliceOf(info.typ), capacity, capacity)
	return &pool{
		info:     info,
		data:     slice,
		base:     slice.UnsafePointer(),
		capacity: capacity,
	}
}

// at returns the address of the slot for id. The caller guarantees
// id < capacity.
func (p *pool) at(id EntityID) unsafe.Pointer {
	return unsafe.Add(p.base, uintptr(id)*p.info.size)
}

// reset destroys the value held in slot id, if the type has a destroy hook,
// and zero-fills the slot.
func (p *pool) reset(id EntityID) {
	ptr := p.at(id)
	if p.info.destroy != nil {
		p.info.destroy(ptr)
	}
	p.info.zero(ptr)
}

// release drops the backing array. Live slots must have been reset first.
func (p *pool) release() {
	p.data = reflect.Value{}
	p.base = nil
	p.capacity = 0
}

// bytes returns the memory footprint of the pool.
func (p *pool) bytes() uintptr {
	return uintptr(p.capacity) * p.info.size
}
