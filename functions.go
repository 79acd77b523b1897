package stage

import "fmt"

// AddComponent stores val as id's component of type T and returns a pointer
// to the stored value. The pool for T is allocated on the first use of T in
// s. If id already has a T, the previous value is destroyed (see Destroyer)
// before val replaces it.
//
// It panics if id is not live, if the registry cannot take another type, or
// if T's type id exceeds the scene's component type limit.
//
// The returned pointer stays valid until the component is removed or the
// entity destroyed.
func AddComponent[T any](s *Scene, id EntityID, val T) *T {
	s.mustBeAlive(id, "AddComponent")
	info := typeInfoOf[T](s.registry)
	p := s.poolFor(info)
	ptr := p.at(id)
	sig := &s.signatures[id]
	if sig.Has(info.id) && info.destroy != nil {
		info.destroy(ptr)
	}
	*(*T)(ptr) = val
	sig.Set(info.id)
	if s.events != nil {
		Publish(s.events, ComponentAdded{Entity: id, Type: info.id})
	}
	return (*T)(ptr)
}

// GetComponent returns a pointer to id's component of type T. It panics if
// id is not live or has no T; use HasComponent or TryGetComponent when the
// component may be absent.
func GetComponent[T any](s *Scene, id EntityID) *T {
	c, ok := TryGetComponent[T](s, id)
	if !ok {
		s.mustBeAlive(id, "GetComponent")
		panic(fmt.Sprintf("stage: entity %d has no %s component", id, typeInfoOf[T](s.registry).typ))
	}
	return c
}

// TryGetComponent returns a pointer to id's component of type T and true,
// or nil and false if id is not live or has no T.
func TryGetComponent[T any](s *Scene, id EntityID) (*T, bool) {
	if !s.IsAlive(id) {
		return nil, false
	}
	info := typeInfoOf[T](s.registry)
	if !s.signatures[id].Has(info.id) {
		return nil, false
	}
	return (*T)(s.pools[info.id].at(id)), true
}

// HasComponent reports whether id has a component of type T. It panics if
// id is not live.
func HasComponent[T any](s *Scene, id EntityID) bool {
	s.mustBeAlive(id, "HasComponent")
	return s.signatures[id].Has(typeInfoOf[T](s.registry).id)
}

// RemoveComponent destroys and zeroes id's component of type T and clears
// it from the entity's signature. It does nothing if id has no T, and panics
// if id is not live.
func RemoveComponent[T any](s *Scene, id EntityID) {
	s.mustBeAlive(id, "RemoveComponent")
	c := typeInfoOf[T](s.registry).id
	if !s.signatures[id].Has(c) {
		return
	}
	s.detach(id, c)
}

// FindEntity returns the live entity with the lowest id that has a component
// of type T, or an Entity holding InvalidEntity if there is none.
func FindEntity[T any](s *Scene) Entity {
	c := typeInfoOf[T](s.registry).id
	for i := s.free.NextUnset(0); i >= 0; i = s.free.NextUnset(i + 1) {
		if s.signatures[i].Has(c) {
			return Entity{ID: EntityID(i), scene: s}
		}
	}
	return Entity{ID: InvalidEntity, scene: s}
}
