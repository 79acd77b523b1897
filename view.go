package stage

import "fmt"

// viewCore is the query state shared by every view: the required signature,
// the point-in-time match count and the iteration cursor.
//
// Views scan entity slots in ascending id order and read the scene's current
// state on every step. Adding or removing entities or components while a
// view is being iterated leaves the iteration position undefined: iterate to
// completion (or Reset) before mutating the scene.
type viewCore struct {
	scene *Scene
	mask  Signature
	all   bool
	count int
	cur   int // slot of the current entity, -1 before the first Next
}

func newViewCore(s *Scene, ids ...ComponentTypeID) viewCore {
	if s == nil {
		panic("stage: view over nil scene")
	}
	v := viewCore{scene: s, all: len(ids) == 0, cur: -1}
	for _, id := range ids {
		if v.mask.Has(id) {
			panic(fmt.Sprintf("stage: duplicate component type %d in view", id))
		}
		v.mask.Set(id)
	}
	v.scan(func(int) bool {
		v.count++
		return true
	})
	return v
}

// matches reports whether live slot i satisfies the query.
func (v *viewCore) matches(i int) bool {
	return v.all || v.scene.signatures[i].Contains(v.mask)
}

// scan calls fn with every matching live slot in ascending order until fn
// returns false.
func (v *viewCore) scan(fn func(int) bool) {
	free := v.scene.free
	for i := free.NextUnset(0); i >= 0; i = free.NextUnset(i + 1) {
		if v.matches(i) && !fn(i) {
			return
		}
	}
}

// advance moves the cursor to the next matching live slot.
func (v *viewCore) advance() bool {
	free := v.scene.free
	for i := free.NextUnset(v.cur + 1); i >= 0; i = free.NextUnset(i + 1) {
		if v.matches(i) {
			v.cur = i
			return true
		}
	}
	v.cur = free.Len()
	return false
}

// Count returns the number of matching live entities at the time the view
// was constructed. It is not refreshed when the scene changes.
func (v *viewCore) Count() int { return v.count }

// Reset rewinds the iterator to before the first matching entity.
func (v *viewCore) Reset() { v.cur = -1 }

// Scene returns the scene the view queries.
func (v *viewCore) Scene() *Scene { return v.scene }

// Entity returns the current entity. It is only meaningful after Next has
// returned true.
func (v *viewCore) Entity() Entity {
	return Entity{ID: EntityID(v.cur), scene: v.scene}
}

// Entities returns the ids of all matching live entities in ascending order.
func (v *viewCore) Entities() []EntityID {
	ids := make([]EntityID, 0, v.count)
	v.scan(func(i int) bool {
		ids = append(ids, EntityID(i))
		return true
	})
	return ids
}

// View iterates every live entity regardless of its components.
type View struct {
	viewCore
}

// NewView creates an unconstrained view over s. Unlike a typed view with an
// empty type list, it matches entities that have no components at all.
func NewView(s *Scene) *View {
	return &View{viewCore: newViewCore(s)}
}

// Next advances to the next live entity and reports whether there is one.
//
// Example:
//
//	view := stage.NewView(scene)
//	for view.Next() {
//	    e := view.Entity()
//	    // ...
//	}
func (v *View) Next() bool { return v.advance() }

// ForEach calls fn for every live entity in ascending id order.
func (v *View) ForEach(fn func(Entity)) {
	v.scan(func(i int) bool {
		fn(Entity{ID: EntityID(i), scene: v.scene})
		return true
	})
}

// FindFirst returns the first live entity for which pred returns true, or an
// Entity holding InvalidEntity.
func (v *View) FindFirst(pred func(Entity) bool) Entity {
	found := Entity{ID: InvalidEntity, scene: v.scene}
	v.scan(func(i int) bool {
		e := Entity{ID: EntityID(i), scene: v.scene}
		if pred(e) {
			found = e
			return false
		}
		return true
	})
	return found
}
