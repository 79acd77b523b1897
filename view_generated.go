package stage

// View1 iterates live entities that have at least the component: T1.
type View1[T1 any] struct {
	viewCore
	ids [1]ComponentTypeID
}

// NewView1 creates a view over s matching entities that have T1. The
// match count is computed once, here. It panics on duplicate types.
func NewView1[T1 any](s *Scene) *View1[T1] {
	if s == nil {
		panic("stage: view over nil scene")
	}
	v := &View1[T1]{}
	v.ids[0] = typeInfoOf[T1](s.registry).id
	v.viewCore = newViewCore(s, v.ids[:]...)
	return v
}

// CurrentView1 creates a View1 over the scene held by c. It panics if c
// holds no scene.
func CurrentView1[T1 any](c *Current) *View1[T1] {
	return NewView1[T1](c.MustGet())
}

// Next advances to the next matching entity and reports whether there is
// one. Entity and Get are valid only after Next has returned true.
func (v *View1[T1]) Next() bool { return v.advance() }

// Get returns pointers to the current entity's components.
func (v *View1[T1]) Get() *T1 {
	return v.at(EntityID(v.cur))
}

func (v *View1[T1]) at(id EntityID) *T1 {
	return (*T1)(v.scene.pools[v.ids[0]].at(id))
}

// ForEach calls fn with every matching entity and its components in
// ascending id order.
func (v *View1[T1]) ForEach(fn func(Entity, *T1)) {
	v.scan(func(i int) bool {
		c1 := v.at(EntityID(i))
		fn(Entity{ID: EntityID(i), scene: v.scene}, c1)
		return true
	})
}

// Each calls fn with the components of every matching entity in ascending
// id order.
func (v *View1[T1]) Each(fn func(*T1)) {
	v.scan(func(i int) bool {
		fn(v.at(EntityID(i)))
		return true
	})
}

// FindFirst returns the first matching entity, in ascending id order, for
// which pred returns true, or an Entity holding InvalidEntity.
func (v *View1[T1]) FindFirst(pred func(Entity, *T1) bool) Entity {
	found := Entity{ID: InvalidEntity, scene: v.scene}
	v.scan(func(i int) bool {
		e := Entity{ID: EntityID(i), scene: v.scene}
		c1 := v.at(e.ID)
		if pred(e, c1) {
			found = e
			return false
		}
		return true
	})
	return found
}

// View2 iterates live entities that have at least the 2 components: T1, T2.
type View2[T1 any, T2 any] struct {
	viewCore
	ids [2]ComponentTypeID
}

// NewView2 creates a view over s matching entities that have T1, T2. The
// match count is computed once, here. It panics on duplicate types.
func NewView2[T1 any, T2 any](s *Scene) *View2[T1, T2] {
	if s == nil {
		panic("stage: view over nil scene")
	}
	v := &View2[T1, T2]{}
	v.ids[0] = typeInfoOf[T1](s.registry).id
	v.ids[1] = typeInfoOf[T2](s.registry).id
	v.viewCore = newViewCore(s, v.ids[:]...)
	return v
}

// CurrentView2 creates a View2 over the scene held by c. It panics if c
// holds no scene.
func CurrentView2[T1 any, T2 any](c *Current) *View2[T1, T2] {
	return NewView2[T1, T2](c.MustGet())
}

// Next advances to the next matching entity and reports whether there is
// one. Entity and Get are valid only after Next has returned true.
func (v *View2[T1, T2]) Next() bool { return v.advance() }

// Get returns pointers to the current entity's components.
func (v *View2[T1, T2]) Get() (*T1, *T2) {
	return v.at(EntityID(v.cur))
}

func (v *View2[T1, T2]) at(id EntityID) (*T1, *T2) {
	return (*T1)(v.scene.pools[v.ids[0]].at(id)),
		(*T2)(v.scene.pools[v.ids[1]].at(id))
}

// ForEach calls fn with every matching entity and its components in
// ascending id order.
func (v *View2[T1, T2]) ForEach(fn func(Entity, *T1, *T2)) {
	v.scan(func(i int) bool {
		c1, c2 := v.at(EntityID(i))
		fn(Entity{ID: EntityID(i), scene: v.scene}, c1, c2)
		return true
	})
}

// Each calls fn with the components of every matching entity in ascending
// id order.
func (v *View2[T1, T2]) Each(fn func(*T1, *T2)) {
	v.scan(func(i int) bool {
		fn(v.at(EntityID(i)))
		return true
	})
}

// FindFirst returns the first matching entity, in ascending id order, for
// which pred returns true, or an Entity holding InvalidEntity.
func (v *View2[T1, T2]) FindFirst(pred func(Entity, *T1, *T2) bool) Entity {
	found := Entity{ID: InvalidEntity, scene: v.scene}
	v.scan(func(i int) bool {
		e := Entity{ID: EntityID(i), scene: v.scene}
		c1, c2 := v.at(e.ID)
		if pred(e, c1, c2) {
			found = e
			return false
		}
		return true
	})
	return found
}

// View3 iterates live entities that have at least the 3 components: T1, T2, T3.
type View3[T1 any, T2 any, T3 any] struct {
	viewCore
	ids [3]ComponentTypeID
}

// NewView3 creates a view over s matching entities that have T1, T2, T3. The
// match count is computed once, here. It panics on duplicate types.
func NewView3[T1 any, T2 any, T3 any](s *Scene) *View3[T1, T2, T3] {
	if s == nil {
		panic("stage: view over nil scene")
	}
	v := &View3[T1, T2, T3]{}
	v.ids[0] = typeInfoOf[T1](s.registry).id
	v.ids[1] = typeInfoOf[T2](s.registry).id
	v.ids[2] = typeInfoOf[T3](s.registry).id
	v.viewCore = newViewCore(s, v.ids[:]...)
	return v
}

// CurrentView3 creates a View3 over the scene held by c. It panics if c
// holds no scene.
func CurrentView3[T1 any, T2 any, T3 any](c *Current) *View3[T1, T2, T3] {
	return NewView3[T1, T2, T3](c.MustGet())
}

// Next advances to the next matching entity and reports whether there is
// one. Entity and Get are valid only after Next has returned true.
func (v *View3[T1, T2, T3]) Next() bool { return v.advance() }

// Get returns pointers to the current entity's components.
func (v *View3[T1, T2, T3]) Get() (*T1, *T2, *T3) {
	return v.at(EntityID(v.cur))
}

func (v *View3[T1, T2, T3]) at(id EntityID) (*T1, *T2, *T3) {
	return (*T1)(v.scene.pools[v.ids[0]].at(id)),
		(*T2)(v.scene.pools[v.ids[1]].at(id)),
		(*T3)(v.scene.pools[v.ids[2]].at(id))
}

// ForEach calls fn with every matching entity and its components in
// ascending id order.
func (v *View3[T1, T2, T3]) ForEach(fn func(Entity, *T1, *T2, *T3)) {
	v.scan(func(i int) bool {
		c1, c2, c3 := v.at(EntityID(i))
		fn(Entity{ID: EntityID(i), scene: v.scene}, c1, c2, c3)
		return true
	})
}

// Each calls fn with the components of every matching entity in ascending
// id order.
func (v *View3[T1, T2, T3]) Each(fn func(*T1, *T2, *T3)) {
	v.scan(func(i int) bool {
		fn(v.at(EntityID(i)))
		return true
	})
}

// FindFirst returns the first matching entity, in ascending id order, for
// which pred returns true, or an Entity holding InvalidEntity.
func (v *View3[T1, T2, T3]) FindFirst(pred func(Entity, *T1, *T2, *T3) bool) Entity {
	found := Entity{ID: InvalidEntity, scene: v.scene}
	v.scan(func(i int) bool {
		e := Entity{ID: EntityID(i), scene: v.scene}
		c1, c2, c3 := v.at(e.ID)
		if pred(e, c1, c2, c3) {
			found = e
			return false
		}
		return true
	})
	return found
}

// View4 iterates live entities that have at least the 4 components: T1, T2, T3, T4.
type View4[T1 any, T2 any, T3 any, T4 any] struct {
	viewCore
	ids [4]ComponentTypeID
}

// NewView4 creates a view over s matching entities that have T1, T2, T3, T4. The
// match count is computed once, here. It panics on duplicate types.
func NewView4[T1 any, T2 any, T3 any, T4 any](s *Scene) *View4[T1, T2, T3, T4] {
	if s == nil {
		panic("stage: view over nil scene")
	}
	v := &View4[T1, T2, T3, T4]{}
	v.ids[0] = typeInfoOf[T1](s.registry).id
	v.ids[1] = typeInfoOf[T2](s.registry).id
	v.ids[2] = typeInfoOf[T3](s.registry).id
	v.ids[3] = typeInfoOf[T4](s.registry).id
	v.viewCore = newViewCore(s, v.ids[:]...)
	return v
}

// CurrentView4 creates a View4 over the scene held by c. It panics if c
// holds no scene.
func CurrentView4[T1 any, T2 any, T3 any, T4 any](c *Current) *View4[T1, T2, T3, T4] {
	return NewView4[T1, T2, T3, T4](c.MustGet())
}

// Next advances to the next matching entity and reports whether there is
// one. Entity and Get are valid only after Next has returned true.
func (v *View4[T1, T2, T3, T4]) Next() bool { return v.advance() }

// Get returns pointers to the current entity's components.
func (v *View4[T1, T2, T3, T4]) Get() (*T1, *T2, *T3, *T4) {
	return v.at(EntityID(v.cur))
}

func (v *View4[T1, T2, T3, T4]) at(id EntityID) (*T1, *T2, *T3, *T4) {
	return (*T1)(v.scene.pools[v.ids[0]].at(id)),
		(*T2)(v.scene.pools[v.ids[1]].at(id)),
		(*T3)(v.scene.pools[v.ids[2]].at(id)),
		(*T4)(v.scene.pools[v.ids[3]].at(id))
}

// ForEach calls fn with every matching entity and its components in
// ascending id order.
func (v *View4[T1, T2, T3, T4]) ForEach(fn func(Entity, *T1, *T2, *T3, *T4)) {
	v.scan(func(i int) bool {
		c1, c2, c3, c4 := v.at(EntityID(i))
		fn(Entity{ID: EntityID(i), scene: v.scene}, c1, c2, c3, c4)
		return true
	})
}

// Each calls fn with the components of every matching entity in ascending
// id order.
func (v *View4[T1, T2, T3, T4]) Each(fn func(*T1, *T2, *T3, *T4)) {
	v.scan(func(i int) bool {
		fn(v.at(EntityID(i)))
		return true
	})
}

// FindFirst returns the first matching entity, in ascending id order, for
// which pred returns true, or an Entity holding InvalidEntity.
func (v *View4[T1, T2, T3, T4]) FindFirst(pred func(Entity, *T1, *T2, *T3, *T4) bool) Entity {
	found := Entity{ID: InvalidEntity, scene: v.scene}
	v.scan(func(i int) bool {
		e := Entity{ID: EntityID(i), scene: v.scene}
		c1, c2, c3, c4 := v.at(e.ID)
		if pred(e, c1, c2, c3, c4) {
			found = e
			return false
		}
		return true
	})
	return found
}
