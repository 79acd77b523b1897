package stage

import (
	"slices"
	"testing"
)

// populate creates e (Position, Velocity), f (Position), g (no components)
// and h (Velocity, Health).
func populate(t *testing.T) (s *Scene, e, f, g, h EntityID) {
	t.Helper()
	s = NewScene(32)
	e = mustCreate(t, s)
	f = mustCreate(t, s)
	g = mustCreate(t, s)
	h = mustCreate(t, s)
	AddComponent(s, e, Position{1, 1})
	AddComponent(s, e, Velocity{1, 0})
	AddComponent(s, f, Position{2, 2})
	AddComponent(s, h, Velocity{0, 1})
	AddComponent(s, h, Health{5, 10})
	return
}

// go test -run ^TestViewSignatureMatching$ . -count 1
func TestViewSignatureMatching(t *testing.T) {
	s, e, f, g, h := populate(t)

	tests := []struct {
		name string
		got  []EntityID
		want []EntityID
	}{
		{"Position+Velocity", NewView2[Position, Velocity](s).Entities(), []EntityID{e}},
		{"Velocity+Position", NewView2[Velocity, Position](s).Entities(), []EntityID{e}},
		{"Position", NewView1[Position](s).Entities(), []EntityID{e, f}},
		{"Velocity", NewView1[Velocity](s).Entities(), []EntityID{e, h}},
		{"Velocity+Health", NewView2[Velocity, Health](s).Entities(), []EntityID{h}},
		{"Position+Velocity+Health", NewView3[Position, Velocity, Health](s).Entities(), nil},
		{"unconstrained", NewView(s).Entities(), []EntityID{e, f, g, h}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !slices.Equal(tt.got, tt.want) {
				t.Errorf("visited %v, want %v", tt.got, tt.want)
			}
		})
	}
}

// go test -run ^TestViewNeverUsedType$ . -count 1
func TestViewNeverUsedType(t *testing.T) {
	type unused struct{ V int }
	s, _, _, _, _ := populate(t)
	v := NewView2[Position, unused](s)
	if v.Count() != 0 || v.Next() {
		t.Fatal("view over a type without a pool matched an entity")
	}
}

// go test -run ^TestViewIterationOrder$ . -count 1
func TestViewIterationOrder(t *testing.T) {
	s := NewScene(200)
	for i := 0; i < 200; i++ {
		id := mustCreate(t, s)
		if i%3 == 0 {
			AddComponent(s, id, Position{X: float32(i)})
		}
	}
	for i := EntityID(0); i < 200; i += 7 {
		s.DestroyEntity(i)
	}

	v := NewView1[Position](s)
	prev := -1
	n := 0
	for v.Next() {
		id := int(v.Entity().ID)
		if id <= prev {
			t.Fatalf("visited %d after %d", id, prev)
		}
		if id%3 != 0 || id%7 == 0 {
			t.Fatalf("visited non-matching entity %d", id)
		}
		if p := v.Get(); p.X != float32(id) {
			t.Fatalf("entity %d has Position.X %v", id, p.X)
		}
		prev = id
		n++
	}
	if n != v.Count() {
		t.Fatalf("visited %d, Count = %d", n, v.Count())
	}
	if v.Next() {
		t.Fatal("Next true after exhaustion")
	}
}

// go test -run ^TestViewGetAndWrite$ . -count 1
func TestViewGetAndWrite(t *testing.T) {
	s, e, _, _, _ := populate(t)
	v := NewView2[Position, Velocity](s)
	for v.Next() {
		p, vel := v.Get()
		p.X += vel.X
		p.Y += vel.Y
	}
	if got := *GetComponent[Position](s, e); got != (Position{2, 1}) {
		t.Fatalf("Position after system = %+v, want {2 1}", got)
	}
}

// go test -run ^TestViewReset$ . -count 1
func TestViewReset(t *testing.T) {
	s, _, _, _, _ := populate(t)
	v := NewView1[Position](s)
	first := 0
	for v.Next() {
		first++
	}
	v.Reset()
	second := 0
	for v.Next() {
		second++
	}
	if first != 2 || second != 2 {
		t.Fatalf("iterations = %d, %d, want 2, 2", first, second)
	}
}

// go test -run ^TestViewCountSnapshot$ . -count 1
func TestViewCountSnapshot(t *testing.T) {
	s, _, f, _, _ := populate(t)
	v := NewView1[Position](s)
	if v.Count() != 2 {
		t.Fatalf("Count = %d, want 2", v.Count())
	}

	// Iterated to completion before mutating: the next pass sees the new
	// state while Count keeps the construction-time snapshot.
	for v.Next() {
	}
	s.DestroyEntity(f)
	n := mustCreate(t, s)
	AddComponent(s, n, Position{})
	other := mustCreate(t, s)
	AddComponent(s, other, Position{})

	if v.Count() != 2 {
		t.Fatalf("Count refreshed to %d", v.Count())
	}
	v.Reset()
	visited := 0
	for v.Next() {
		visited++
	}
	if visited != 3 {
		t.Fatalf("visited %d after reset, want 3", visited)
	}
	if NewView1[Position](s).Count() != 3 {
		t.Fatal("fresh view Count mismatch")
	}
}

// go test -run ^TestViewForEach$ . -count 1
func TestViewForEach(t *testing.T) {
	s, e, _, _, h := populate(t)
	var ids []EntityID
	NewView1[Velocity](s).ForEach(func(ent Entity, v *Velocity) {
		ids = append(ids, ent.ID)
		v.X *= 10
	})
	if !slices.Equal(ids, []EntityID{e, h}) {
		t.Fatalf("ForEach visited %v", ids)
	}
	if GetComponent[Velocity](s, e).X != 10 {
		t.Fatal("ForEach write lost")
	}

	sum := 0
	NewView2[Velocity, Health](s).Each(func(_ *Velocity, hp *Health) {
		sum += hp.Current
	})
	if sum != 5 {
		t.Fatalf("Each sum = %d, want 5", sum)
	}

	var all []EntityID
	NewView(s).ForEach(func(ent Entity) { all = append(all, ent.ID) })
	if len(all) != 4 {
		t.Fatalf("unconstrained ForEach visited %v", all)
	}
}

// go test -run ^TestViewFindFirst$ . -count 1
func TestViewFindFirst(t *testing.T) {
	s, e, f, g, _ := populate(t)
	v := NewView1[Position](s)

	var calls []EntityID
	got := v.FindFirst(func(ent Entity, p *Position) bool {
		calls = append(calls, ent.ID)
		return p.X == 2
	})
	if got.ID != f {
		t.Fatalf("FindFirst = %v, want %d", got, f)
	}
	if !slices.Equal(calls, []EntityID{e, f}) {
		t.Fatalf("predicate called for %v, want [%d %d]", calls, e, f)
	}

	none := v.FindFirst(func(Entity, *Position) bool { return false })
	if none.Valid() || none.ID != InvalidEntity {
		t.Fatalf("FindFirst without match = %v", none)
	}

	bare := NewView(s).FindFirst(func(ent Entity) bool {
		return ent.Scene().Signature(ent.ID).IsEmpty()
	})
	if bare.ID != g {
		t.Fatalf("unconstrained FindFirst = %v, want %d", bare, g)
	}
}

// go test -run ^TestViewFourTypes$ . -count 1
func TestViewFourTypes(t *testing.T) {
	s := NewScene(8)
	a := mustCreate(t, s)
	b := mustCreate(t, s)
	for _, id := range []EntityID{a, b} {
		AddComponent(s, id, Position{})
		AddComponent(s, id, Velocity{})
		AddComponent(s, id, Health{})
	}
	AddComponent(s, b, Tag{})
	v := NewView4[Position, Velocity, Health, Tag](s)
	if got := v.Entities(); !slices.Equal(got, []EntityID{b}) {
		t.Fatalf("View4 visited %v", got)
	}
	if !v.Next() {
		t.Fatal("View4 Next false")
	}
	p, vel, hp, tag := v.Get()
	if p == nil || vel == nil || hp == nil || tag == nil {
		t.Fatal("View4 Get returned nil")
	}
}

// go test -run ^TestViewDuplicateTypesPanics$ . -count 1
func TestViewDuplicateTypesPanics(t *testing.T) {
	s := NewScene(4)
	mustPanic(t, "View2 duplicate", func() { NewView2[Position, Position](s) })
	mustPanic(t, "nil scene", func() { NewView1[Position](nil) })
}
