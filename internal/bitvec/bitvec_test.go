package bitvec

import "testing"

func TestNewFull(t *testing.T) {
	for _, n := range []int{0, 1, 63, 64, 65, 130} {
		v := New(n, true)
		if v.Len() != n {
			t.Fatalf("New(%d): Len = %d", n, v.Len())
		}
		if v.Count() != n {
			t.Fatalf("New(%d, true): Count = %d", n, v.Count())
		}
		if x := v.NextUnset(0); x != -1 {
			t.Fatalf("New(%d, true): NextUnset = %d, want -1", n, x)
		}
	}
}

func TestSetUnset(t *testing.T) {
	v := New(100, false)
	v.Set(3)
	v.Set(3)
	v.Set(99)
	if v.Count() != 2 {
		t.Fatalf("Count = %d, want 2", v.Count())
	}
	if !v.IsSet(3) || !v.IsSet(99) || v.IsSet(4) {
		t.Fatal("IsSet mismatch")
	}
	v.Unset(3)
	v.Unset(3)
	if v.Count() != 1 || v.IsSet(3) {
		t.Fatalf("after Unset: Count = %d, IsSet(3) = %v", v.Count(), v.IsSet(3))
	}
	if v.IsSet(-1) || v.IsSet(100) {
		t.Fatal("out of range index reported as set")
	}
}

func TestNextSet(t *testing.T) {
	v := New(200, false)
	for _, i := range []int{0, 5, 64, 127, 199} {
		v.Set(i)
	}
	var got []int
	for i := v.NextSet(0); i != -1; i = v.NextSet(i + 1) {
		got = append(got, i)
	}
	want := []int{0, 5, 64, 127, 199}
	if len(got) != len(want) {
		t.Fatalf("NextSet walk = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("NextSet walk = %v, want %v", got, want)
		}
	}
	if x := v.NextSet(200); x != -1 {
		t.Fatalf("NextSet past end = %d", x)
	}
}

func TestNextUnsetIgnoresPadding(t *testing.T) {
	v := New(70, true)
	v.Unset(2)
	v.Unset(69)
	if x := v.NextUnset(0); x != 2 {
		t.Fatalf("NextUnset(0) = %d, want 2", x)
	}
	if x := v.NextUnset(3); x != 69 {
		t.Fatalf("NextUnset(3) = %d, want 69", x)
	}
	v.Set(69)
	if x := v.NextUnset(3); x != -1 {
		t.Fatalf("NextUnset(3) = %d, want -1", x)
	}
}

func TestFillClear(t *testing.T) {
	v := New(65, false)
	v.Fill()
	if v.Count() != 65 || v.NextSet(64) != 64 {
		t.Fatalf("Fill: Count = %d", v.Count())
	}
	v.Clear()
	if v.Count() != 0 || v.NextSet(0) != -1 {
		t.Fatalf("Clear: Count = %d", v.Count())
	}
}
