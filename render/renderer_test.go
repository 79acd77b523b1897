package render

import (
	"testing"

	"github.com/edwinsyarief/stage"
	"github.com/edwinsyarief/stage/component"
	"github.com/edwinsyarief/stage/linear"
	"github.com/gdamore/tcell/v2"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	ss.SetSize(w, h)
	t.Cleanup(ss.Fini)
	return ss
}

func spawn(t *testing.T, s *stage.Scene, pos linear.V3, glyph string, albedo component.Color) stage.Entity {
	t.Helper()
	e, err := stage.NewEntity(s)
	if err != nil {
		t.Fatalf("NewEntity: %v", err)
	}
	stage.Add(e, component.NewTransform(pos))
	stage.Add(e, component.Mesh{Name: glyph, Glyph: glyph})
	stage.Add(e, component.Material{Albedo: albedo, Emissive: true})
	return e
}

func runeAt(ss tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := ss.GetContent(x, y)
	return r
}

func TestDrawProjectsAroundCamera(t *testing.T) {
	ss := newTestScreen(t, 20, 10)
	s := stage.NewScene(16)

	cam, _ := stage.NewEntity(s)
	stage.Add(cam, component.NewTransform(linear.V3{5, 5, 0}))
	stage.Add(cam, component.RenderCamera{})

	spawn(t, s, linear.V3{5, 5, 0}, "@", 0xffffff)
	spawn(t, s, linear.V3{7, 4, 0}, "g", 0x00ff00)
	spawn(t, s, linear.V3{100, 5, 0}, "x", 0xff0000)

	stats := NewRenderer(ss, nil).Draw(s)

	if stats.Camera != cam.ID {
		t.Fatalf("camera = %d, want %d", stats.Camera, cam.ID)
	}
	if s.MainEntity().ID != cam.ID {
		t.Fatal("camera not cached as main entity")
	}
	if stats.Drawn != 2 || stats.Culled != 1 {
		t.Fatalf("stats = %+v, want 2 drawn, 1 culled", stats)
	}
	if got := runeAt(ss, 10, 5); got != '@' {
		t.Errorf("center cell = %q, want '@'", got)
	}
	if got := runeAt(ss, 12, 4); got != 'g' {
		t.Errorf("cell (12,4) = %q, want 'g'", got)
	}
}

func TestDrawWithoutCamera(t *testing.T) {
	ss := newTestScreen(t, 10, 10)
	s := stage.NewScene(4)
	spawn(t, s, linear.V3{0, 0, 0}, "o", 0xffffff)

	stats := NewRenderer(ss, nil).Draw(s)
	if stats.Camera != stage.InvalidEntity {
		t.Fatalf("camera = %d, want none", stats.Camera)
	}
	if got := runeAt(ss, 5, 5); got != 'o' {
		t.Errorf("origin cell = %q, want 'o'", got)
	}
}

func TestDrawSkipsIncompleteEntities(t *testing.T) {
	ss := newTestScreen(t, 10, 10)
	s := stage.NewScene(4)
	e, _ := stage.NewEntity(s)
	stage.Add(e, component.NewTransform(linear.V3{}))
	stage.Add(e, component.Mesh{Glyph: "m"})

	stats := NewRenderer(ss, nil).Draw(s)
	if stats.Drawn != 0 || stats.Culled != 0 {
		t.Fatalf("entity without Material was considered: %+v", stats)
	}
	if got := runeAt(ss, 5, 5); got != ' ' {
		t.Errorf("cell = %q, want blank", got)
	}
}

func TestDrawUsesViewportResource(t *testing.T) {
	ss := newTestScreen(t, 20, 10)
	s := stage.NewScene(4)
	stage.AddResource(s.Resources(), &Viewport{X: 2, Y: 1, Width: 4, Height: 4, Ambient: 1})
	spawn(t, s, linear.V3{0, 0, 0}, "a", 0xffffff)
	spawn(t, s, linear.V3{3, 0, 0}, "b", 0xffffff)

	stats := NewRenderer(ss, nil).Draw(s)
	if stats.Drawn != 1 || stats.Culled != 1 {
		t.Fatalf("stats = %+v, want 1 drawn, 1 culled", stats)
	}
	if got := runeAt(ss, 4, 3); got != 'a' {
		t.Errorf("cell (4,3) = %q, want 'a'", got)
	}
}

func TestDrawWideGlyph(t *testing.T) {
	ss := newTestScreen(t, 10, 4)
	s := stage.NewScene(4)
	spawn(t, s, linear.V3{0, 0, 0}, "🐉", 0xffffff)
	if stats := NewRenderer(ss, nil).Draw(s); stats.Drawn != 1 {
		t.Fatalf("stats = %+v", stats)
	}
	if got := runeAt(ss, 5, 2); got != '🐉' {
		t.Errorf("cell = %q, want dragon", got)
	}
}

func TestLightsCounted(t *testing.T) {
	ss := newTestScreen(t, 10, 10)
	s := stage.NewScene(8)
	sun, _ := stage.NewEntity(s)
	stage.Add(sun, component.NewTransform(linear.V3{}))
	stage.Add(sun, component.DirectionalLight{Direction: linear.V3{0, 0, -1}, Color: 0xffffff, Intensity: 0.5})
	lamp, _ := stage.NewEntity(s)
	stage.Add(lamp, component.NewTransform(linear.V3{1, 0, 0}))
	stage.Add(lamp, component.PointLight{Color: 0xff0000, Intensity: 1, Range: 3})

	e := spawn(t, s, linear.V3{}, "s", 0x808080)
	stage.Get[component.Material](e).Emissive = false

	if stats := NewRenderer(ss, nil).Draw(s); stats.Lights != 2 || stats.Drawn != 1 {
		t.Fatalf("stats = %+v, want 2 lights, 1 drawn", stats)
	}
}

func TestShade(t *testing.T) {
	gray := component.Color(0x808080)
	if got := shade(gray, linear.V3{}, 0, 1, nil); got != gray {
		t.Errorf("unlit full level = %#x, want %#x", uint32(got), uint32(gray))
	}
	if got := shade(gray, linear.V3{}, 0, 0, nil); got != 0 {
		t.Errorf("zero level = %#x, want black", uint32(got))
	}
	red := []pointLight{{pos: linear.V3{}, light: component.PointLight{Color: 0xff0000, Intensity: 1, Range: 2}}}
	got := shade(gray, linear.V3{}, 0, 0, red)
	if r, g, b := got.RGB(); r == 0 || g != 0 || b != 0 {
		t.Errorf("red point light = %#x", uint32(got))
	}
	if got := shade(gray, linear.V3{5, 0, 0}, 0, 0, red); got != 0 {
		t.Errorf("out of range light contributed %#x", uint32(got))
	}
}
