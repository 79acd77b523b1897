// Package render draws a stage.Scene onto a terminal screen. It reads
// Transform, Mesh, Material and light components through scene views and
// never modifies components.
package render

import (
	"log/slog"
	"math"

	"github.com/edwinsyarief/stage"
	"github.com/edwinsyarief/stage/component"
	"github.com/edwinsyarief/stage/linear"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Viewport overrides the drawable area. Store it as a scene resource; when
// absent the whole screen is used.
type Viewport struct {
	X, Y          int
	Width, Height int
	Background    component.Color
	Ambient       float32 // base light level; directional lights add to it
}

// FrameStats summarizes one Draw call.
type FrameStats struct {
	Camera stage.EntityID
	Drawn  int
	Culled int
	Lights int
}

// Renderer draws scenes onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	logger *slog.Logger
}

// NewRenderer creates a renderer for screen. A nil logger discards output.
func NewRenderer(screen tcell.Screen, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Renderer{screen: screen, logger: logger}
}

// camera is the resolved view origin for one frame.
type camera struct {
	id     stage.EntityID
	origin linear.V3
	zoom   float32
}

// pointLight is a point light resolved to world space.
type pointLight struct {
	pos   linear.V3
	light component.PointLight
}

// Draw clears the viewport and draws every entity with Transform, Mesh and
// Material, lit by the scene's directional and point lights. It does not
// call Show.
func (r *Renderer) Draw(s *stage.Scene) FrameStats {
	vp := r.viewport(s)
	cam := r.mainCamera(s)
	stats := FrameStats{Camera: cam.id}

	bg := tcell.StyleDefault.Background(hexColor(vp.Background))
	for y := vp.Y; y < vp.Y+vp.Height; y++ {
		for x := vp.X; x < vp.X+vp.Width; x++ {
			r.screen.SetContent(x, y, ' ', nil, bg)
		}
	}

	// Directional lights contribute a uniform level; there are no normals to
	// shade against in a terminal.
	var ambient component.Color
	level := vp.Ambient
	stage.NewView2[component.Transform, component.DirectionalLight](s).Each(
		func(_ *component.Transform, l *component.DirectionalLight) {
			ambient = addColor(ambient, l.Color.Scale(l.Intensity))
			level += l.Intensity
			stats.Lights++
		})

	var points []pointLight
	stage.NewView2[component.Transform, component.PointLight](s).Each(
		func(t *component.Transform, l *component.PointLight) {
			points = append(points, pointLight{pos: t.Position, light: *l})
			stats.Lights++
		})

	stage.NewView3[component.Transform, component.Mesh, component.Material](s).ForEach(
		func(_ stage.Entity, t *component.Transform, m *component.Mesh, mat *component.Material) {
			sx, sy, ok := project(t.Position, cam, vp)
			if !ok || m.Glyph == "" {
				stats.Culled++
				return
			}
			fg := mat.Albedo
			if !mat.Emissive {
				fg = shade(mat.Albedo, t.Position, ambient, level, points)
			}
			style := bg.Foreground(hexColor(fg))
			if !r.putGlyph(sx, sy, vp, m.Glyph, style) {
				stats.Culled++
				return
			}
			stats.Drawn++
		})

	r.logger.Debug("frame drawn",
		"camera", cam.id,
		"drawn", stats.Drawn,
		"culled", stats.Culled,
		"lights", stats.Lights)
	return stats
}

// viewport returns the Viewport resource of s or one covering the screen.
func (r *Renderer) viewport(s *stage.Scene) Viewport {
	if vp, ok := stage.GetResource[Viewport](s.Resources()); ok {
		return *vp
	}
	w, h := r.screen.Size()
	return Viewport{Width: w, Height: h, Ambient: 1}
}

// mainCamera resolves the scene's main camera, preferring the cached main
// entity and falling back to the first entity with Transform and
// RenderCamera. A found camera is cached on the scene.
func (r *Renderer) mainCamera(s *stage.Scene) camera {
	if main := s.MainEntity(); main.Alive() {
		t, okT := stage.TryGet[component.Transform](main)
		c, okC := stage.TryGet[component.RenderCamera](main)
		if okT && okC {
			return newCamera(main.ID, t, c)
		}
	}
	var (
		t *component.Transform
		c *component.RenderCamera
	)
	found := stage.NewView2[component.Transform, component.RenderCamera](s).FindFirst(
		func(_ stage.Entity, ft *component.Transform, fc *component.RenderCamera) bool {
			t, c = ft, fc
			return true
		})
	if !found.Valid() {
		return camera{id: stage.InvalidEntity, zoom: 1}
	}
	s.SetMainEntity(found.ID)
	r.logger.Debug("main camera resolved", "entity", found.ID)
	return newCamera(found.ID, t, c)
}

func newCamera(id stage.EntityID, t *component.Transform, c *component.RenderCamera) camera {
	zoom := c.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return camera{id: id, origin: t.Position, zoom: zoom}
}

// project maps a world position to a cell. The camera sits at the center of
// the viewport; world X grows right and world Y grows down.
func project(p linear.V3, cam camera, vp Viewport) (x, y int, ok bool) {
	rel := linear.ScaleV3(1/cam.zoom, linear.SubV3(p, cam.origin))
	x = vp.X + vp.Width/2 + int(math.Round(float64(rel[0])))
	y = vp.Y + vp.Height/2 + int(math.Round(float64(rel[1])))
	ok = x >= vp.X && x < vp.X+vp.Width && y >= vp.Y && y < vp.Y+vp.Height
	return
}

// shade lights albedo at p with the ambient color/level and every point
// light in range.
func shade(albedo component.Color, p linear.V3, ambient component.Color, level float32, points []pointLight) component.Color {
	light := ambient
	if light == 0 {
		light = 0xffffff
	}
	lit := albedo.Modulate(light).Scale(level)
	for _, pl := range points {
		if pl.light.Range <= 0 {
			continue
		}
		d := linear.DistV3(p, pl.pos)
		if d >= pl.light.Range {
			continue
		}
		f := pl.light.Intensity * (1 - d/pl.light.Range)
		lit = addColor(lit, albedo.Modulate(pl.light.Color).Scale(f))
	}
	return lit
}

func addColor(a, b component.Color) component.Color {
	ar, ag, ab := a.RGB()
	br, bg, bb := b.RGB()
	return component.RGB(sat(ar, br), sat(ag, bg), sat(ab, bb))
}

func sat(a, b uint8) uint8 {
	if s := uint16(a) + uint16(b); s < 255 {
		return uint8(s)
	}
	return 255
}

func hexColor(c component.Color) tcell.Color {
	return tcell.NewHexColor(int32(c))
}

// putGlyph draws a single glyph at (x, y), filling the second column of
// wide glyphs. It reports false if the glyph does not fit the viewport.
func (r *Renderer) putGlyph(x, y int, vp Viewport, glyph string, style tcell.Style) bool {
	runes := []rune(glyph)
	width := runewidth.StringWidth(glyph)
	if x+width > vp.X+vp.Width {
		return false
	}
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, runes[0], combc, style)
	if width == 2 {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
	return true
}
