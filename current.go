package stage

import "github.com/rotisserie/eris"

// Current holds the scene that ambient code (systems that do not receive a
// scene explicitly) operates on. It is an ordinary value owned by the
// caller, so tests and programs may keep several at once. The held scene
// must outlive any use made through the holder.
type Current struct {
	scene *Scene
}

// NewCurrent returns a holder for s, which may be nil.
func NewCurrent(s *Scene) *Current {
	return &Current{scene: s}
}

// Set replaces the held scene and returns the previous one.
func (c *Current) Set(s *Scene) *Scene {
	prev := c.scene
	c.scene = s
	return prev
}

// Get returns the held scene, or nil.
func (c *Current) Get() *Scene {
	return c.scene
}

// MustGet returns the held scene and panics if there is none.
func (c *Current) MustGet() *Scene {
	if c.scene == nil {
		panic("stage: no current scene")
	}
	return c.scene
}

// NewEntity allocates an entity in the held scene.
func (c *Current) NewEntity() (Entity, error) {
	if c.scene == nil {
		return Entity{ID: InvalidEntity}, eris.Wrap(ErrNoCurrentScene, "new entity")
	}
	return NewEntity(c.scene)
}

// View returns an unconstrained view over the held scene. It panics if there
// is none.
func (c *Current) View() *View {
	return NewView(c.MustGet())
}
