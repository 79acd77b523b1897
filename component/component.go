// Package component defines the component records the renderer reads from a
// stage.Scene. They are plain data; none owns resources.
package component

import "github.com/edwinsyarief/stage/linear"

// Transform places an entity in the world.
type Transform struct {
	Position linear.V3
	Rotation linear.V3 // Euler angles, radians
	Scale    linear.V3
}

// NewTransform returns a transform at p with unit scale.
func NewTransform(p linear.V3) Transform {
	return Transform{Position: p, Scale: linear.V3{1, 1, 1}}
}

// Mesh names the geometry drawn for an entity. Glyph is the cell the
// terminal renderer uses in place of real geometry.
type Mesh struct {
	Name  string
	Glyph string
}

// Material describes the surface of a mesh.
type Material struct {
	Albedo   Color
	Emissive bool // ignores lighting
}

// PointLight emits light from the entity's Transform position.
type PointLight struct {
	Color     Color
	Intensity float32
	Range     float32
}

// DirectionalLight lights the whole scene from one direction.
type DirectionalLight struct {
	Direction linear.V3
	Color     Color
	Intensity float32
}

// RenderCamera marks the entity whose Transform is the view origin.
type RenderCamera struct {
	Zoom float32 // world units per cell; zero means 1
}
