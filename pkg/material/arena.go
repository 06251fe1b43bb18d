package material

import "github.com/jrm-dev/go-tile-tracer/pkg/core"

// ID is a handle into an Arena. Primitives store handles instead of
// pointers, so a material can be shared by arbitrarily many primitives while
// being owned by the arena alone.
type ID int

// Arena owns every material in a scene
type Arena struct {
	materials []Material
}

// NewArena creates an empty material arena
func NewArena() *Arena {
	return &Arena{}
}

// Add stores a material and returns its handle
func (a *Arena) Add(m Material) ID {
	a.materials = append(a.materials, m)
	return ID(len(a.materials) - 1)
}

// Get returns the material for a handle
func (a *Arena) Get(id ID) Material {
	return a.materials[id]
}

// Len returns the number of materials in the arena
func (a *Arena) Len() int {
	return len(a.materials)
}

// Scatter dispatches to the material behind the handle
func (a *Arena) Scatter(id ID, rng *core.Stream, rayIn core.Ray, hit HitRecord) (core.Vec3, core.Ray, bool) {
	return a.materials[id].Scatter(rng, rayIn, hit)
}
