package integrator

import (
	"math"

	"github.com/jrm-dev/go-tile-tracer/pkg/core"
	"github.com/jrm-dev/go-tile-tracer/pkg/geometry"
	"github.com/jrm-dev/go-tile-tracer/pkg/material"
)

// epsilon suppresses self-intersection ("shadow acne") at the origin of a
// just-scattered ray
const epsilon = 1e-6

// PathTracer computes radiance estimates by recursively following
// scattered rays until a hard bounce limit
type PathTracer struct {
	MaxDepth    int
	TopColor    core.Vec3 // sky color straight up
	BottomColor core.Vec3 // sky color at the horizon and below
}

// NewPathTracer creates a path tracer with the default sky gradient
func NewPathTracer(maxDepth int) *PathTracer {
	return &PathTracer{
		MaxDepth:    maxDepth,
		TopColor:    core.NewVec3(0.5, 0.7, 1.0),
		BottomColor: core.NewVec3(1, 1, 1),
	}
}

// RayColor returns the radiance estimate for a single ray traced through
// the scene rooted at world
func (pt *PathTracer) RayColor(ray core.Ray, world *geometry.Primitive, materials *material.Arena, rng *core.Stream) core.Vec3 {
	return pt.rayColor(ray, world, materials, rng, 0)
}

func (pt *PathTracer) rayColor(ray core.Ray, world *geometry.Primitive, materials *material.Arena, rng *core.Stream, depth int) core.Vec3 {
	// Hard energy cutoff once the bounce limit is reached
	if depth >= pt.MaxDepth {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, core.NewInterval(epsilon, math.Inf(1)))
	if !isHit {
		return pt.skyGradient(ray)
	}

	attenuation, scattered, didScatter := materials.Scatter(hit.Material, rng, ray, *hit)
	if !didScatter {
		// Material absorbed the ray
		return core.Vec3{}
	}

	return attenuation.MultiplyVec(pt.rayColor(scattered, world, materials, rng, depth+1))
}

// skyGradient is the only light source in this model: a vertical blend
// between the bottom and top sky colors
func (pt *PathTracer) skyGradient(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	a := 0.5 * (unitDirection.Y + 1.0)
	return pt.BottomColor.Multiply(1 - a).Add(pt.TopColor.Multiply(a))
}
