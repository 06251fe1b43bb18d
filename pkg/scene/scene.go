// Package scene provides ready-made scene setups for the renderer.
package scene

import (
	"github.com/jrm-dev/go-tile-tracer/pkg/core"
	"github.com/jrm-dev/go-tile-tracer/pkg/geometry"
	"github.com/jrm-dev/go-tile-tracer/pkg/material"
	"github.com/jrm-dev/go-tile-tracer/pkg/renderer"
)

// Scene bundles a world aggregate with the material arena its primitives
// reference, the sky colors, and a camera setup that frames it well
type Scene struct {
	root      *geometry.Primitive
	materials *material.Arena
	topColor  core.Vec3
	botColor  core.Vec3

	// CameraConfig holds the recommended camera placement for this scene;
	// callers merge it into their render config
	CameraConfig renderer.Config
}

// Root returns the top-level intersectable aggregate
func (s *Scene) Root() *geometry.Primitive {
	return s.root
}

// Materials returns the arena backing the scene's material handles
func (s *Scene) Materials() *material.Arena {
	return s.materials
}

// Background returns the sky gradient colors, zenith first
func (s *Scene) Background() (top, bottom core.Vec3) {
	return s.topColor, s.botColor
}

func defaultSky() (core.Vec3, core.Vec3) {
	return core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1, 1, 1)
}
