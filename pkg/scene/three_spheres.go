package scene

import (
	"github.com/jrm-dev/go-tile-tracer/pkg/core"
	"github.com/jrm-dev/go-tile-tracer/pkg/geometry"
	"github.com/jrm-dev/go-tile-tracer/pkg/material"
	"github.com/jrm-dev/go-tile-tracer/pkg/renderer"
)

// NewThreeSpheres builds a small deterministic test scene: a diffuse
// sphere flanked by a glass sphere and a fuzzy metal sphere over a diffuse
// ground. Useful for quick renders and convergence checks.
func NewThreeSpheres() *Scene {
	arena := material.NewArena()

	ground := arena.Add(material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0)))
	center := arena.Add(material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5)))
	left := arena.Add(material.NewDielectric(1.5))
	right := arena.Add(material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3))

	objects := []geometry.Primitive{
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, center),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, left),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, right),
	}

	top, bottom := defaultSky()

	cfg := renderer.DefaultConfig()
	cfg.FieldOfView = 90
	cfg.LookFrom = core.NewVec3(0, 0, 0)
	cfg.LookAt = core.NewVec3(0, 0, -1)

	root := geometry.NewBVH(objects)
	return &Scene{
		root:         &root,
		materials:    arena,
		topColor:     top,
		botColor:     bottom,
		CameraConfig: cfg,
	}
}
