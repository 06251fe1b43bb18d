package scene

import (
	"github.com/jrm-dev/go-tile-tracer/pkg/core"
	"github.com/jrm-dev/go-tile-tracer/pkg/geometry"
	"github.com/jrm-dev/go-tile-tracer/pkg/material"
	"github.com/jrm-dev/go-tile-tracer/pkg/renderer"
)

// NewBouncingSpheres builds the classic random-spheres field: a checkered
// ground plane, a grid of small spheres with randomized materials (the
// diffuse ones bouncing upward over the shutter interval), and three large
// feature spheres. The seed fixes the layout, so the same seed always
// produces the same scene.
func NewBouncingSpheres(seed [2]uint64) *Scene {
	rng := core.NewStream(seed[0], seed[1])
	arena := material.NewArena()
	var objects []geometry.Primitive

	ground := arena.Add(material.NewTexturedLambertian(material.NewCheckerTexture(
		0.32,
		material.NewSolidTexture(core.NewVec3(0.2, 0.3, 0.1)),
		material.NewSolidTexture(core.NewVec3(0.9, 0.9, 0.9)),
	)))
	objects = append(objects, geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := rng.Float64()
			center := core.NewVec3(
				float64(a)+0.9*rng.Float64(),
				0.2,
				float64(b)+0.9*rng.Float64(),
			)

			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := core.RandomVec3(rng).MultiplyVec(core.RandomVec3(rng))
				mat := arena.Add(material.NewLambertian(albedo))
				destination := center.Add(core.NewVec3(0, rng.Float64Range(0, 0.5), 0))
				objects = append(objects, geometry.NewMovingSphere(center, destination, 0.2, mat))
			case chooseMat < 0.95:
				albedo := core.RandomVec3Range(rng, 0.5, 1)
				fuzz := rng.Float64Range(0, 0.5)
				mat := arena.Add(material.NewMetal(albedo, fuzz))
				objects = append(objects, geometry.NewSphere(center, 0.2, mat))
			default:
				mat := arena.Add(material.NewDielectric(1.5))
				objects = append(objects, geometry.NewSphere(center, 0.2, mat))
			}
		}
	}

	glass := arena.Add(material.NewDielectric(1.5))
	objects = append(objects, geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass))

	diffuse := arena.Add(material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1)))
	objects = append(objects, geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, diffuse))

	metal := arena.Add(material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0))
	objects = append(objects, geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, metal))

	top, bottom := defaultSky()

	cfg := renderer.DefaultConfig()
	cfg.FieldOfView = 20
	cfg.LookFrom = core.NewVec3(13, 2, 3)
	cfg.LookAt = core.NewVec3(0, 0, 0)
	cfg.Up = core.NewVec3(0, 1, 0)
	cfg.DefocusAngle = 0.6
	cfg.FocusDistance = 10.0

	root := geometry.NewBVH(objects)
	return &Scene{
		root:         &root,
		materials:    arena,
		topColor:     top,
		botColor:     bottom,
		CameraConfig: cfg,
	}
}
