package renderer

import (
	"math"
	"testing"

	"github.com/jrm-dev/go-tile-tracer/pkg/core"
)

func TestCameraCenterRay(t *testing.T) {
	cfg := Config{
		FieldOfView: 90,
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
	}
	spec := ImageSpec{Width: 200, Height: 100, AspectRatio: 2}
	cam := NewCamera(cfg, spec)
	rng := core.NewStream(1, 2)

	// The ray through the exact image center points straight at the look-at
	// target. Pixel centers sit at +0.5, so the image center in pixel
	// coordinates is (w/2 - 0.5, h/2 - 0.5).
	ray := cam.GetRay(float64(spec.Width)/2-0.5, float64(spec.Height)/2-0.5, rng)

	if ray.Origin != cfg.LookFrom {
		t.Errorf("Origin = %v, want %v", ray.Origin, cfg.LookFrom)
	}
	dir := ray.Direction.Normalize()
	want := core.NewVec3(0, 0, -1)
	if dir.Subtract(want).Length() > 1e-9 {
		t.Errorf("center ray direction = %v, want %v", dir, want)
	}
}

func TestCameraCornerRaysSpanFieldOfView(t *testing.T) {
	cfg := Config{
		FieldOfView: 90,
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
	}
	spec := ImageSpec{Width: 100, Height: 100, AspectRatio: 1}
	cam := NewCamera(cfg, spec)
	rng := core.NewStream(1, 2)

	// 90° vertical fov with focus distance 1: the viewport spans y ∈ [-1, 1]
	// at z = -1. The top edge of the top pixel row sits at y = +1.
	top := cam.GetRay(float64(spec.Width)/2-0.5, -0.5, rng)
	dir := top.Direction.Multiply(1 / -top.Direction.Z)
	if math.Abs(dir.Y-1) > 1e-9 {
		t.Errorf("top edge y/|z| = %v, want 1", dir.Y)
	}

	bottom := cam.GetRay(float64(spec.Width)/2-0.5, float64(spec.Height)-0.5, rng)
	dir = bottom.Direction.Multiply(1 / -bottom.Direction.Z)
	if math.Abs(dir.Y+1) > 1e-9 {
		t.Errorf("bottom edge y/|z| = %v, want -1", dir.Y)
	}
}

func TestCameraDefaults(t *testing.T) {
	// LookFrom == LookAt falls back to looking down -z
	cam := NewCamera(Config{}, ImageSpec{Width: 10, Height: 10, AspectRatio: 1})
	rng := core.NewStream(1, 2)

	ray := cam.GetRay(4.5, 4.5, rng)
	dir := ray.Direction.Normalize()
	if dir.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-9 {
		t.Errorf("default center ray = %v, want -z", dir)
	}
}

func TestCameraRayTime(t *testing.T) {
	cam := NewCamera(Config{}, ImageSpec{Width: 10, Height: 10, AspectRatio: 1})
	rng := core.NewStream(1, 2)

	for i := 0; i < 100; i++ {
		ray := cam.GetRay(5, 5, rng)
		if ray.Time < 0 || ray.Time > 1 {
			t.Fatalf("ray time %v outside [0, 1]", ray.Time)
		}
	}
}

func TestCameraNoDefocusFixedOrigin(t *testing.T) {
	cfg := Config{LookFrom: core.NewVec3(1, 2, 3), LookAt: core.NewVec3(0, 0, 0)}
	cam := NewCamera(cfg, ImageSpec{Width: 10, Height: 10, AspectRatio: 1})
	rng := core.NewStream(1, 2)

	for i := 0; i < 50; i++ {
		if ray := cam.GetRay(3, 7, rng); ray.Origin != cfg.LookFrom {
			t.Fatal("with defocus disabled every ray starts at the camera center")
		}
	}
}

func TestCameraDefocusSpreadsOrigins(t *testing.T) {
	cfg := Config{
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		DefocusAngle:  2,
		FocusDistance: 5,
	}
	cam := NewCamera(cfg, ImageSpec{Width: 10, Height: 10, AspectRatio: 1})
	rng := core.NewStream(1, 2)

	distinct := map[core.Vec3]bool{}
	for i := 0; i < 50; i++ {
		distinct[cam.GetRay(5, 5, rng).Origin] = true
	}
	if len(distinct) < 2 {
		t.Error("defocus sampling should vary the ray origin")
	}
}
