package renderer

import (
	"math"

	"github.com/jrm-dev/go-tile-tracer/pkg/core"
)

// Camera generates primary rays for pixel coordinates
type Camera struct {
	center      core.Vec3
	pixel00Loc  core.Vec3
	pixelDeltaU core.Vec3
	pixelDeltaV core.Vec3

	defocusAngle float64
	defocusDiskU core.Vec3
	defocusDiskV core.Vec3
}

// NewCamera derives the viewport geometry from the config and resolved
// image spec. Zero-valued placement fields get the conventional defaults:
// 90° field of view, origin looking down -z, +y up, focus at the look-at
// point.
func NewCamera(cfg Config, spec ImageSpec) *Camera {
	fieldOfView := cfg.FieldOfView
	if fieldOfView == 0 {
		fieldOfView = 90
	}
	lookFrom := cfg.LookFrom
	lookAt := cfg.LookAt
	if lookFrom == lookAt {
		lookAt = lookFrom.Add(core.NewVec3(0, 0, -1))
	}
	up := cfg.Up
	if up == (core.Vec3{}) {
		up = core.NewVec3(0, 1, 0)
	}
	focusDistance := cfg.FocusDistance
	if focusDistance == 0 {
		focusDistance = lookAt.Subtract(lookFrom).Length()
	}

	center := lookFrom

	theta := fieldOfView * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * focusDistance
	viewportWidth := viewportHeight * float64(spec.Width) / float64(spec.Height)

	w := lookFrom.Subtract(lookAt).Normalize()
	u := up.Cross(w).Normalize()
	v := w.Cross(u)

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Multiply(1.0 / float64(spec.Width))
	pixelDeltaV := viewportV.Multiply(1.0 / float64(spec.Height))

	viewportUpperLeft := center.
		Subtract(w.Multiply(focusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00Loc := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := focusDistance * math.Tan(cfg.DefocusAngle/2*math.Pi/180)

	return &Camera{
		center:       center,
		pixel00Loc:   pixel00Loc,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		defocusAngle: cfg.DefocusAngle,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
	}
}

// GetRay generates the primary ray through fractional pixel coordinates
// (x, y). The ray origin sits on the defocus disk when depth of field is
// enabled, and the cast time is drawn from the stream for motion blur.
func (c *Camera) GetRay(x, y float64, rng *core.Stream) core.Ray {
	pixelCenter := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(x)).
		Add(c.pixelDeltaV.Multiply(y))

	origin := c.center
	if c.defocusAngle > 0 {
		origin = c.defocusDiskSample(rng)
	}

	return core.NewRay(origin, pixelCenter.Subtract(origin), rng.Float64())
}

func (c *Camera) defocusDiskSample(rng *core.Stream) core.Vec3 {
	p := core.RandomInUnitDisk(rng)
	return c.center.
		Add(c.defocusDiskU.Multiply(p.X)).
		Add(c.defocusDiskV.Multiply(p.Y))
}
