package geometry

import (
	"math"

	"github.com/jrm-dev/go-tile-tracer/pkg/core"
	"github.com/jrm-dev/go-tile-tracer/pkg/material"
)

// NewSphere creates a static sphere with a precomputed bounding box
func NewSphere(center core.Vec3, radius float64, mat material.ID) Primitive {
	radiusVec := core.NewVec3(radius, radius, radius)
	return Primitive{
		kind:     KindSphere,
		center:   center,
		radius:   radius,
		material: mat,
		bounds:   core.NewAABBFromPoints(center.Subtract(radiusVec), center.Add(radiusVec)),
	}
}

// NewMovingSphere creates a sphere whose center moves linearly from center
// to destination over time ∈ [0,1]. Its bounding box is the union of the
// boxes at time 0 and time 1: a conservative superset, not a tight
// per-time box.
func NewMovingSphere(center, destination core.Vec3, radius float64, mat material.ID) Primitive {
	radiusVec := core.NewVec3(radius, radius, radius)
	startBounds := core.NewAABBFromPoints(center.Subtract(radiusVec), center.Add(radiusVec))
	endBounds := core.NewAABBFromPoints(destination.Subtract(radiusVec), destination.Add(radiusVec))
	return Primitive{
		kind:        KindMovingSphere,
		center:      center,
		destination: destination,
		radius:      radius,
		material:    mat,
		bounds:      startBounds.Union(endBounds),
	}
}

// hitSphere solves |O + tD - C|² = r² for the sphere at the given center,
// accepting the smallest root strictly inside tRange
func (p *Primitive) hitSphere(ray core.Ray, tRange core.Interval, center core.Vec3) (*material.HitRecord, bool) {
	oc := ray.Origin.Subtract(center)

	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - p.radius*p.radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer root first, then the farther one
	root := (-halfB - sqrtD) / a
	if !tRange.Surrounds(root) {
		root = (-halfB + sqrtD) / a
		if !tRange.Surrounds(root) {
			return nil, false
		}
	}

	hit := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: p.material,
	}

	outwardNormal := hit.Point.Subtract(center).Multiply(1.0 / p.radius)
	hit.U, hit.V = sphereUV(outwardNormal)
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}

// sphereUV maps a point on the unit sphere to surface coordinates
// u ∈ [0,1] around the y axis, v ∈ [0,1] from pole to pole
func sphereUV(p core.Vec3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}
