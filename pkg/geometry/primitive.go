package geometry

import (
	"github.com/jrm-dev/go-tile-tracer/pkg/core"
	"github.com/jrm-dev/go-tile-tracer/pkg/material"
)

// Kind identifies one of the closed set of primitive variants
type Kind int

const (
	KindSphere Kind = iota
	KindMovingSphere
	KindList
	KindBVHNode
)

// Primitive is any scene entity a ray can intersect. It is a closed tagged
// variant: a static sphere, a linearly-moving sphere, a flat list, or a BVH
// node. Primitives are read-only after construction and safe to share
// across worker goroutines.
type Primitive struct {
	kind   Kind
	bounds core.AABB

	// sphere and moving sphere
	center      core.Vec3
	destination core.Vec3
	radius      float64
	material    material.ID

	// list
	children []Primitive

	// BVH node
	left, right *Primitive
}

// Kind returns the primitive's variant tag
func (p *Primitive) Kind() Kind {
	return p.kind
}

// BoundingBox returns the primitive's precomputed bounding box
func (p *Primitive) BoundingBox() core.AABB {
	return p.bounds
}

// Hit attempts intersection against a ray restricted to the open interval
// tRange, returning the closest hit inside it
func (p *Primitive) Hit(ray core.Ray, tRange core.Interval) (*material.HitRecord, bool) {
	switch p.kind {
	case KindSphere:
		return p.hitSphere(ray, tRange, p.center)
	case KindMovingSphere:
		return p.hitSphere(ray, tRange, p.center.Lerp(p.destination, ray.Time))
	case KindList:
		return p.hitList(ray, tRange)
	case KindBVHNode:
		return p.hitNode(ray, tRange)
	}
	return nil, false
}

func (p *Primitive) hitList(ray core.Ray, tRange core.Interval) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tRange.End

	for i := range p.children {
		if hit, isHit := p.children[i].Hit(ray, core.NewInterval(tRange.Start, closestSoFar)); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

func (p *Primitive) hitNode(ray core.Ray, tRange core.Interval) (*material.HitRecord, bool) {
	// Pure pruning step: a ray that misses the node box misses both children
	if _, ok := p.bounds.RayIntersect(ray); !ok {
		return nil, false
	}

	leftHit, leftOk := p.left.Hit(ray, tRange)
	if !leftOk {
		return p.right.Hit(ray, tRange)
	}

	// Re-query the right subtree restricted to t < leftHit.T so only a
	// strictly closer right-side hit can override the left one
	if rightHit, rightOk := p.right.Hit(ray, core.NewInterval(tRange.Start, leftHit.T)); rightOk {
		return rightHit, true
	}
	return leftHit, true
}
