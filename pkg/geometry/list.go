package geometry

import "github.com/jrm-dev/go-tile-tracer/pkg/core"

// NewList creates a flat, unordered collection of primitives. The list's
// bounding box is the union of its members'. Intersection is a linear scan
// that keeps the closest hit.
func NewList(prims []Primitive) Primitive {
	var bounds core.AABB
	if len(prims) > 0 {
		bounds = prims[0].bounds
		for i := 1; i < len(prims); i++ {
			bounds = bounds.Union(prims[i].bounds)
		}
	}
	return Primitive{
		kind:     KindList,
		children: prims,
		bounds:   bounds,
	}
}

// Children returns the list's members (nil for non-list primitives)
func (p *Primitive) Children() []Primitive {
	return p.children
}
