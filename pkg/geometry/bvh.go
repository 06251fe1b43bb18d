package geometry

import (
	"math"
	"sort"
)

// NewBVH builds a bounding volume hierarchy over the given primitives and
// returns its root. The slice is consumed destructively: elements are
// reordered in place and moved into the tree, each ending up in exactly one
// leaf. An internal node's bounding box is always the exact union of its
// two children's boxes.
func NewBVH(prims []Primitive) Primitive {
	if len(prims) == 0 {
		return NewList(nil)
	}
	return buildBVH(prims)
}

func buildBVH(prims []Primitive) Primitive {
	switch len(prims) {
	case 1:
		return prims[0]
	case 2:
		// Order the pair so the child with the lesser box center comes
		// first; traversal then tends to find the closer hit early
		axis := spreadAxis(prims)
		left, right := prims[0], prims[1]
		if right.bounds.Axis(axis).Middle() < left.bounds.Axis(axis).Middle() {
			left, right = right, left
		}
		return newBVHNode(left, right)
	}

	axis := spreadAxis(prims)
	sort.Slice(prims, func(i, j int) bool {
		return prims[i].bounds.Axis(axis).Middle() < prims[j].bounds.Axis(axis).Middle()
	})

	// Partition where the sorted centers cross the slice mean, clamped at
	// least one element from each boundary to guarantee progress
	mean := 0.0
	for i := range prims {
		mean += prims[i].bounds.Axis(axis).Middle()
	}
	mean /= float64(len(prims))

	split := len(prims) / 2
	for i := range prims {
		if prims[i].bounds.Axis(axis).Middle() >= mean {
			split = i
			break
		}
	}
	split = max(1, min(split, len(prims)-1))

	left := buildBVH(prims[:split])
	right := buildBVH(prims[split:])
	return newBVHNode(left, right)
}

func newBVHNode(left, right Primitive) Primitive {
	l, r := left, right
	return Primitive{
		kind:   KindBVHNode,
		left:   &l,
		right:  &r,
		bounds: l.bounds.Union(r.bounds),
	}
}

// spreadAxis picks the axis with the greatest spread of bounding box
// centers among the primitives
func spreadAxis(prims []Primitive) int {
	bestAxis := 0
	bestSpread := math.Inf(-1)
	for axis := 0; axis < 3; axis++ {
		lo, hi := math.Inf(1), math.Inf(-1)
		for i := range prims {
			mid := prims[i].bounds.Axis(axis).Middle()
			lo = math.Min(lo, mid)
			hi = math.Max(hi, mid)
		}
		if hi-lo > bestSpread {
			bestAxis = axis
			bestSpread = hi - lo
		}
	}
	return bestAxis
}

// Left and Right return a BVH node's children (nil for other variants)
func (p *Primitive) Left() *Primitive  { return p.left }
func (p *Primitive) Right() *Primitive { return p.right }
