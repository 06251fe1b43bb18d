package core

import "math"

// AABB represents an axis-aligned bounding box as a product of three
// intervals, one per axis
type AABB struct {
	X, Y, Z Interval
}

// NewAABB creates an AABB from per-axis intervals
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}
}

// NewAABBFromPoints creates an AABB spanning two opposite corners.
// The corners may be given in any order.
func NewAABBFromPoints(a, b Vec3) AABB {
	return AABB{
		X: Interval{Start: math.Min(a.X, b.X), End: math.Max(a.X, b.X)},
		Y: Interval{Start: math.Min(a.Y, b.Y), End: math.Max(a.Y, b.Y)},
		Z: Interval{Start: math.Min(a.Z, b.Z), End: math.Max(a.Z, b.Z)},
	}
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		X: aabb.X.Union(other.X),
		Y: aabb.Y.Union(other.Y),
		Z: aabb.Z.Union(other.Z),
	}
}

// Axis returns the interval for axis n (0=X, 1=Y, 2=Z)
func (aabb AABB) Axis(n int) Interval {
	switch n {
	case 1:
		return aabb.Y
	case 2:
		return aabb.Z
	default:
		return aabb.X
	}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return Vec3{X: aabb.X.Middle(), Y: aabb.Y.Middle(), Z: aabb.Z.Middle()}
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	if aabb.X.Size() > aabb.Y.Size() && aabb.X.Size() > aabb.Z.Size() {
		return 0
	}
	if aabb.Y.Size() > aabb.Z.Size() {
		return 1
	}
	return 2
}

// IsValid returns true if start <= end on every axis.
// A degenerate (zero-volume) box is valid.
func (aabb AABB) IsValid() bool {
	return !aabb.X.IsEmpty() && !aabb.Y.IsEmpty() && !aabb.Z.IsEmpty()
}

// RayIntersect tests the ray against the box using the slab method and
// returns the parametric interval the ray spends inside it. Axis-parallel
// rays divide by zero on purpose: the resulting ±Inf slab bounds give the
// correct answer through IEEE-754 arithmetic without branching.
func (aabb AABB) RayIntersect(ray Ray) (Interval, bool) {
	rayMin := math.Inf(-1)
	rayMax := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		ax := aabb.Axis(axis)
		invDirection := 1.0 / ray.Direction.Axis(axis)
		origin := ray.Origin.Axis(axis)

		t0 := (ax.Start - origin) * invDirection
		t1 := (ax.End - origin) * invDirection

		if invDirection < 0 {
			t0, t1 = t1, t0
		}

		// Explicit comparisons rather than math.Max/Min: a 0*Inf slab bound
		// is NaN, and every comparison with NaN is false, so a degenerate
		// axis leaves the running bounds untouched instead of poisoning them
		if t0 > rayMin {
			rayMin = t0
		}
		if t1 < rayMax {
			rayMax = t1
		}

		if rayMax <= rayMin {
			return Interval{}, false
		}
	}

	return Interval{Start: rayMin, End: rayMax}, true
}

// Hit reports whether the ray passes through the box within tRange
func (aabb AABB) Hit(ray Ray, tRange Interval) bool {
	overlap, ok := aabb.RayIntersect(ray)
	if !ok {
		return false
	}
	return overlap.Start < tRange.End && overlap.End > tRange.Start
}
