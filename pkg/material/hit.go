package material

import "github.com/jrm-dev/go-tile-tracer/pkg/core"

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal, oriented against the incoming ray
	T         float64   // Parameter t along the ray
	U, V      float64   // Surface parameterization for texture lookup
	FrontFace bool      // Whether the ray hit the front face
	Material  ID        // Handle of the hit object's material
}

// SetFaceNormal sets the normal vector and determines front/back face.
// The stored normal always points toward the incoming ray's origin side.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
