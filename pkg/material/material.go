package material

import (
	"math"

	"github.com/jrm-dev/go-tile-tracer/pkg/core"
)

// Kind identifies one of the closed set of material variants
type Kind int

const (
	Lambertian Kind = iota
	Metal
	Dielectric
)

// Material describes how a surface scatters light. It is a closed tagged
// variant: Lambertian (diffuse, textured albedo), Metal (fuzzy reflection),
// or Dielectric (glass-like refraction). Materials are stateless aside from
// their parameters and are shared freely across primitives.
type Material struct {
	kind            Kind
	albedo          Texture   // Lambertian
	color           core.Vec3 // Metal
	fuzz            float64   // Metal: 0 = perfect mirror
	refractiveIndex float64   // Dielectric
}

// NewLambertian creates a diffuse material with a solid albedo
func NewLambertian(albedo core.Vec3) Material {
	return Material{kind: Lambertian, albedo: NewSolidTexture(albedo)}
}

// NewTexturedLambertian creates a diffuse material with a textured albedo
func NewTexturedLambertian(albedo Texture) Material {
	return Material{kind: Lambertian, albedo: albedo}
}

// NewMetal creates a reflective material. Fuzz is clamped to [0, 1].
func NewMetal(color core.Vec3, fuzz float64) Material {
	return Material{kind: Metal, color: color, fuzz: max(0, min(1, fuzz))}
}

// NewDielectric creates a refractive material with the given index of
// refraction (e.g. 1.5 for glass)
func NewDielectric(refractiveIndex float64) Material {
	return Material{kind: Dielectric, refractiveIndex: refractiveIndex}
}

// Kind returns the material's variant tag
func (m Material) Kind() Kind {
	return m.kind
}

// Scatter consumes a hit record and produces an attenuation color and a
// scattered ray, or reports that the incoming ray was absorbed.
func (m Material) Scatter(rng *core.Stream, rayIn core.Ray, hit HitRecord) (core.Vec3, core.Ray, bool) {
	switch m.kind {
	case Metal:
		return m.scatterMetal(rng, rayIn, hit)
	case Dielectric:
		return m.scatterDielectric(rng, rayIn, hit)
	default:
		return m.scatterLambertian(rng, rayIn, hit)
	}
}

func (m Material) scatterLambertian(rng *core.Stream, rayIn core.Ray, hit HitRecord) (core.Vec3, core.Ray, bool) {
	scatterDirection := hit.Normal.Add(core.RandomOnUnitSphere(rng))

	// The random direction can cancel the normal almost exactly, which
	// would produce a degenerate scatter ray
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	attenuation := m.albedo.Evaluate(hit.U, hit.V, hit.Point)
	scattered := core.NewRay(hit.Point, scatterDirection, rayIn.Time)
	return attenuation, scattered, true
}

func (m Material) scatterMetal(rng *core.Stream, rayIn core.Ray, hit HitRecord) (core.Vec3, core.Ray, bool) {
	reflected := reflect(rayIn.Direction.Normalize(), hit.Normal)
	if m.fuzz > 0 {
		reflected = reflected.Add(core.RandomOnUnitSphere(rng).Multiply(m.fuzz))
	}

	scattered := core.NewRay(hit.Point, reflected, rayIn.Time)

	// Fuzzing can push the reflection below the surface; absorb it there
	if scattered.Direction.Dot(hit.Normal) <= 0 {
		return core.Vec3{}, core.Ray{}, false
	}
	return m.color, scattered, true
}

func (m Material) scatterDielectric(rng *core.Stream, rayIn core.Ray, hit HitRecord) (core.Vec3, core.Ray, bool) {
	// Clear glass absorbs nothing
	attenuation := core.NewVec3(1, 1, 1)

	var refractionRatio float64
	if hit.FrontFace {
		refractionRatio = 1.0 / m.refractiveIndex // entering the material
	} else {
		refractionRatio = m.refractiveIndex // exiting the material
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > rng.Float64() {
		direction = reflect(unitDirection, hit.Normal)
	} else {
		direction = refract(unitDirection, hit.Normal, refractionRatio)
	}

	scattered := core.NewRay(hit.Point, direction, rayIn.Time)
	return attenuation, scattered, true
}

// reflect calculates the reflection of v off a surface with normal n
func reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// refract calculates the refraction of uv through a surface with normal n
// using Snell's law decomposed into perpendicular and parallel components
func refract(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(uv.Negate().Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
