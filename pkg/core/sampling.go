package core

import "math"

// RandomOnUnitSphere generates a uniform random direction on the unit sphere
func RandomOnUnitSphere(rng *Stream) Vec3 {
	z := 1.0 - 2.0*rng.Float64() // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * rng.Float64()
	return Vec3{X: r * math.Cos(phi), Y: r * math.Sin(phi), Z: z}
}

// RandomInUnitDisk generates a random point in the unit disk (for depth of field)
func RandomInUnitDisk(rng *Stream) Vec3 {
	for {
		p := NewVec3(rng.Float64Range(-1, 1), rng.Float64Range(-1, 1), 0)
		if p.Dot(p) <= 1.0 {
			return p
		}
	}
}

// RandomVec3 returns a vector with components uniform in [0, 1]
func RandomVec3(rng *Stream) Vec3 {
	return Vec3{X: rng.Float64(), Y: rng.Float64(), Z: rng.Float64()}
}

// RandomVec3Range returns a vector with components uniform in [min, max]
func RandomVec3Range(rng *Stream, minVal, maxVal float64) Vec3 {
	return Vec3{
		X: rng.Float64Range(minVal, maxVal),
		Y: rng.Float64Range(minVal, maxVal),
		Z: rng.Float64Range(minVal, maxVal),
	}
}
