package material

import (
	"math"

	"github.com/jrm-dev/go-tile-tracer/pkg/core"
)

type textureKind int

const (
	solidTexture textureKind = iota
	checkerTexture
)

// Texture provides spatially-varying colors for material albedos.
// It is a closed variant type: solid colors and checkerboards.
type Texture struct {
	kind     textureKind
	color    core.Vec3
	invScale float64
	even     *Texture
	odd      *Texture
}

// NewSolidTexture creates a texture with a uniform color
func NewSolidTexture(color core.Vec3) Texture {
	return Texture{kind: solidTexture, color: color}
}

// NewCheckerTexture creates a 3D checkerboard alternating between two
// textures with the given cell scale
func NewCheckerTexture(scale float64, even, odd Texture) Texture {
	return Texture{
		kind:     checkerTexture,
		invScale: 1.0 / scale,
		even:     &even,
		odd:      &odd,
	}
}

// Evaluate returns the texture color at surface coordinates (u, v) and
// world-space point p
func (t Texture) Evaluate(u, v float64, p core.Vec3) core.Vec3 {
	switch t.kind {
	case checkerTexture:
		x := int(math.Floor(p.X * t.invScale))
		y := int(math.Floor(p.Y * t.invScale))
		z := int(math.Floor(p.Z * t.invScale))
		if (x+y+z)%2 == 0 {
			return t.even.Evaluate(u, v, p)
		}
		return t.odd.Evaluate(u, v, p)
	default:
		return t.color
	}
}
