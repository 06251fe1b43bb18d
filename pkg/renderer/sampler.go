package renderer

import (
	"fmt"
	"math"

	"github.com/jrm-dev/go-tile-tracer/pkg/core"
)

type samplerKind int

const (
	stratifiedSampler samplerKind = iota
	randomSampler
)

// PixelSampler chooses sub-pixel jitter offsets for primary rays. The
// stratified variant places one sample in each cell of a √n×√n grid
// centered on the pixel; the random variant jitters every sample
// uniformly. Both converge to the same estimate for large sample counts.
type PixelSampler struct {
	kind        samplerKind
	samples     int
	sqrtSamples int
}

// NewStratifiedSampler creates a stratified-grid sampler. The sample count
// must be a perfect square.
func NewStratifiedSampler(samplesPerPixel int) (PixelSampler, error) {
	if samplesPerPixel <= 0 {
		return PixelSampler{}, fmt.Errorf("sampler: samples per pixel must be positive, got %d", samplesPerPixel)
	}
	sqrtSamples := int(math.Sqrt(float64(samplesPerPixel)))
	if sqrtSamples*sqrtSamples != samplesPerPixel {
		return PixelSampler{}, fmt.Errorf("sampler: stratified sample count must be a perfect square, got %d", samplesPerPixel)
	}
	return PixelSampler{kind: stratifiedSampler, samples: samplesPerPixel, sqrtSamples: sqrtSamples}, nil
}

// NewRandomSampler creates a uniform-random sampler with an arbitrary
// sample count
func NewRandomSampler(samplesPerPixel int) (PixelSampler, error) {
	if samplesPerPixel <= 0 {
		return PixelSampler{}, fmt.Errorf("sampler: samples per pixel must be positive, got %d", samplesPerPixel)
	}
	return PixelSampler{kind: randomSampler, samples: samplesPerPixel}, nil
}

// SamplesPerPixel returns the number of samples the sampler takes
func (s PixelSampler) SamplesPerPixel() int {
	return s.samples
}

// SamplePixel averages sample(dx, dy) over the sampler's jitter offsets,
// where (dx, dy) ∈ [-0.5, 0.5]² is relative to the pixel center
func (s PixelSampler) SamplePixel(rng *core.Stream, sample func(dx, dy float64) core.Vec3) core.Vec3 {
	var accum core.Vec3

	switch s.kind {
	case stratifiedSampler:
		interval := 1.0 / float64(s.sqrtSamples)
		for yi := 0; yi < s.sqrtSamples; yi++ {
			for xi := 0; xi < s.sqrtSamples; xi++ {
				// Cell midpoints, centered on the pixel
				dx := (float64(xi)+0.5)*interval - 0.5
				dy := (float64(yi)+0.5)*interval - 0.5
				accum = accum.Add(sample(dx, dy))
			}
		}
	case randomSampler:
		for n := 0; n < s.samples; n++ {
			dx := rng.Float64Range(-0.5, 0.5)
			dy := rng.Float64Range(-0.5, 0.5)
			accum = accum.Add(sample(dx, dy))
		}
	}

	return accum.Multiply(1.0 / float64(s.samples))
}
