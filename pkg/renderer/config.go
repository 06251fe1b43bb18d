package renderer

import (
	"fmt"
	"math"

	"github.com/jrm-dev/go-tile-tracer/pkg/core"
)

// ImageSpec is a fully-resolved output resolution
type ImageSpec struct {
	Width, Height int
	AspectRatio   float64
}

// ResolveImageSpec derives a concrete resolution from the given parameters.
// Exactly one of width and height may be derived from the other plus the
// aspect ratio; specifying all three, or too few, is a configuration error.
func ResolveImageSpec(width, height int, aspectRatio float64) (ImageSpec, error) {
	switch {
	case width > 0 && height > 0 && aspectRatio > 0:
		return ImageSpec{}, fmt.Errorf("image spec over-specified: provide width+height, width+aspect, or height+aspect")
	case width > 0 && height > 0:
		return ImageSpec{Width: width, Height: height, AspectRatio: float64(width) / float64(height)}, nil
	case width > 0 && aspectRatio > 0:
		height = max(1, int(math.Round(float64(width)/aspectRatio)))
		return ImageSpec{Width: width, Height: height, AspectRatio: aspectRatio}, nil
	case height > 0 && aspectRatio > 0:
		width = max(1, int(math.Round(float64(height)*aspectRatio)))
		return ImageSpec{Width: width, Height: height, AspectRatio: aspectRatio}, nil
	default:
		return ImageSpec{}, fmt.Errorf("image spec under-specified: need two of width, height, aspect ratio")
	}
}

// Config collects every knob for a single render. Validation happens in
// NewRenderer, before any rendering work begins.
type Config struct {
	// Image resolution: set two of the three (see ResolveImageSpec)
	Width       int
	Height      int
	AspectRatio float64

	Sampler  PixelSampler // per-pixel sampling strategy (required)
	MaxDepth int          // maximum ray bounce depth (required)

	// Camera placement; zero values fall back to the defaults in NewCamera
	FieldOfView   float64 // vertical field of view in degrees
	LookFrom      core.Vec3
	LookAt        core.Vec3
	Up            core.Vec3
	DefocusAngle  float64 // ≤ 0 disables depth-of-field sampling
	FocusDistance float64 // 0 means distance from LookFrom to LookAt

	TileSize   int // edge length of scheduler tiles (default 32)
	NumWorkers int // 0 = one per logical CPU

	// Seed words for the base random stream. TimeSeed replaces them with
	// wall-clock entropy, trading reproducibility for variety.
	Seed     [2]uint64
	TimeSeed bool
}

// DefaultConfig returns the renderer defaults shared by the built-in scenes
func DefaultConfig() Config {
	return Config{
		Width:       800,
		AspectRatio: 16.0 / 9.0,
		MaxDepth:    50,
		TileSize:    32,
		Seed:        [2]uint64{123, 128},
	}
}

// validate resolves the image spec and rejects incomplete configuration
func (c *Config) validate() (ImageSpec, error) {
	spec, err := ResolveImageSpec(c.Width, c.Height, c.AspectRatio)
	if err != nil {
		return ImageSpec{}, err
	}
	if c.Sampler.samples == 0 {
		return ImageSpec{}, fmt.Errorf("config: pixel sampler must be set")
	}
	if c.MaxDepth <= 0 {
		return ImageSpec{}, fmt.Errorf("config: max ray depth must be positive, got %d", c.MaxDepth)
	}
	if c.TileSize <= 0 {
		c.TileSize = 32
	}
	if c.NumWorkers <= 0 {
		c.NumWorkers = DefaultWorkerCount()
	}
	return spec, nil
}
