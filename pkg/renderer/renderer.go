package renderer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jrm-dev/go-tile-tracer/pkg/core"
	"github.com/jrm-dev/go-tile-tracer/pkg/geometry"
	"github.com/jrm-dev/go-tile-tracer/pkg/integrator"
	"github.com/jrm-dev/go-tile-tracer/pkg/material"
)

// gamma applied to pixel colors before they leave the renderer
const gamma = 2.2

// Scene is what the renderer needs from scene construction: an
// intersectable root aggregate, the material arena backing its handles,
// and the sky colors. Everything is immutable once built and shared
// read-only across workers.
type Scene interface {
	Root() *geometry.Primitive
	Materials() *material.Arena
	Background() (top, bottom core.Vec3)
}

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Renderer drives one render: it partitions the image into tiles,
// distributes them over a worker pool through a shared atomic cursor, and
// streams completed tiles back through a bounded channel.
type Renderer struct {
	scene   Scene
	spec    ImageSpec
	config  Config
	camera  *Camera
	tracer  *integrator.PathTracer
	grid    []image.Rectangle
	streams []*core.Stream
	logger  core.Logger
}

// NewRenderer validates the config and prepares a renderer. All
// configuration errors surface here, before any rendering work begins.
func NewRenderer(scene Scene, cfg Config, logger core.Logger) (*Renderer, error) {
	spec, err := cfg.validate()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	tracer := integrator.NewPathTracer(cfg.MaxDepth)
	tracer.TopColor, tracer.BottomColor = scene.Background()

	grid := NewTileGrid(spec.Width, spec.Height, cfg.TileSize)

	seed := cfg.Seed
	if cfg.TimeSeed {
		now := uint64(time.Now().UnixNano())
		seed = [2]uint64{now, now ^ 0x9e3779b97f4a7c15}
	}

	// One decorrelated stream per tile: each jump lands the base
	// generator on a distant, non-overlapping point of its period, so
	// tile i always sees the same sequence regardless of which worker
	// claims it
	base := core.NewStream(seed[0], seed[1])
	base.Jump()
	streams := make([]*core.Stream, len(grid))
	for i := range streams {
		streams[i] = base.Clone()
		base.Jump()
	}

	return &Renderer{
		scene:   scene,
		spec:    spec,
		config:  cfg,
		camera:  NewCamera(cfg, spec),
		tracer:  tracer,
		grid:    grid,
		streams: streams,
		logger:  logger,
	}, nil
}

// ImageSpec returns the resolved output resolution
func (r *Renderer) ImageSpec() ImageSpec {
	return r.spec
}

// TileCount returns the number of tiles the image is partitioned into
func (r *Renderer) TileCount() int {
	return len(r.grid)
}

// RenderTiles spawns the worker pool and returns the channel completed
// tiles arrive on. Tiles may arrive in any order; the channel is closed
// once every tile has been delivered. Cancelling the context makes
// in-flight workers stop promptly instead of computing unconsumed tiles.
func (r *Renderer) RenderTiles(ctx context.Context) <-chan Tile {
	out := make(chan Tile, r.config.NumWorkers)

	// The cursor is the only mutable state shared between workers: each
	// fetch-and-increment claims one tile index exactly once
	var cursor atomic.Int64
	var wg sync.WaitGroup

	for w := 0; w < r.config.NumWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				idx := cursor.Add(1) - 1
				if idx >= int64(len(r.grid)) {
					return
				}
				tile := r.renderTile(r.grid[idx], r.streams[idx].Clone())
				select {
				case out <- tile:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// renderTile renders every pixel of one tile into a local buffer; no
// other goroutine sees the buffer until the tile is sent
func (r *Renderer) renderTile(bounds image.Rectangle, rng *core.Stream) Tile {
	pixels := make([]core.Vec3, bounds.Dx()*bounds.Dy())
	world := r.scene.Root()
	materials := r.scene.Materials()

	idx := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			colorVec := r.config.Sampler.SamplePixel(rng, func(dx, dy float64) core.Vec3 {
				ray := r.camera.GetRay(float64(x)+dx, float64(y)+dy, rng)
				return r.tracer.RayColor(ray, world, materials, rng)
			})
			pixels[idx] = colorVec.GammaCorrect(gamma)
			idx++
		}
	}

	return Tile{Bounds: bounds, Pixels: pixels}
}

// Render runs a full render and assembles the delivered tiles into an
// image, using each tile's own bounds for placement
func (r *Renderer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	startTime := time.Now()
	r.logger.Printf("Starting render: %d tiles across %d workers\n", len(r.grid), r.config.NumWorkers)
	img := image.NewRGBA(image.Rect(0, 0, r.spec.Width, r.spec.Height))

	stats := RenderStats{
		TotalPixels: r.spec.Width * r.spec.Height,
		Workers:     r.config.NumWorkers,
	}

	for tile := range r.RenderTiles(ctx) {
		for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
			for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
				img.SetRGBA(x, y, Vec3ToColor(tile.At(x, y)))
			}
		}
		stats.TilesRendered++
		stats.TotalSamples += tile.Bounds.Dx() * tile.Bounds.Dy() * r.config.Sampler.SamplesPerPixel()
	}

	if err := ctx.Err(); err != nil {
		return nil, RenderStats{}, err
	}

	stats.Elapsed = time.Since(startTime)
	return img, stats, nil
}

// Vec3ToColor converts an already gamma-corrected color to 8-bit RGBA
func Vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.Clamp(0, 1)
	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
