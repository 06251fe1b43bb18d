package main

import (
	"context"
	"image"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/jrm-dev/go-tile-tracer/pkg/core"
	"github.com/jrm-dev/go-tile-tracer/pkg/renderer"
)

// previewGame shows the render as it progresses: the background goroutine
// blits finished tiles into a shared framebuffer and the game loop copies
// it to the screen each frame
type previewGame struct {
	ctx  context.Context
	spec renderer.ImageSpec

	mu  sync.Mutex
	img *image.RGBA
}

func (g *previewGame) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	g.mu.Lock()
	defer g.mu.Unlock()
	screen.WritePixels(g.img.Pix)
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.spec.Width, g.spec.Height
}

// runWithPreview renders in the background while an ebiten window shows
// the tiles landing. The image is saved as soon as the render completes;
// the window stays open until closed or the context is cancelled.
func runWithPreview(ctx context.Context, r *renderer.Renderer, spec renderer.ImageSpec, path, format string, upload bool, logger core.Logger) error {
	game := &previewGame{
		ctx:  ctx,
		spec: spec,
		img:  image.NewRGBA(image.Rect(0, 0, spec.Width, spec.Height)),
	}

	done := make(chan error, 1)
	go func() {
		done <- func() error {
			startTime := time.Now()
			tiles := 0
			for tile := range r.RenderTiles(ctx) {
				game.mu.Lock()
				for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
					for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
						game.img.SetRGBA(x, y, renderer.Vec3ToColor(tile.At(x, y)))
					}
				}
				game.mu.Unlock()
				tiles++
			}

			if err := ctx.Err(); err != nil {
				return err
			}

			logger.Printf("Rendered %d tiles in %v\n", tiles, time.Since(startTime).Round(time.Millisecond))

			game.mu.Lock()
			snapshot := *game.img
			game.mu.Unlock()

			if err := saveImage(&snapshot, path, format); err != nil {
				return err
			}
			logger.Printf("Saved %s\n", path)

			if upload {
				url, err := uploadToS3(ctx, path)
				if err != nil {
					return err
				}
				logger.Printf("Uploaded to %s\n", url)
			}
			return nil
		}()
	}()

	ebiten.SetWindowSize(spec.Width, spec.Height)
	ebiten.SetWindowTitle("go-tile-tracer")
	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		return err
	}

	// The window may close before the render finishes; only report an error
	// the background goroutine has already produced
	select {
	case err := <-done:
		return err
	default:
		return nil
	}
}
