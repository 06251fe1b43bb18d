package server

import (
	"encoding/json"
	"fmt"
	"image"
	"log"
	"net/http"
	"time"

	"github.com/jrm-dev/go-tile-tracer/pkg/renderer"
)

// handleRender streams a render to the client: one SSE event per finished
// tile, then a final event with the assembled image. Tiles arrive in
// whatever order the workers finish them; the client places each one by
// its coordinates. Closing the connection cancels the render through the
// request context.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	req, err := s.parseRenderRequest(r)
	if err != nil {
		sendSSEError(w, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	rend, err := s.newRenderer(req)
	if err != nil {
		sendSSEError(w, err.Error())
		return
	}

	ctx := r.Context()
	spec := rend.ImageSpec()
	full := image.NewRGBA(image.Rect(0, 0, spec.Width, spec.Height))
	totalTiles := rend.TileCount()

	startTime := time.Now()
	tileNumber := 0
	for tile := range rend.RenderTiles(ctx) {
		tileNumber++

		// Blit into the full image and extract the tile as its own PNG
		tileImg := image.NewRGBA(image.Rect(0, 0, tile.Bounds.Dx(), tile.Bounds.Dy()))
		for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
			for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
				c := renderer.Vec3ToColor(tile.At(x, y))
				full.SetRGBA(x, y, c)
				tileImg.SetRGBA(x-tile.Bounds.Min.X, y-tile.Bounds.Min.Y, c)
			}
		}

		imageData, err := imageToBase64PNG(tileImg)
		if err != nil {
			log.Printf("Error encoding tile (%d, %d): %v", tile.Bounds.Min.X, tile.Bounds.Min.Y, err)
			continue
		}

		update := TileUpdate{
			X:          tile.Bounds.Min.X,
			Y:          tile.Bounds.Min.Y,
			Width:      tile.Bounds.Dx(),
			Height:     tile.Bounds.Dy(),
			ImageData:  imageData,
			TileNumber: tileNumber,
			TotalTiles: totalTiles,
		}
		data, err := json.Marshal(update)
		if err != nil {
			log.Printf("Error marshaling tile update: %v", err)
			continue
		}
		if err := sendSSEEvent(w, "tile", string(data)); err != nil {
			return
		}
	}

	if ctx.Err() != nil {
		// Client disconnected mid-render
		return
	}

	elapsed := time.Since(startTime)
	imageData, err := imageToBase64PNG(full)
	if err != nil {
		sendSSEError(w, fmt.Sprintf("Failed to encode image: %v", err))
		return
	}

	totalSamples := spec.Width * spec.Height * req.Samples
	complete := CompleteUpdate{
		ImageData:     imageData,
		TilesRendered: tileNumber,
		ElapsedMs:     elapsed.Milliseconds(),
		SamplesPerSec: float64(totalSamples) / elapsed.Seconds(),
	}
	data, err := json.Marshal(complete)
	if err != nil {
		sendSSEError(w, fmt.Sprintf("Failed to marshal completion: %v", err))
		return
	}
	sendSSEEvent(w, "complete", string(data))
}
