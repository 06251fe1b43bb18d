package server

import (
	"fmt"
	"image/png"
	"net/http"

	"github.com/nfnt/resize"
)

// Thumbnails render at low resolution and low sample count, then get
// downscaled so the remaining noise reads as grain rather than speckle
const (
	thumbRenderWidth = 240
	thumbWidth       = 160
	thumbSamples     = 9
	thumbDepth       = 10
)

// handleThumbnail renders a small preview of a scene and returns it as a
// PNG, for use in scene pickers
func (s *Server) handleThumbnail(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "bouncing-spheres"
	}

	req := &RenderRequest{
		Scene:    sceneName,
		Width:    thumbRenderWidth,
		Height:   thumbRenderWidth * 9 / 16,
		Samples:  thumbSamples,
		MaxDepth: thumbDepth,
		TileSize: 32,
	}

	rend, err := s.newRenderer(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	img, _, err := rend.Render(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Render failed: %v", err), http.StatusInternalServerError)
		return
	}

	thumb := resize.Resize(thumbWidth, 0, img, resize.Lanczos3)

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if err := png.Encode(w, thumb); err != nil {
		http.Error(w, fmt.Sprintf("Failed to encode thumbnail: %v", err), http.StatusInternalServerError)
	}
}
