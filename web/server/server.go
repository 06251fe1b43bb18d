// Package server exposes the tile renderer over HTTP: a streaming render
// endpoint that delivers tiles via Server-Sent Events as workers finish
// them, plus a thumbnail endpoint for scene pickers.
package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jrm-dev/go-tile-tracer/pkg/renderer"
	"github.com/jrm-dev/go-tile-tracer/pkg/scene"
)

// Server handles web requests for the tile tracer
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene    string `json:"scene"`    // Scene name (e.g., "bouncing-spheres")
	Width    int    `json:"width"`    // Image width
	Height   int    `json:"height"`   // Image height
	Samples  int    `json:"samples"`  // Samples per pixel
	MaxDepth int    `json:"maxDepth"` // Maximum ray bounce depth
	TileSize int    `json:"tileSize"` // Tile edge length
}

// TileUpdate represents a single finished tile sent via SSE
type TileUpdate struct {
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	ImageData  string `json:"imageData"` // Base64 encoded PNG of just this tile
	TileNumber int    `json:"tileNumber"`
	TotalTiles int    `json:"totalTiles"`
}

// CompleteUpdate carries the assembled image once every tile has landed
type CompleteUpdate struct {
	ImageData     string  `json:"imageData"` // Base64 encoded PNG
	TilesRendered int     `json:"tilesRendered"`
	ElapsedMs     int64   `json:"elapsedMs"`
	SamplesPerSec float64 `json:"samplesPerSec"`
}

// Start starts the web server
func (s *Server) Start() error {
	// Serve static files
	http.Handle("/", http.FileServer(http.Dir("static/")))

	// API endpoints
	http.HandleFunc("/api/render", s.handleRender)
	http.HandleFunc("/api/thumbnail", s.handleThumbnail)
	http.HandleFunc("/api/health", s.handleHealth)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, nil)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}

	if sceneName := r.URL.Query().Get("scene"); sceneName != "" {
		req.Scene = sceneName
	} else {
		req.Scene = "bouncing-spheres"
	}

	var err error
	if req.Width, err = parseIntParam(r.URL.Query(), "width", 400, 50, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(r.URL.Query(), "height", 225, 50, 2000); err != nil {
		return nil, err
	}
	if req.Samples, err = parseIntParam(r.URL.Query(), "samples", 25, 1, 2000); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(r.URL.Query(), "maxDepth", 50, 1, 500); err != nil {
		return nil, err
	}
	if req.TileSize, err = parseIntParam(r.URL.Query(), "tileSize", 32, 8, 256); err != nil {
		return nil, err
	}

	// Performance warning
	if req.Width*req.Height > 800*600 && req.Samples > 100 {
		log.Printf("Render warning: Large image with high samples may render slowly")
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// createScene creates a scene based on the scene name
func (s *Server) createScene(sceneName string) *scene.Scene {
	switch sceneName {
	case "bouncing-spheres":
		return scene.NewBouncingSpheres([2]uint64{123, 128})
	case "three-spheres":
		return scene.NewThreeSpheres()
	default:
		return nil
	}
}

// newRenderer builds a renderer for the request on top of the scene's
// recommended camera setup
func (s *Server) newRenderer(req *RenderRequest) (*renderer.Renderer, error) {
	sc := s.createScene(req.Scene)
	if sc == nil {
		return nil, fmt.Errorf("unknown scene: %s", req.Scene)
	}

	cfg := sc.CameraConfig
	cfg.Width = req.Width
	cfg.Height = req.Height
	cfg.AspectRatio = 0
	cfg.MaxDepth = req.MaxDepth
	cfg.TileSize = req.TileSize

	// The random sampler accepts any count, so web requests aren't limited
	// to perfect squares
	sampler, err := renderer.NewRandomSampler(req.Samples)
	if err != nil {
		return nil, err
	}
	cfg.Sampler = sampler

	return renderer.NewRenderer(sc, cfg, nil)
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// sendSSEEvent sends a generic SSE event
func sendSSEEvent(w http.ResponseWriter, event, data string) error {
	if flusher, ok := w.(http.Flusher); ok {
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
		flusher.Flush()
		return nil
	}
	return fmt.Errorf("streaming not supported")
}

// sendSSEError sends an error via SSE
func sendSSEError(w http.ResponseWriter, message string) error {
	return sendSSEEvent(w, "error", message)
}
