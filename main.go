package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/jrm-dev/go-tile-tracer/pkg/core"
	"github.com/jrm-dev/go-tile-tracer/pkg/renderer"
	"github.com/jrm-dev/go-tile-tracer/pkg/scene"
)

func main() {
	// Scene selection
	sceneName := flag.String("scene", "bouncing-spheres", "Scene to render: bouncing-spheres, three-spheres")

	// Image resolution: set two of the three
	width := flag.Int("width", 0, "Output width in pixels")
	height := flag.Int("height", 0, "Output height in pixels")
	aspect := flag.Float64("aspect", 0, "Aspect ratio (width/height)")

	// Quality
	samples := flag.Int("samples", 100, "Samples per pixel")
	samplerName := flag.String("sampler", "stratified", "Pixel sampler: stratified (perfect-square samples) or random")
	maxDepth := flag.Int("depth", 50, "Maximum ray bounce depth")

	// Scheduling
	workers := flag.Int("workers", 0, "Worker goroutines (0 = one per logical CPU)")
	tileSize := flag.Int("tile", 32, "Tile edge length in pixels")

	// Determinism
	seed := flag.Uint64("seed", 0, "Base random seed (0 = scene default)")
	timeSeed := flag.Bool("time-seed", false, "Seed from the wall clock instead of -seed")

	// Output
	output := flag.String("output", "", "Output file path (default output/render_<timestamp>.<format>)")
	format := flag.String("format", "png", "Output format: png or ppm")
	preview := flag.Bool("preview", false, "Show a live preview window while rendering")
	upload := flag.Bool("upload", false, "Upload the finished image to S3 (uses AWS_* env vars)")
	flag.Parse()

	logger := renderer.NewDefaultLogger()

	// .env is optional; flags and real env vars still apply without it
	if err := godotenv.Load(); err == nil {
		logger.Printf("Loaded environment from .env\n")
	}

	sc, err := buildScene(*sceneName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := sc.CameraConfig
	if *width > 0 || *height > 0 || *aspect > 0 {
		cfg.Width, cfg.Height, cfg.AspectRatio = *width, *height, *aspect
	}
	cfg.MaxDepth = *maxDepth
	cfg.TileSize = *tileSize
	cfg.NumWorkers = *workers
	cfg.TimeSeed = *timeSeed
	if *seed != 0 {
		cfg.Seed = [2]uint64{*seed, *seed ^ 0x9e3779b97f4a7c15}
	}

	switch *samplerName {
	case "stratified":
		cfg.Sampler, err = renderer.NewStratifiedSampler(*samples)
	case "random":
		cfg.Sampler, err = renderer.NewRandomSampler(*samples)
	default:
		err = fmt.Errorf("unknown sampler %q", *samplerName)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	r, err := renderer.NewRenderer(sc, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	spec := r.ImageSpec()
	renderer.LogHostInfo(logger)
	logger.Printf("Rendering %s: %dx%d, %d spp, depth %d, %d tiles\n",
		*sceneName, spec.Width, spec.Height, *samples, *maxDepth, r.TileCount())

	// Ctrl-C cancels the render instead of killing it mid-write
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *preview {
		err = runWithPreview(ctx, r, spec, outputPath(*output, *format), *format, *upload, logger)
	} else {
		err = runHeadless(ctx, r, outputPath(*output, *format), *format, *upload, logger)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func buildScene(name string) (*scene.Scene, error) {
	switch name {
	case "bouncing-spheres":
		return scene.NewBouncingSpheres([2]uint64{123, 128}), nil
	case "three-spheres":
		return scene.NewThreeSpheres(), nil
	default:
		return nil, fmt.Errorf("unknown scene %q (try bouncing-spheres or three-spheres)", name)
	}
}

func outputPath(flagValue, format string) string {
	if flagValue != "" {
		return flagValue
	}
	return fmt.Sprintf("output/render_%s.%s", time.Now().Format("2006-01-02_15-04-05"), format)
}

func runHeadless(ctx context.Context, r *renderer.Renderer, path, format string, upload bool, logger core.Logger) error {
	img, stats, err := r.Render(ctx)
	if err != nil {
		return err
	}

	logger.Printf("Rendered %d tiles in %v (%.0f samples/sec)\n",
		stats.TilesRendered, stats.Elapsed.Round(time.Millisecond), stats.SamplesPerSecond())

	if err := saveImage(img, path, format); err != nil {
		return err
	}
	logger.Printf("Saved %s\n", path)

	if upload {
		url, err := uploadToS3(ctx, path)
		if err != nil {
			return fmt.Errorf("upload failed: %w", err)
		}
		logger.Printf("Uploaded to %s\n", url)
	}
	return nil
}
