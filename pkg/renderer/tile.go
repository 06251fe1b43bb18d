package renderer

import (
	"image"

	"github.com/jrm-dev/go-tile-tracer/pkg/core"
)

// Tile is a rectangular region of the output image rendered as one unit of
// work. Pixels are gamma-corrected colors in row-major order, sized
// Bounds.Dx() × Bounds.Dy(). Ownership transfers from the rendering worker
// to the consumer when the tile is delivered.
type Tile struct {
	Bounds image.Rectangle
	Pixels []core.Vec3
}

// At returns the pixel at absolute image coordinates (x, y), which must
// lie inside the tile's bounds
func (t Tile) At(x, y int) core.Vec3 {
	return t.Pixels[(y-t.Bounds.Min.Y)*t.Bounds.Dx()+(x-t.Bounds.Min.X)]
}

// NewTileGrid partitions a width×height image into tiles of at most
// tileSize×tileSize pixels, in raster order
func NewTileGrid(width, height, tileSize int) []image.Rectangle {
	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize

	grid := make([]image.Rectangle, 0, tilesX*tilesY)
	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)
			grid = append(grid, image.Rect(x0, y0, x1, y1))
		}
	}
	return grid
}
