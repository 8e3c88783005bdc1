package reliefd

import (
	"image"

	"github.com/unixpickle/model3d/model3d"
)

// GridToMesh runs the full pipeline on a pixel grid: it
// reconstructs elevations, normalizes them, and builds a
// closed solid.
//
// If c is nil, DefaultConfig() is used.
func GridToMesh(g PixelGrid, c *Config) ([]*model3d.Triangle, error) {
	if c == nil {
		c = DefaultConfig()
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	field := Reconstruct(g)
	baseZ := field.Normalize(c)
	return BuildMesh(field, baseZ, c), nil
}

// ImageToMesh is like GridToMesh, but for a decoded image in
// its natural orientation.
func ImageToMesh(img image.Image, c *Config) ([]*model3d.Triangle, error) {
	return GridToMesh(NewImageGrid(img), c)
}
