package reliefd

import (
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
)

// TrianglesPerCell is the number of triangles emitted for
// every sample: six quads of two triangles each.
const TrianglesPerCell = 12

// BuildMesh emits a closed box for every cell of h, from the
// cell's sloped top patch down to baseZ.
//
// Cells do not share vertices. Triangles are ordered by
// sample, and every quad is wound counter-clockwise when
// viewed from outside its cell, so Triangle.Normal() points
// outward.
func BuildMesh(h *HeightField, baseZ float64, c *Config) []*model3d.Triangle {
	if len(h.Samples) == 0 {
		return []*model3d.Triangle{}
	}
	res := make([]*model3d.Triangle, len(h.Samples)*TrianglesPerCell)
	rowOffset, colOffset := footprintOffset(h, c)
	essentials.ConcurrentMap(c.Concurrency, len(h.Samples), func(i int) {
		s := &h.Samples[i]
		emitCell(
			res[i*TrianglesPerCell:(i+1)*TrianglesPerCell],
			(float64(s.Row)+rowOffset)*c.PixelSize,
			(float64(s.Col)+colOffset)*c.PixelSize,
			float64(s.Elevation)/HeightScale*c.PixelSize,
			float64(s.Elevation+s.Delta)/HeightScale*c.PixelSize,
			baseZ,
			c.PixelSize,
		)
	})
	return res
}

// footprintOffset gets the offset, in cells, added to every
// row and column index before scaling.
func footprintOffset(h *HeightField, c *Config) (rowOffset, colOffset float64) {
	if c.Mode == ModeRaw {
		return 0, 0
	}
	return -float64(h.Rows-1) / 2, -float64(h.Cols-1) / 2
}

// emitCell writes the twelve triangles of one box. The top
// patch is at z0 along y0 and at z1 along y1.
func emitCell(out []*model3d.Triangle, x0, y0, z0, z1, b, size float64) {
	x1 := x0 + size
	y1 := y0 + size

	// Top
	quadTriangles(out[0:2],
		model3d.XYZ(x0, y0, z0), model3d.XYZ(x1, y0, z0),
		model3d.XYZ(x1, y1, z1), model3d.XYZ(x0, y1, z1))
	// Bottom
	quadTriangles(out[2:4],
		model3d.XYZ(x0, y0, b), model3d.XYZ(x0, y1, b),
		model3d.XYZ(x1, y1, b), model3d.XYZ(x1, y0, b))
	// Near (leading edge)
	quadTriangles(out[4:6],
		model3d.XYZ(x0, y0, b), model3d.XYZ(x1, y0, b),
		model3d.XYZ(x1, y0, z0), model3d.XYZ(x0, y0, z0))
	// Far (trailing edge)
	quadTriangles(out[6:8],
		model3d.XYZ(x0, y1, b), model3d.XYZ(x0, y1, z1),
		model3d.XYZ(x1, y1, z1), model3d.XYZ(x1, y1, b))
	// Left
	quadTriangles(out[8:10],
		model3d.XYZ(x0, y0, b), model3d.XYZ(x0, y0, z0),
		model3d.XYZ(x0, y1, z1), model3d.XYZ(x0, y1, b))
	// Right
	quadTriangles(out[10:12],
		model3d.XYZ(x1, y0, b), model3d.XYZ(x1, y1, b),
		model3d.XYZ(x1, y1, z1), model3d.XYZ(x1, y0, z0))
}

// quadTriangles splits the quad p0-p1-p2-p3 into the
// triangles (p0, p2, p3) and (p0, p1, p2), preserving the
// quad's winding.
func quadTriangles(out []*model3d.Triangle, p0, p1, p2, p3 model3d.Coord3D) {
	out[0] = &model3d.Triangle{p0, p2, p3}
	out[1] = &model3d.Triangle{p0, p1, p2}
}
