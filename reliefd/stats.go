package reliefd

import (
	"github.com/unixpickle/model3d/model3d"
)

// MeshStats summarizes a triangle soup.
type MeshStats struct {
	NumTriangles int

	// Degenerate counts triangles with zero area.
	Degenerate int

	Min model3d.Coord3D
	Max model3d.Coord3D

	// Volume is the signed volume enclosed by the triangles,
	// which is positive for closed, outward-facing surfaces.
	Volume float64
}

// ComputeMeshStats gathers statistics about triangles.
//
// For a mesh of independent closed boxes, Volume is the sum
// of the boxes' volumes. An empty list yields zero bounds.
func ComputeMeshStats(triangles []*model3d.Triangle) *MeshStats {
	res := &MeshStats{NumTriangles: len(triangles)}
	if len(triangles) == 0 {
		return res
	}
	for _, t := range triangles {
		if t.Area() == 0 {
			res.Degenerate++
		}
	}
	mesh := model3d.NewMeshTriangles(triangles)
	res.Min = mesh.Min()
	res.Max = mesh.Max()
	res.Volume = mesh.Volume()
	return res
}
