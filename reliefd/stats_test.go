package reliefd

import (
	"math"
	"testing"

	"github.com/unixpickle/model3d/model3d"
)

func TestComputeMeshStatsEmpty(t *testing.T) {
	stats := ComputeMeshStats(nil)
	if stats.NumTriangles != 0 || stats.Degenerate != 0 || stats.Volume != 0 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.Min != (model3d.Coord3D{}) || stats.Max != (model3d.Coord3D{}) {
		t.Errorf("unexpected bounds: %v %v", stats.Min, stats.Max)
	}
}

func TestComputeMeshStatsRaw(t *testing.T) {
	c := &Config{BaseThickness: 2, PixelSize: 0.5, Mode: ModeRaw}
	tris, err := GridToMesh(NewGrayGrid(2, 2, []uint8{127, 127, 127, 127}), c)
	if err != nil {
		t.Fatal(err)
	}
	stats := ComputeMeshStats(tris)
	if stats.NumTriangles != 48 || stats.Degenerate != 0 {
		t.Errorf("unexpected counts: %+v", stats)
	}
	if stats.Min != model3d.XYZ(0, 0, -2) || stats.Max != model3d.XYZ(1, 1, 0) {
		t.Errorf("unexpected bounds: %v %v", stats.Min, stats.Max)
	}
	if math.Abs(stats.Volume-2) > 1e-8 {
		t.Errorf("expected volume 2 but got %f", stats.Volume)
	}
}
