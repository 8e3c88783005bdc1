package reliefd

import (
	"math/rand"
	"testing"
)

func TestReconstructBasic(t *testing.T) {
	grid := NewGrayGrid(3, 2, []uint8{
		127, 255, 0,
		130, 120, 127,
	})
	field := Reconstruct(grid)
	if field.Rows != 2 || field.Cols != 3 || len(field.Samples) != 6 {
		t.Fatalf("unexpected field shape: %d %d %d", field.Rows, field.Cols, len(field.Samples))
	}
	expected := []Sample{
		{Row: 0, Col: 0, Elevation: 0, Delta: 0},
		{Row: 0, Col: 1, Elevation: 0, Delta: 128},
		{Row: 0, Col: 2, Elevation: 128, Delta: -127},
		{Row: 1, Col: 0, Elevation: 0, Delta: 3},
		{Row: 1, Col: 1, Elevation: 3, Delta: -7},
		{Row: 1, Col: 2, Elevation: -4, Delta: 0},
	}
	for i, s := range expected {
		if field.Samples[i] != s {
			t.Errorf("sample %d: expected %+v but got %+v", i, s, field.Samples[i])
		}
	}
	if *field.At(1, 1) != expected[4] {
		t.Errorf("unexpected At() result: %+v", *field.At(1, 1))
	}
}

func TestReconstructEmpty(t *testing.T) {
	for _, grid := range []*GrayGrid{
		NewGrayGrid(0, 0, nil),
		NewGrayGrid(0, 5, nil),
		NewGrayGrid(5, 0, nil),
	} {
		field := Reconstruct(grid)
		if len(field.Samples) != 0 {
			t.Errorf("grid %dx%d: expected no samples but got %d", grid.W, grid.H,
				len(field.Samples))
		}
	}
}

func TestReconstructClosure(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	for trial := 0; trial < 10; trial++ {
		grid := randomGrid(rng, 1+rng.Intn(20), 1+rng.Intn(20))
		field := Reconstruct(grid)
		for row := 0; row < field.Rows; row++ {
			samples := field.Row(row)
			var sum int
			for col, s := range samples {
				if s.Row != row || s.Col != col {
					t.Fatalf("sample at %d,%d has coordinates %d,%d", row, col, s.Row, s.Col)
				}
				sum += s.Delta
			}
			last := samples[len(samples)-1]
			if sum != last.Elevation+last.Delta {
				t.Errorf("row %d: delta sum %d does not match final height %d", row, sum,
					last.Elevation+last.Delta)
			}
			if samples[0].Elevation != 0 {
				t.Errorf("row %d: scanline starts at %d", row, samples[0].Elevation)
			}
		}
	}
}

func randomGrid(rng *rand.Rand, width, height int) *GrayGrid {
	values := make([]uint8, width*height)
	for i := range values {
		values[i] = uint8(rng.Intn(256))
	}
	return NewGrayGrid(width, height, values)
}
