package reliefd

import "golang.org/x/exp/constraints"

const (
	// Midpoint is the intensity which contributes no slope.
	Midpoint = 127

	// HeightScale elevation units make one pixel-size unit
	// of vertical relief.
	HeightScale = 128
)

// A Sample is the reconstructed elevation record for a
// single pixel of a PixelGrid.
type Sample struct {
	Row int
	Col int

	// Elevation is the cumulative height at the start of
	// the pixel, before Delta is applied.
	Elevation int

	// Delta is the pixel's intensity minus Midpoint.
	Delta int
}

// Bottom gets the lowest elevation the top surface of the
// sample's cell reaches.
func (s *Sample) Bottom() int {
	return s.Elevation + minOf(s.Delta, 0)
}

// A HeightField stores one Sample per pixel in row-major
// order.
type HeightField struct {
	Rows    int
	Cols    int
	Samples []Sample
}

// At gets the sample for the given row and column.
func (h *HeightField) At(row, col int) *Sample {
	return &h.Samples[row*h.Cols+col]
}

// Row gets the samples of a single scanline.
func (h *HeightField) Row(row int) []Sample {
	return h.Samples[row*h.Cols : (row+1)*h.Cols]
}

func minOf[T constraints.Ordered](x, y T) T {
	if x < y {
		return x
	}
	return y
}

func maxOf[T constraints.Ordered](x, y T) T {
	if x > y {
		return x
	}
	return y
}
