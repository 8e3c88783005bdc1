package reliefd

// Reconstruct integrates the centered intensities of every
// scanline of g into per-pixel elevations.
//
// Each scanline is integrated independently, starting from
// zero at its first pixel. A sample's Elevation excludes its
// own Delta.
func Reconstruct(g PixelGrid) *HeightField {
	rows, cols := g.Height(), g.Width()
	if rows <= 0 || cols <= 0 {
		return &HeightField{}
	}
	res := &HeightField{
		Rows:    rows,
		Cols:    cols,
		Samples: make([]Sample, 0, rows*cols),
	}
	for row := 0; row < rows; row++ {
		var acc int
		for col := 0; col < cols; col++ {
			delta := int(g.IntensityAt(row, col)) - Midpoint
			res.Samples = append(res.Samples, Sample{
				Row:       row,
				Col:       col,
				Elevation: acc,
				Delta:     delta,
			})
			acc += delta
		}
	}
	return res
}
