package reliefd

// RowMeans computes the integer mean elevation of every
// scanline, truncated toward zero.
func (h *HeightField) RowMeans() []int {
	means := make([]int, h.Rows)
	if h.Cols == 0 {
		return means
	}
	for row := range means {
		var sum int
		for _, s := range h.Row(row) {
			sum += s.Elevation
		}
		means[row] = sum / h.Cols
	}
	return means
}

// CenterRows subtracts each scanline's mean elevation from
// the scanline's samples.
//
// The means are computed from all samples before any of
// them are rewritten.
func (h *HeightField) CenterRows() {
	means := h.RowMeans()
	for i := range h.Samples {
		s := &h.Samples[i]
		s.Elevation -= means[s.Row]
	}
}

// GlobalMinimum gets the lowest point reached by the top
// surface of any cell, or 0 for an empty field.
func (h *HeightField) GlobalMinimum() int {
	if len(h.Samples) == 0 {
		return 0
	}
	res := h.Samples[0].Bottom()
	for i := 1; i < len(h.Samples); i++ {
		res = minOf(res, h.Samples[i].Bottom())
	}
	return res
}

// BaseZ computes the height of the flat base plane beneath
// the solid.
//
// The base only moves down to make room for negative
// relief, never up.
func (h *HeightField) BaseZ(c *Config) float64 {
	lowest := minOf(h.GlobalMinimum(), 0)
	return -c.BaseThickness + float64(lowest)/HeightScale*c.PixelSize
}

// Normalize prepares the field for meshing according to
// the configured mode and returns the base plane height.
func (h *HeightField) Normalize(c *Config) float64 {
	if c.Mode == ModeRelief {
		h.CenterRows()
	}
	return h.BaseZ(c)
}
