package reliefd

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// A Mode selects which variant of the pipeline is run.
type Mode int

const (
	// ModeRelief centers every scanline around zero and
	// centers the model footprint on the origin.
	ModeRelief Mode = iota

	// ModeRaw keeps the raw cumulative elevations and places
	// the first cell at the origin.
	ModeRaw
)

func (m Mode) String() string {
	switch m {
	case ModeRelief:
		return "relief"
	case ModeRaw:
		return "raw"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Set parses a mode name, allowing a Mode to be used as a
// flag.Value.
func (m *Mode) Set(value string) error {
	switch value {
	case "relief":
		*m = ModeRelief
	case "raw":
		*m = ModeRaw
	default:
		return fmt.Errorf("unknown mode %q (expected relief or raw)", value)
	}
	return nil
}

// Config controls the geometry of the generated solid.
type Config struct {
	// BaseThickness is the vertical distance from the lowest
	// point of the relief down to the base plane.
	BaseThickness float64

	// PixelSize is the edge length of one cell's footprint.
	PixelSize float64

	Mode Mode

	// Concurrency is the maximum number of Goroutines used to
	// emit triangles. If 0, GOMAXPROCS is used.
	Concurrency int
}

// DefaultConfig creates a Config with the standard base
// thickness and pixel size.
func DefaultConfig() *Config {
	return &Config{
		BaseThickness: 3.0,
		PixelSize:     1.0,
		Mode:          ModeRelief,
	}
}

// Validate checks that the configuration describes a
// non-degenerate solid.
func (c *Config) Validate() error {
	if math.IsNaN(c.PixelSize) || math.IsInf(c.PixelSize, 0) || c.PixelSize <= 0 {
		return errors.Errorf("validate config: pixel size must be positive, got %v", c.PixelSize)
	}
	if math.IsNaN(c.BaseThickness) || math.IsInf(c.BaseThickness, 0) || c.BaseThickness < 0 {
		return errors.Errorf("validate config: base thickness must be non-negative, got %v",
			c.BaseThickness)
	}
	if c.Mode != ModeRelief && c.Mode != ModeRaw {
		return errors.Errorf("validate config: unknown mode %v", c.Mode)
	}
	if c.Concurrency < 0 {
		return errors.Errorf("validate config: negative concurrency %d", c.Concurrency)
	}
	return nil
}
