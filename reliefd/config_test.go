package reliefd

import (
	"flag"
	"math"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatal(err)
	}
	invalid := []*Config{
		{BaseThickness: 3, PixelSize: 0},
		{BaseThickness: 3, PixelSize: -2},
		{BaseThickness: 3, PixelSize: math.NaN()},
		{BaseThickness: 3, PixelSize: math.Inf(1)},
		{BaseThickness: -0.5, PixelSize: 1},
		{BaseThickness: math.NaN(), PixelSize: 1},
		{BaseThickness: 3, PixelSize: 1, Mode: Mode(7)},
		{BaseThickness: 3, PixelSize: 1, Concurrency: -1},
	}
	for i, c := range invalid {
		if err := c.Validate(); err == nil {
			t.Errorf("config %d should be invalid", i)
		}
	}
}

func TestModeFlag(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	mode := ModeRelief
	fs.Var(&mode, "mode", "")
	if err := fs.Parse([]string{"-mode", "raw"}); err != nil {
		t.Fatal(err)
	}
	if mode != ModeRaw {
		t.Errorf("expected raw mode but got %v", mode)
	}
	if mode.String() != "raw" || ModeRelief.String() != "relief" {
		t.Errorf("unexpected names: %s %s", mode, ModeRelief)
	}
	if err := mode.Set("bumpy"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
