// Command image_to_stl turns a grayscale image into a
// closed relief plaque and saves it as an STL file.
//
// Each column of the image, read from right to left, is
// integrated into a height profile, so bright pixels slope
// upward and dark pixels slope downward.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/relief-d/reliefd"
)

func main() {
	config := reliefd.DefaultConfig()
	var maxSize int
	var outputPath string
	flag.Float64Var(&config.BaseThickness, "base-size", config.BaseThickness,
		"thickness of the base beneath the lowest point of the relief")
	flag.Float64Var(&config.PixelSize, "pixel-size", config.PixelSize,
		"edge length of the footprint of one pixel")
	flag.Var(&config.Mode, "mode", "reconstruction mode: relief or raw")
	flag.IntVar(&config.Concurrency, "concurrency", 0,
		"maximum number of Goroutines for meshing (0 for GOMAXPROCS)")
	flag.IntVar(&maxSize, "max-size", 0, "downscale images larger than this (0 to disable)")
	flag.StringVar(&outputPath, "output", "", "output STL path (defaults to input path with .stl)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: image_to_stl [flags] <input_image>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		flag.Usage()
		os.Exit(1)
	}
	inputPath := args[0]
	if outputPath == "" {
		outputPath = reliefd.MeshPath(inputPath)
	}
	if err := config.Validate(); err != nil {
		essentials.Die(err)
	}

	log.Println("Loading image...")
	img, err := reliefd.Load(inputPath, reliefd.ReadImage)
	essentials.Must(err)
	if maxSize > 0 {
		b := img.Bounds()
		img = reliefd.Downscale(img, maxSize)
		if nb := img.Bounds(); nb != b {
			log.Printf(" - resized from %dx%d to %dx%d", b.Dx(), b.Dy(), nb.Dx(), nb.Dy())
		}
	}

	log.Println("Reconstructing height field...")
	field := reliefd.Reconstruct(reliefd.NewImageGrid(img))
	baseZ := field.Normalize(config)
	log.Printf(" - %d scanlines of %d pixels, base at z=%f", field.Rows, field.Cols, baseZ)

	log.Println("Creating mesh...")
	tris := reliefd.BuildMesh(field, baseZ, config)
	log.Printf(" - %d triangles", len(tris))

	log.Println("Writing output...")
	essentials.Must(reliefd.Save(outputPath, tris, reliefd.WriteMesh))
}
