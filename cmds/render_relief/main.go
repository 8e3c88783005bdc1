// Command render_relief renders a relief plaque produced by
// image_to_stl.
//
// By default, the plaque is viewed from the front at an
// elevation of 45 degrees, so the relief is lit at a grazing
// angle. A GIF output orbits the camera around the Z axis.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/model3d/render3d"
	"github.com/unixpickle/relief-d/reliefd"
)

func main() {
	var imageSize int
	var distance float64
	var randomGrid int
	var fps float64
	var frames int
	flag.IntVar(&imageSize, "image-size", 512, "width and height of the rendering")
	flag.Float64Var(&distance, "distance", 1.0,
		"camera distance, as a multiple of the plaque's diagonal")
	flag.IntVar(&randomGrid, "random-grid", 0,
		"if non-zero, render an NxN grid of random views instead")
	flag.Float64Var(&fps, "fps", 10.0, "FPS for GIF outputs")
	flag.IntVar(&frames, "frames", 20, "total number of frames for GIF outputs")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: render_relief [flags] <input.stl> <output.png|output.gif>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		flag.Usage()
		os.Exit(1)
	}
	inputPath, outputPath := args[0], args[1]

	log.Println("Loading mesh...")
	tris, err := reliefd.Load(inputPath, reliefd.ReadMesh)
	essentials.Must(err)
	if len(tris) == 0 {
		essentials.Die("mesh has no triangles")
	}
	stats := reliefd.ComputeMeshStats(tris)
	log.Printf(" - %d cells, bounds %v to %v", stats.NumTriangles/reliefd.TrianglesPerCell,
		stats.Min, stats.Max)

	object := render3d.Objectify(model3d.NewMeshTriangles(tris), nil)

	// Look down at the plaque from the front (-Y side).
	viewDir := model3d.YZ(-1, 1).Normalize()
	center := stats.Min.Mid(stats.Max)
	diagonal := stats.Max.Sub(stats.Min).Norm()

	log.Println("Rendering...")
	if strings.ToLower(filepath.Ext(outputPath)) == ".gif" {
		essentials.Must(
			render3d.SaveRotatingGIF(
				outputPath,
				object,
				model3d.Z(1),
				viewDir,
				imageSize,
				frames,
				fps,
				nil,
			),
		)
	} else if randomGrid > 0 {
		essentials.Must(
			render3d.SaveRandomGrid(outputPath, object, randomGrid, randomGrid, imageSize, nil),
		)
	} else {
		origin := center.Add(viewDir.Scale(diagonal * distance))
		essentials.Must(
			render3d.SaveRendering(outputPath, object, origin, imageSize, imageSize, nil),
		)
	}
}
