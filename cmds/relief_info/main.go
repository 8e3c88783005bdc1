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
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: relief_info [flags] <input.stl>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath := args[0]

	log.Println("Loading mesh...")
	tris, err := reliefd.Load(inputPath, reliefd.ReadMesh)
	essentials.Must(err)

	stats := reliefd.ComputeMeshStats(tris)
	fmt.Println("Number of triangles:", stats.NumTriangles)
	fmt.Println("Number of cells:", stats.NumTriangles/reliefd.TrianglesPerCell)
	fmt.Println("Degenerate triangles:", stats.Degenerate)
	fmt.Println("Min:", stats.Min)
	fmt.Println("Max:", stats.Max)
	fmt.Println("Volume:", stats.Volume)
}
