// Command toothpick-svg grows the fractal for a fixed number of generations
// and writes the result as an SVG file, without opening a window.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"toothpick-fractal/internal/export"
	"toothpick-fractal/internal/fractal"
)

func main() {
	gens := flag.Int("gens", 10, "generations to grow")
	length := flag.Float64("length", fractal.DefaultConfig().Length, "toothpick length")
	out := flag.String("o", "", "output file (default stdout)")
	stroke := flag.String("stroke", "black", "SVG stroke color")
	flag.Parse()

	if *gens < 0 {
		log.Fatalf("gens must be non-negative, got %d", *gens)
	}
	if *length <= 0 {
		log.Fatalf("length must be positive, got %v", *length)
	}

	sim := fractal.New(fractal.Config{Length: *length, MaxGenerations: *gens})
	for i := 0; i < *gens; i++ {
		sim.Step()
	}

	opts := export.DefaultOptions()
	opts.Stroke = *stroke

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("create output: %v", err)
		}
		defer f.Close()
		w = f
	}

	if err := export.WriteSim(w, sim, opts); err != nil {
		log.Fatalf("write svg: %v", err)
	}
	fmt.Fprintf(os.Stderr, "generation %d, %d toothpicks\n", sim.Generation(), sim.SegmentCount())
}
