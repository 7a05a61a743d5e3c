//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"toothpick-fractal/internal/app"
	"toothpick-fractal/internal/config"
	"toothpick-fractal/internal/fractal"
)

func main() {
	flags := config.NewFlags()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	cfg := config.Default()
	if flags.Path != "" {
		var err error
		cfg, err = config.Load(flags.Path)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
	}
	cfg = flags.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	sim := fractal.New(fractal.Config{
		Length:         cfg.ToothpickLength,
		MaxGenerations: cfg.MaxGenerations,
	})

	game := app.New(sim, cfg)

	ebiten.SetWindowTitle("toothpick-fractal — " + sim.Name())
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
