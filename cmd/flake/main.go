//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"flakemaker/internal/app"
	"flakemaker/internal/core"
	"flakemaker/internal/render"
	_ "flakemaker/internal/sims/crystal"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	var overrides map[string]string
	style := render.DefaultStyle()
	if cfg.Settings != "" {
		settings, err := app.LoadSettings(cfg.Settings)
		if err != nil {
			log.Fatal(err)
		}
		overrides = settings.Overrides()
		if err := settings.ApplyStyle(&style); err != nil {
			log.Fatal(err)
		}
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(overrides)
	sim.Reset(cfg.Seed)

	game := app.New(sim, style, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle("flakemaker — " + sim.Name())
	ebiten.SetWindowSize(int(float64(size.W)*cfg.Scale), int(float64(size.H)*cfg.Scale))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
