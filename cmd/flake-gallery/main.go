package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"flakemaker/internal/gallery"
	"flakemaker/internal/render"
	"flakemaker/internal/sims/crystal"
)

func main() {
	seed := flag.String("seed", "random", "seed string to hash")
	hash := flag.String("hash", "", "explicit 64-digit hex hash (overrides -seed)")
	count := flag.Int("n", 1, "number of flakes to generate")
	grid := flag.Int("grid", 0, "render an NxN collage instead of single flakes")
	size := flag.Int("size", 700, "image size in pixels per flake")
	outDir := flag.String("out", "flakes", "output directory")
	salt := flag.Bool("salt", true, "salt the seed so every flake differs")
	flag.Parse()

	logger := log.New(os.Stderr)

	cfg := crystal.DefaultConfig()
	cfg.Width = *size
	cfg.Height = *size
	style := render.DefaultStyle()

	if *grid > 0 {
		img, err := gallery.Collage(*grid, *seed, cfg, style)
		if err != nil {
			logger.Fatal("rendering collage", "err", err)
		}
		path := filepath.Join(*outDir, fmt.Sprintf("collage_%dx%d.png", *grid, *grid))
		if err := render.SavePNG(path, img); err != nil {
			logger.Fatal("saving collage", "err", err)
		}
		logger.Info("saved collage", "path", path, "flakes", (*grid)*(*grid))
		return
	}

	for i := 0; i < *count; i++ {
		sha := *hash
		if sha == "" {
			var err error
			sha, err = gallery.HashSeed(*seed, *salt)
			if err != nil {
				logger.Fatal("hashing seed", "err", err)
			}
		}
		img, err := gallery.Flake(cfg, sha, style)
		if err != nil {
			logger.Fatal("growing flake", "hash", sha, "err", err)
		}
		path := filepath.Join(*outDir, fmt.Sprintf("flake_%s.png", sha[:12]))
		if err := render.SavePNG(path, img); err != nil {
			logger.Fatal("saving flake", "err", err)
		}
		logger.Info("saved flake", "path", path, "hash", sha)
	}
}
