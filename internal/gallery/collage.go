package gallery

import (
	"fmt"
	"image"
	"image/draw"

	"flakemaker/internal/render"
	"flakemaker/internal/sims/crystal"
)

// Flake grows and renders a single flake from its hash, with the hash
// embedded into the result.
func Flake(cfg crystal.Config, sha string, style render.Style) (*image.RGBA, error) {
	c, err := Grow(cfg, sha)
	if err != nil {
		return nil, err
	}
	img := render.Flake(cfg.Width, cfg.Height, c.Segments(), style)
	if err := EmbedHash(img, sha); err != nil {
		return nil, err
	}
	return img, nil
}

// Collage renders an n×n grid of flakes grown from salted hashes of the
// seed, one tile per flake.
func Collage(n int, seed string, cfg crystal.Config, style render.Style) (*image.RGBA, error) {
	if n <= 0 {
		return nil, fmt.Errorf("collage size must be positive, got %d", n)
	}
	out := image.NewRGBA(image.Rect(0, 0, n*cfg.Width, n*cfg.Height))
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			sha, err := HashSeed(seed, true)
			if err != nil {
				return nil, err
			}
			tile, err := Flake(cfg, sha, style)
			if err != nil {
				return nil, err
			}
			r := image.Rect(col*cfg.Width, row*cfg.Height, (col+1)*cfg.Width, (row+1)*cfg.Height)
			draw.Draw(out, r, tile, tile.Bounds().Min, draw.Src)
		}
	}
	return out, nil
}
