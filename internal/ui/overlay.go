//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"flakemaker/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws optional radial guide rays behind the crystal arms, one per
// arm, to make symmetry drift visible.
type Overlay struct {
	sim  core.Sim
	show bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim) *Overlay {
	return &Overlay{sim: sim}
}

// Toggle flips guide visibility.
func (o *Overlay) Toggle() {
	if o != nil {
		o.show = !o.show
	}
}

// Draw strokes one faint ray per arm from the canvas center to its edge.
func (o *Overlay) Draw(screen *ebiten.Image, scale float64) {
	if o == nil || !o.show {
		return
	}
	s := o.sim.Size()
	cx := float64(s.W) / 2 * scale
	cy := float64(s.H) / 2 * scale
	r := math.Hypot(float64(s.W), float64(s.H)) / 2 * scale
	clr := color.RGBA{R: 90, G: 95, B: 90, A: 120}
	for i := 0; i < 6; i++ {
		a := math.Pi/2 + float64(i)*math.Pi/3
		vector.StrokeLine(screen, float32(cx), float32(cy),
			float32(cx+r*math.Cos(a)), float32(cy-r*math.Sin(a)), 1, clr, true)
	}
}
