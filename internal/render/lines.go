//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"flakemaker/internal/core"
)

// FlakePainter strokes crystal segments onto an ebiten screen.
type FlakePainter struct {
	style Style
}

// NewFlakePainter constructs a painter with the given color style.
func NewFlakePainter(style Style) *FlakePainter {
	return &FlakePainter{style: style}
}

// Style exposes the painter's color scheme for screenshot rendering.
func (p *FlakePainter) Style() Style { return p.style }

// Blit fills the background and strokes every segment at the given scale.
func (p *FlakePainter) Blit(dst *ebiten.Image, segments []core.Segment, scale float64) {
	dst.Fill(p.style.Background)
	for _, seg := range segments {
		w := float32(seg.Thickness * scale)
		if w < 1 {
			w = 1
		}
		vector.StrokeLine(dst,
			float32(seg.Start.X*scale), float32(seg.Start.Y*scale),
			float32(seg.End.X*scale), float32(seg.End.Y*scale),
			w, Shade(p.style, seg.Intensity), true)
	}
}
