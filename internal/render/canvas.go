package render

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"flakemaker/internal/core"
)

// Style holds the flake color scheme. Young is the shade of branches with
// full growth potential left, Old the frozen shade; segments blend between
// the two by intensity.
type Style struct {
	Young      color.RGBA
	Old        color.RGBA
	Background color.RGBA
}

// DefaultStyle returns the classic Flake Maker palette.
func DefaultStyle() Style {
	return Style{
		Young:      color.RGBA{R: 0x2a, G: 0xb6, B: 0xe8, A: 0xff},
		Old:        color.RGBA{R: 0xc0, G: 0xc4, B: 0xcf, A: 0xff},
		Background: color.RGBA{R: 0x28, G: 0x29, B: 0x23, A: 0xff},
	}
}

// Shade blends the style's old and young colors by the segment intensity.
func Shade(s Style, intensity float64) color.RGBA {
	t := core.Clamp(intensity, 0, 1)
	return color.RGBA{
		R: uint8(core.Lerp(t, 0, 1, float64(s.Old.R), float64(s.Young.R))),
		G: uint8(core.Lerp(t, 0, 1, float64(s.Old.G), float64(s.Young.G))),
		B: uint8(core.Lerp(t, 0, 1, float64(s.Old.B), float64(s.Young.B))),
		A: 0xff,
	}
}

// Flake draws the segments onto a fresh w×h canvas and returns the image.
func Flake(w, h int, segments []core.Segment, style Style) *image.RGBA {
	dc := gg.NewContext(w, h)
	dc.SetColor(style.Background)
	dc.Clear()
	for _, seg := range segments {
		dc.SetColor(Shade(style, seg.Intensity))
		dc.SetLineWidth(seg.Thickness)
		dc.DrawLine(seg.Start.X, seg.Start.Y, seg.End.X, seg.End.Y)
		dc.Stroke()
	}
	out, ok := dc.Image().(*image.RGBA)
	if !ok {
		// gg backs its contexts with *image.RGBA; copy if that ever changes.
		b := dc.Image().Bounds()
		out = image.NewRGBA(b)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				out.Set(x, y, dc.Image().At(x, y))
			}
		}
	}
	return out
}

// SavePNG writes the image to path, creating parent directories as needed.
func SavePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
