//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strconv"

	"flakemaker/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type statsProvider interface {
	BranchCount() int
	ElapsedSteps() int
}

// HUD draws environment readouts, crystal stats and the adjustable
// parameter line in the screen corner.
type HUD struct {
	sim      core.Sim
	controls []core.ParameterControl
	selected int

	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	h := &HUD{sim: sim}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		h.controls = provider.ParameterControls()
	}
	if s, ok := sim.(core.IntParameterSetter); ok {
		h.intSetter = s
	}
	if s, ok := sim.(core.FloatParameterSetter); ok {
		h.floatSetter = s
	}
	return h
}

// Update cycles control focus with Tab and adjusts the focused control with
// the -/= keys.
func (h *HUD) Update() {
	if h == nil || len(h.controls) == 0 {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		h.selected = (h.selected + 1) % len(h.controls)
	}
	dir := 0.0
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		dir = 1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		dir = -1
	}
	if dir != 0 {
		h.adjust(h.controls[h.selected], dir)
	}
}

func (h *HUD) adjust(ctrl core.ParameterControl, dir float64) {
	cur, ok := h.currentValue(ctrl.Key)
	if !ok {
		return
	}
	next := cur + dir*ctrl.Step
	if ctrl.HasMin && next < ctrl.Min {
		next = ctrl.Min
	}
	if ctrl.HasMax && next > ctrl.Max {
		next = ctrl.Max
	}
	switch ctrl.Type {
	case core.ParamTypeInt:
		if h.intSetter != nil {
			h.intSetter.SetIntParameter(ctrl.Key, int(next))
		}
	case core.ParamTypeFloat:
		if h.floatSetter != nil {
			h.floatSetter.SetFloatParameter(ctrl.Key, next)
		}
	}
}

// currentValue looks the control's value up in the parameter snapshot.
func (h *HUD) currentValue(key string) (float64, bool) {
	provider, ok := h.sim.(core.ParametersProvider)
	if !ok {
		return 0, false
	}
	for _, group := range provider.Parameters().Groups {
		for _, p := range group.Params {
			if p.Key != key {
				continue
			}
			v, err := strconv.ParseFloat(p.Value, 64)
			if err != nil {
				return 0, false
			}
			return v, true
		}
	}
	return 0, false
}

// Draw renders the readout lines in the top-left corner.
func (h *HUD) Draw(screen *ebiten.Image, env core.Environment, paused bool, shotErr error) {
	if h == nil {
		return
	}
	face := basicfont.Face7x13
	lines := []string{
		fmt.Sprintf("Humidity: %3.0f%%   Temp: %5.1f C", env.Humidity, env.Temperature),
	}
	if stats, ok := h.sim.(statsProvider); ok {
		lines = append(lines, fmt.Sprintf("Branches: %d   Steps: %d", stats.BranchCount(), stats.ElapsedSteps()))
	}
	if len(h.controls) > 0 {
		ctrl := h.controls[h.selected]
		value := "--"
		if v, ok := h.currentValue(ctrl.Key); ok {
			value = strconv.FormatFloat(v, 'g', -1, 64)
		}
		lines = append(lines, fmt.Sprintf("> %s: %s  [tab] next  [-/=] adjust", ctrl.Label, value))
	}
	if paused {
		lines = append(lines, "PAUSED")
	}
	if shotErr != nil {
		lines = append(lines, "screenshot failed: "+shotErr.Error())
	}
	lines = append(lines, "[space] pause  [n] step  [r] restart  [s] shot  [g] guides  [q] quit")

	clr := color.RGBA{R: 230, G: 235, B: 240, A: 255}
	y := 16
	for _, line := range lines {
		text.Draw(screen, line, face, 8, y, clr)
		y += 16
	}
}
