//go:build ebiten

package app

import (
	"path/filepath"
	"time"

	"flakemaker/internal/core"
	"flakemaker/internal/render"
	"flakemaker/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Environment step sizes from the documented control scheme: humidity moves
// in steps of 5, temperature in steps of 0.5.
const (
	humidityStep    = 5.0
	temperatureStep = 0.5
)

// Game adapts a crystal simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.FlakePainter
	hud     *ui.HUD
	overlay *ui.Overlay
	pacer   *core.FixedStep

	env      core.Environment
	scale    float64
	paused   bool
	tickOnce bool
	seed     int64
	shotDir  string
	shotErr  error
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, style render.Style, cfg *Config) *Game {
	return &Game{
		sim:     sim,
		painter: render.NewFlakePainter(style),
		hud:     ui.NewHUD(sim),
		overlay: ui.NewOverlay(sim),
		pacer:   core.NewFixedStep(cfg.GrowthRate),
		env: core.Environment{
			Humidity:    cfg.Humidity,
			Temperature: cfg.Temperature,
		},
		scale:   cfg.Scale,
		seed:    cfg.Seed,
		shotDir: cfg.ShotDir,
	}
}

// Reset replaces the crystal wholesale with a fresh one.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the growth at the paced rate.
// Pausing skips growth steps while the frozen state keeps rendering.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.screenshot()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.overlay.Toggle()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.env.Humidity = core.Clamp(g.env.Humidity+humidityStep, 0, 100)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.env.Humidity = core.Clamp(g.env.Humidity-humidityStep, 0, 100)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.env.Temperature = core.Clamp(g.env.Temperature+temperatureStep, -20, -5)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.env.Temperature = core.Clamp(g.env.Temperature-temperatureStep, -20, -5)
	}

	if g.hud != nil {
		g.hud.Update()
	}

	step := g.pacer.ShouldStep()
	if (step && !g.paused) || g.tickOnce {
		g.sim.Step(g.env)
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current crystal, the guide overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Segments(), g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen, g.scale)
	}
	if g.hud != nil {
		g.hud.Draw(screen, g.env, g.paused, g.shotErr)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return int(float64(s.W) * g.scale), int(float64(s.H) * g.scale)
}

// screenshot renders the current geometry offscreen and saves it with a
// timestamped name, keeping the live frame untouched.
func (g *Game) screenshot() {
	s := g.sim.Size()
	img := render.Flake(s.W, s.H, g.sim.Segments(), g.painter.Style())
	name := time.Now().Format("Snowflake_02-01-06_15-04-05") + ".png"
	g.shotErr = render.SavePNG(filepath.Join(g.shotDir, name), img)
}
