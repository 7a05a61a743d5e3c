//go:build ebiten

package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"toothpick-fractal/internal/config"
	"toothpick-fractal/internal/core"
	"toothpick-fractal/internal/fractal"
	"toothpick-fractal/internal/render"
	"toothpick-fractal/internal/ui"
)

// Game adapts the toothpick simulation to the ebiten.Game interface: it paces
// automatic growth, handles keys, and frames the fractal with a smoothed
// auto-zoom camera.
type Game struct {
	sim     *fractal.Sim
	cfg     config.Config
	painter *render.LinePainter
	hud     *ui.HUD
	pacer   *core.FixedStep

	cam    render.Camera
	camSet bool

	bg color.RGBA

	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided simulation and validated config.
func New(sim *fractal.Sim, cfg config.Config) *Game {
	fg, bg := cfg.Colors()
	return &Game{
		sim:     sim,
		cfg:     cfg,
		painter: render.NewLinePainter(fg, cfg.ToothpickThickness),
		hud:     ui.NewHUD(sim),
		pacer:   core.NewFixedStep(cfg.GenerationsPerSecond),
		bg:      bg,
	}
}

// Reset restores the seed state and recenters the camera.
func (g *Game) Reset() {
	g.sim.Reset()
	g.camSet = false
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
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
		g.Reset()
	}

	if g.sim.Generation() < g.cfg.MaxGenerations {
		if g.tickOnce {
			g.sim.Step()
		} else if !g.paused && g.pacer.ShouldStep() {
			g.sim.Step()
		}
	}
	g.tickOnce = false
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bg)

	w := float64(g.cfg.WindowWidth)
	h := float64(g.cfg.WindowHeight)

	if g.cfg.AutoZoom {
		target := render.FitZoom(g.sim.Bounds(), w, h, g.cfg.ZoomPadding)
		if !g.camSet {
			g.cam = target
			g.camSet = true
		} else {
			g.cam.Approach(target, g.cfg.ZoomSpeed)
		}
	} else {
		g.cam = render.Camera{Scale: 1}
	}

	g.painter.Draw(screen, g.sim, g.cam)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.WindowWidth, g.cfg.WindowHeight
}
