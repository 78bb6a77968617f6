//go:build ebiten

package app

import (
	"image/color"

	"pixlife/internal/core"
	"pixlife/internal/render"
	"pixlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 200

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud      *ui.HUD
	overlay  *ui.Overlay
	controls *Controls

	onColor  color.Color
	offColor color.Color

	scale int
}

// New constructs a Game for the provided simulation that advances tps
// generations per second. Space only toggles pause when pausable is set.
func New(sim core.Sim, scale, tps int, seed int64, pausable, showHUD bool) *Game {
	gp := render.NewGridPainter(sim.Size().W, sim.Size().H)
	g := &Game{
		sim:      sim,
		painter:  gp,
		overlay:  ui.NewOverlay(sim, scale),
		controls: NewControls(sim, core.NewFixedStep(tps), seed, pausable),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
	}
	if showHUD {
		g.hud = ui.NewHUD(sim, hudWidth)
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) { g.controls.Reset(seed) }

// Update polls input and advances the simulation unless paused.
func (g *Game) Update() error {
	g.overlay.Update()
	if g.hud != nil {
		g.hud.Update()
	}

	in := Input{
		Quit:         inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		TogglePause:  inpututil.IsKeyJustPressed(ebiten.KeySpace),
		StepOnce:     inpututil.IsKeyJustPressed(ebiten.KeyN),
		Reseed:       inpututil.IsKeyJustPressed(ebiten.KeyR),
		ReseedRandom: inpututil.IsKeyJustPressed(ebiten.KeyS),
	}
	if !g.controls.Apply(in) {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current generation. Drawing happens between Updates, so
// it never observes a half-written buffer.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen)
	if g.controls.Paused() {
		ebitenutil.DebugPrintAt(screen, "PAUSED", 4, 4)
	}
	if g.hud != nil {
		g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.ScreenSize()
	return w, h
}

// ScreenSize returns the window size needed for the grid and the panel.
func (g *Game) ScreenSize() (int, int) {
	s := g.sim.Size()
	w := s.W * g.scale
	if g.hud != nil {
		w += hudWidth
	}
	return w, s.H * g.scale
}
