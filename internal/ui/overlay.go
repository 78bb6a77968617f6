//go:build ebiten

package ui

import (
	"image/color"

	"pixlife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type frozenBorderProvider interface {
	BorderFrozen() bool
}

// Overlay tints the border ring of cells that the stepper never rewrites.
// B toggles it.
type Overlay struct {
	sim   core.Sim
	scale int
	show  bool
	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		o.show = !o.show
	}
}

// Draw tints the outermost ring when it is frozen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	p, ok := o.sim.(frozenBorderProvider)
	if !ok || !p.BorderFrozen() {
		return
	}
	s := o.sim.Size()
	w, h := float64(s.W*o.scale), float64(s.H*o.scale)
	c := float64(o.scale)
	o.fill(screen, 0, 0, w, c)
	o.fill(screen, 0, h-c, w, c)
	o.fill(screen, 0, c, c, h-2*c)
	o.fill(screen, w-c, c, c, h-2*c)
}

func (o *Overlay) fill(screen *ebiten.Image, x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 160, G: 32, B: 32, A: 160})
	screen.DrawImage(o.pixel, op)
}
