//go:build ebiten

package ui

import (
	"fmt"

	"gridlife/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws a small status line on top of the simulation view.
type Overlay struct {
	engine *life.Engine
	hidden bool
}

// NewOverlay constructs an overlay reading from the provided engine.
func NewOverlay(engine *life.Engine) *Overlay {
	return &Overlay{engine: engine}
}

// Update toggles overlay visibility.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.hidden = !o.hidden
	}
}

// Draw paints the status line unless the overlay is hidden.
func (o *Overlay) Draw(screen *ebiten.Image, paused, fadeOn bool, pattern string) {
	if o.hidden {
		return
	}
	msg := fmt.Sprintf("gen %d  pop %d  stamp %s",
		o.engine.Generation(), o.engine.Population(), pattern)
	if fadeOn {
		msg += "  trail"
	}
	if paused {
		msg += "  [paused]"
	}
	ebitenutil.DebugPrint(screen, msg)
}
