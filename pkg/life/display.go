package life

import "image/color"

// Display buffer encoding: index 0 is a plain dead cell, indices
// [displayFadeBase, displayAliveBase) are trail brightness bands, and
// indices from displayAliveBase up encode alive cells banded by maturity.
const (
	displayDead      = 0
	displayFadeBase  = 1
	displayFadeBands = 4
	displayAliveBase = displayFadeBase + displayFadeBands
	displayAgeBands  = 8
)

var lifePalette = buildLifePalette()

// Palette exposes the color palette matching the Cells display buffer.
func (e *Engine) Palette() []color.RGBA {
	return lifePalette
}

func buildLifePalette() []color.RGBA {
	palette := make([]color.RGBA, displayAliveBase+displayAgeBands)
	palette[displayDead] = color.RGBA{R: 12, G: 12, B: 16, A: 255}

	// Trail bands brighten toward the most recent deaths.
	for band := 0; band < displayFadeBands; band++ {
		v := uint8(30 + band*28)
		palette[displayFadeBase+band] = color.RGBA{R: v / 2, G: v / 2, B: v, A: 255}
	}

	// Alive cells start bright green and cool toward teal as they age.
	for band := 0; band < displayAgeBands; band++ {
		t := float64(band) / float64(displayAgeBands-1)
		palette[displayAliveBase+band] = color.RGBA{
			R: uint8(120 - 90*t),
			G: uint8(230 - 110*t),
			B: uint8(90 + 140*t),
			A: 255,
		}
	}
	return palette
}

func (e *Engine) refreshCell(i int) {
	if e.cur[i] == 1 {
		band := e.maturity[i] / 2
		if band >= displayAgeBands {
			band = displayAgeBands - 1
		}
		e.display[i] = uint8(displayAliveBase + band)
		return
	}
	if e.fade[i] > 0 {
		span := e.fadeSpan
		if span < 1 {
			span = e.fade[i]
		}
		band := e.fade[i] * displayFadeBands / span
		if band >= displayFadeBands {
			band = displayFadeBands - 1
		}
		e.display[i] = uint8(displayFadeBase + band)
		return
	}
	e.display[i] = displayDead
}

func (e *Engine) rebuildDisplay() {
	for i := range e.display {
		e.refreshCell(i)
	}
}
