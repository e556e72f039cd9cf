package life

import "gridlife/pkg/core"

// Randomize repopulates the board, setting each cell alive with probability
// density using a non-deterministic source, and resets the generation
// counter. The auxiliary grids are left for the next Step to recompute.
func (e *Engine) Randomize(density float64) {
	core.FillDensity(e.rng, e.cur, density)
	e.generation = 0
	e.rebuildDisplay()
}

// RandomizeSeeded repopulates the board like Randomize but from a fresh
// deterministic generator: the same (seed, density, rows, cols) always
// reproduces the same grid, regardless of what the engine did before.
func (e *Engine) RandomizeSeeded(density float64, seed int64) {
	core.FillDensity(core.NewRNG(seed).Source(), e.cur, density)
	e.generation = 0
	e.rebuildDisplay()
}

// FillEdges sets each cell on the outermost ring of the grid alive
// independently with the given probability. Interior cells are untouched,
// and edge cells that miss the roll keep their current state.
func (e *Engine) FillEdges(probability float64) {
	for row := 0; row < e.rows; row++ {
		for col := 0; col < e.cols; col++ {
			if row != 0 && row != e.rows-1 && col != 0 && col != e.cols-1 {
				continue
			}
			if e.rng.Float64() < probability {
				e.cur[e.idx(row, col)] = 1
			}
		}
	}
	e.rebuildDisplay()
}

// FillCenter sets cells within a circle centered on the grid, radius
// min(rows, cols)/6, alive independently with the given probability. Cells
// outside the circle are untouched.
func (e *Engine) FillCenter(probability float64) {
	cr, cc := e.rows/2, e.cols/2
	radius := min(e.rows, e.cols) / 6
	rr := radius * radius
	for row := 0; row < e.rows; row++ {
		for col := 0; col < e.cols; col++ {
			dr, dc := row-cr, col-cc
			if dr*dr+dc*dc > rr {
				continue
			}
			if e.rng.Float64() < probability {
				e.cur[e.idx(row, col)] = 1
			}
		}
	}
	e.rebuildDisplay()
}

// Invert flips the alive state of every cell.
func (e *Engine) Invert() {
	for i := range e.cur {
		e.cur[i] ^= 1
	}
	e.rebuildDisplay()
}
