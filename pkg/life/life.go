// Package life implements Conway's Game of Life on a bounded grid, extended
// with the per-cell bookkeeping renderers want: how long each cell has been
// continuously alive, how long it has been continuously dead, and a decaying
// trail left behind by recently dead cells.
//
// Edges are hard boundaries. Cells outside the grid count as dead when
// neighbors are tallied; nothing wraps around. The engine performs no I/O and
// spawns no goroutines: it is a plain value meant to be owned and driven by a
// single host loop, which decides when to step, pause, and read state.
package life

import (
	"fmt"
	"math/rand/v2"
	"time"

	"gridlife/pkg/core"
)

// DefaultDensity is the live-cell probability used by Reset.
const DefaultDensity = 0.3

// Engine holds the live/dead grid plus three auxiliary grids of identical
// shape, all stored row-major. The auxiliary grids are only ever advanced by
// Step and UpdateFade; single-cell edits between steps deliberately leave
// them alone so drawing tools cannot disturb trail or maturity bookkeeping.
type Engine struct {
	rows, cols int

	cur []uint8
	nxt []uint8

	maturity []int
	dead     []int
	fade     []int

	generation int

	// span of the most recent UpdateFade call, used to band trail
	// brightness for the display buffer.
	fadeSpan int

	display []uint8
	rng     *rand.Rand
}

// New allocates an engine with every cell dead and generation zero. It
// panics when either dimension is smaller than one: a non-positive grid has
// no valid semantics and indicates a programming error in the caller.
func New(rows, cols int) *Engine {
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("life: non-positive grid %dx%d", rows, cols))
	}
	e := &Engine{rng: core.NewRNG(time.Now().UnixNano()).Source()}
	e.alloc(rows, cols)
	return e
}

func (e *Engine) alloc(rows, cols int) {
	total := rows * cols
	e.rows, e.cols = rows, cols
	e.cur = make([]uint8, total)
	e.nxt = make([]uint8, total)
	e.maturity = make([]int, total)
	e.dead = make([]int, total)
	e.fade = make([]int, total)
	e.display = make([]uint8, total)
	e.generation = 0
}

// Rows reports the grid height.
func (e *Engine) Rows() int { return e.rows }

// Cols reports the grid width.
func (e *Engine) Cols() int { return e.cols }

// Generation reports how many completed steps the current board has seen.
func (e *Engine) Generation() int { return e.generation }

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "life" }

// Size returns the grid dimensions in render order (W = cols, H = rows).
func (e *Engine) Size() core.Size { return core.Size{W: e.cols, H: e.rows} }

// Cells exposes the display buffer of palette indices. See Palette.
func (e *Engine) Cells() []uint8 { return e.display }

// Reset clears the board and reseeds it deterministically at DefaultDensity.
func (e *Engine) Reset(seed int64) {
	e.Clear()
	e.RandomizeSeeded(DefaultDensity, seed)
}

// Resize rebuilds all four grids at the new shape with every cell dead and
// all trackers zeroed. Existing content is discarded, not translated, and the
// generation counter restarts at zero. Panics on non-positive dimensions.
func (e *Engine) Resize(rows, cols int) {
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("life: non-positive grid %dx%d", rows, cols))
	}
	e.alloc(rows, cols)
}

// Clear kills every cell, zeroes the auxiliary grids, and resets the
// generation counter. Dimensions are unchanged.
func (e *Engine) Clear() {
	for i := range e.cur {
		e.cur[i] = 0
		e.maturity[i] = 0
		e.dead[i] = 0
		e.fade[i] = 0
		e.display[i] = 0
	}
	e.generation = 0
}

// Population counts the live cells with a full scan. Hosts call this at
// draw cadence, not per cell, so the scan is fine.
func (e *Engine) Population() int {
	count := 0
	for _, v := range e.cur {
		if v == 1 {
			count++
		}
	}
	return count
}

func (e *Engine) inBounds(row, col int) bool {
	return row >= 0 && row < e.rows && col >= 0 && col < e.cols
}

func (e *Engine) idx(row, col int) int { return row*e.cols + col }

// Cell reports whether the cell at (row, col) is alive. Out-of-range
// coordinates read as dead so brush operations near edges never need their
// own bounds checks.
func (e *Engine) Cell(row, col int) bool {
	if !e.inBounds(row, col) {
		return false
	}
	return e.cur[e.idx(row, col)] == 1
}

// SetCell forces the cell to the given state. Out-of-range coordinates are a
// no-op. The auxiliary trackers are left untouched; they only advance on the
// next Step/UpdateFade.
func (e *Engine) SetCell(row, col int, alive bool) {
	if !e.inBounds(row, col) {
		return
	}
	i := e.idx(row, col)
	e.cur[i] = 0
	if alive {
		e.cur[i] = 1
	}
	e.refreshCell(i)
}

// ToggleCell flips the cell's alive state, no-op out of range.
func (e *Engine) ToggleCell(row, col int) {
	if !e.inBounds(row, col) {
		return
	}
	i := e.idx(row, col)
	e.cur[i] ^= 1
	e.refreshCell(i)
}

// Maturity reports the consecutive generations the cell has remained alive,
// not counting the generation it was born (0 on its first alive generation).
// Out-of-range coordinates report 0.
func (e *Engine) Maturity(row, col int) int {
	if !e.inBounds(row, col) {
		return 0
	}
	return e.maturity[e.idx(row, col)]
}

// DeadTime reports the consecutive full generations the cell has remained
// dead; 0 means the cell died on the most recent step (or the aux grids are
// fresh). Out-of-range coordinates report 0.
func (e *Engine) DeadTime(row, col int) int {
	if !e.inBounds(row, col) {
		return 0
	}
	return e.dead[e.idx(row, col)]
}

// FadeLevel reports the remaining trail countdown for the cell, 0 when no
// trail is visible or the coordinates are out of range.
func (e *Engine) FadeLevel(row, col int) int {
	if !e.inBounds(row, col) {
		return 0
	}
	return e.fade[e.idx(row, col)]
}

func (e *Engine) liveNeighbors(row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if r < 0 || c < 0 || r >= e.rows || c >= e.cols {
				continue
			}
			n += int(e.cur[r*e.cols+c])
		}
	}
	return n
}

// Step advances the board one generation under B3/S23, computing the next
// grid entirely from the previous one (double buffered, never in place).
// The maturity and dead-time grids are updated from the old→new transition
// of each cell, then the generation counter increments.
func (e *Engine) Step() {
	for row := 0; row < e.rows; row++ {
		for col := 0; col < e.cols; col++ {
			i := e.idx(row, col)
			n := e.liveNeighbors(row, col)
			wasAlive := e.cur[i] == 1
			next := uint8(0)
			if (wasAlive && (n == 2 || n == 3)) || (!wasAlive && n == 3) {
				next = 1
			}
			e.nxt[i] = next

			switch {
			case wasAlive && next == 1:
				e.maturity[i]++
			case !wasAlive && next == 0:
				e.dead[i]++
			default:
				// the cell just died or was just born
				e.maturity[i] = 0
				e.dead[i] = 0
			}
		}
	}
	e.cur, e.nxt = e.nxt, e.cur
	e.generation++
	e.rebuildDisplay()
}

// UpdateFade advances every cell's trail countdown. Alive cells never carry
// a trail; a cell that died on the most recent Step (dead-time 0) starts a
// fresh trail at duration; an already fading dead cell decays by one, floored
// at zero. Each cell's countdown is anchored to its own death generation.
//
// The just-died test reads the dead-time grid that Step maintains, so hosts
// must call UpdateFade exactly once, immediately after Step, within the same
// tick. Calling it on its own or more than once per generation restarts
// trails that should be decaying.
func (e *Engine) UpdateFade(duration int) {
	if duration < 1 {
		panic(fmt.Sprintf("life: non-positive fade duration %d", duration))
	}
	e.fadeSpan = duration
	for i := range e.fade {
		switch {
		case e.cur[i] == 1:
			e.fade[i] = 0
		case e.dead[i] == 0:
			e.fade[i] = duration
		case e.fade[i] > 0:
			e.fade[i]--
		}
	}
	e.rebuildDisplay()
}

// ClearTracking zeroes the fade grid without touching the board, the
// simulation trackers, or the generation counter. Hosts call it when the
// trail visualization is switched off so stale trails do not reappear later.
func (e *Engine) ClearTracking() {
	for i := range e.fade {
		e.fade[i] = 0
	}
	e.rebuildDisplay()
}
