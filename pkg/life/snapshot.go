package life

import (
	"fmt"
	"slices"
)

// Snapshot is a deep, fully independent copy of engine state. Mutating a
// snapshot never affects the engine it came from, and vice versa. The struct
// is JSON-taggable so persistence layers can serialize it directly.
type Snapshot struct {
	Rows       int     `json:"rows"`
	Cols       int     `json:"cols"`
	Generation int     `json:"generation"`
	Alive      []uint8 `json:"alive"`
	Maturity   []int   `json:"maturity"`
	DeadTime   []int   `json:"deadTime"`
	Fade       []int   `json:"fade"`
}

// Snapshot copies the board, all three auxiliary grids, and the generation
// counter.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Rows:       e.rows,
		Cols:       e.cols,
		Generation: e.generation,
		Alive:      slices.Clone(e.cur),
		Maturity:   slices.Clone(e.maturity),
		DeadTime:   slices.Clone(e.dead),
		Fade:       slices.Clone(e.fade),
	}
}

// Restore replaces all engine state from the snapshot atomically, adopting
// the snapshot's generation counter. When the snapshot shape differs from
// the current one the engine resizes itself to match. A snapshot whose
// internal grids disagree with its declared shape is rejected with an error
// and the engine is left unchanged.
func (e *Engine) Restore(s Snapshot) error {
	if s.Rows < 1 || s.Cols < 1 {
		return fmt.Errorf("life: snapshot has non-positive shape %dx%d", s.Rows, s.Cols)
	}
	total := s.Rows * s.Cols
	if len(s.Alive) != total || len(s.Maturity) != total ||
		len(s.DeadTime) != total || len(s.Fade) != total {
		return fmt.Errorf("life: snapshot grids do not match declared shape %dx%d", s.Rows, s.Cols)
	}
	if s.Rows != e.rows || s.Cols != e.cols {
		e.alloc(s.Rows, s.Cols)
	}
	copy(e.cur, s.Alive)
	copy(e.maturity, s.Maturity)
	copy(e.dead, s.DeadTime)
	copy(e.fade, s.Fade)
	e.generation = s.Generation
	e.rebuildDisplay()
	return nil
}
