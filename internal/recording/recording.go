// Package recording captures sequences of per-generation board snapshots so
// a session can be replayed later. The engine itself never persists anything;
// this layer owns the storage format and hands frames back to hosts one at a
// time.
package recording

import (
	"context"
	"time"

	"gridlife/pkg/life"
)

// Recording describes one saved session.
type Recording struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Rows       int       `json:"rows"`
	Cols       int       `json:"cols"`
	CreatedAt  time.Time `json:"createdAt"`
	FrameCount int       `json:"frameCount"`
}

// Frame is one captured generation: the board, its generation counter and
// population, and when it was captured.
type Frame struct {
	Index      int       `json:"index"`
	Generation int       `json:"generation"`
	Population int       `json:"population"`
	CapturedAt time.Time `json:"capturedAt"`
	Alive      []uint8   `json:"alive"`
}

// Store persists recordings and their frames.
type Store interface {
	CreateRecording(ctx context.Context, name string, rows, cols int) (Recording, error)
	AppendFrame(ctx context.Context, recordingID int64, frame Frame) error
	ListRecordings(ctx context.Context) ([]Recording, error)
	GetRecording(ctx context.Context, id int64) (Recording, error)
	Frames(ctx context.Context, recordingID int64) ([]Frame, error)
	DeleteRecording(ctx context.Context, id int64) error
	Close() error
}

// Recorder appends one frame per engine step to a store.
type Recorder struct {
	store Store
	rec   Recording
	next  int
}

// NewRecorder creates a recording sized to the engine and returns a Recorder
// that appends to it.
func NewRecorder(ctx context.Context, store Store, name string, e *life.Engine) (*Recorder, error) {
	rec, err := store.CreateRecording(ctx, name, e.Rows(), e.Cols())
	if err != nil {
		return nil, err
	}
	return &Recorder{store: store, rec: rec}, nil
}

// Recording returns the metadata of the recording being written.
func (r *Recorder) Recording() Recording { return r.rec }

// Capture appends the engine's current board as the next frame.
func (r *Recorder) Capture(ctx context.Context, e *life.Engine) error {
	snap := e.Snapshot()
	frame := Frame{
		Index:      r.next,
		Generation: snap.Generation,
		Population: e.Population(),
		CapturedAt: time.Now().UTC(),
		Alive:      snap.Alive,
	}
	if err := r.store.AppendFrame(ctx, r.rec.ID, frame); err != nil {
		return err
	}
	r.next++
	return nil
}

// LoadFrame rebuilds an engine board from a stored frame. The engine is
// resized to the recording's shape when necessary; tracker grids restart
// zeroed since only the board is persisted per frame.
func LoadFrame(e *life.Engine, rec Recording, frame Frame) error {
	total := rec.Rows * rec.Cols
	snap := life.Snapshot{
		Rows:       rec.Rows,
		Cols:       rec.Cols,
		Generation: frame.Generation,
		Alive:      frame.Alive,
		Maturity:   make([]int, total),
		DeadTime:   make([]int, total),
		Fade:       make([]int, total),
	}
	return e.Restore(snap)
}
