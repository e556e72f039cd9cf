package recording_test

import (
	"context"
	"path/filepath"
	"testing"

	"gridlife/internal/recording"
	"gridlife/internal/recording/sqlite"
	"gridlife/pkg/life"
)

func TestRecorderCapturesSteps(t *testing.T) {
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "recordings.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()
	ctx := context.Background()

	e := life.New(8, 8)
	e.PlacePattern(life.Patterns["glider"], 3, 3)

	rec, err := recording.NewRecorder(ctx, store, "glider session", e)
	if err != nil {
		t.Fatalf("new recorder: %v", err)
	}

	if err := rec.Capture(ctx, e); err != nil {
		t.Fatalf("capture initial frame: %v", err)
	}
	for i := 0; i < 4; i++ {
		e.Step()
		if err := rec.Capture(ctx, e); err != nil {
			t.Fatalf("capture frame %d: %v", i+1, err)
		}
	}

	frames, err := store.Frames(ctx, rec.Recording().ID)
	if err != nil {
		t.Fatalf("frames: %v", err)
	}
	if len(frames) != 5 {
		t.Fatalf("frame count = %d, expected 5", len(frames))
	}
	if frames[4].Generation != 4 {
		t.Fatalf("last frame generation = %d, expected 4", frames[4].Generation)
	}
	if frames[0].Population != 5 {
		t.Fatalf("glider population = %d, expected 5", frames[0].Population)
	}
}

func TestLoadFrameRebuildsBoard(t *testing.T) {
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "recordings.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()
	ctx := context.Background()

	src := life.New(6, 7)
	src.RandomizeSeeded(0.4, 9)
	src.Step()

	rec, err := recording.NewRecorder(ctx, store, "replay me", src)
	if err != nil {
		t.Fatalf("new recorder: %v", err)
	}
	if err := rec.Capture(ctx, src); err != nil {
		t.Fatalf("capture: %v", err)
	}

	frames, err := store.Frames(ctx, rec.Recording().ID)
	if err != nil {
		t.Fatalf("frames: %v", err)
	}

	dst := life.New(3, 3)
	if err := recording.LoadFrame(dst, rec.Recording(), frames[0]); err != nil {
		t.Fatalf("load frame: %v", err)
	}
	if dst.Rows() != 6 || dst.Cols() != 7 {
		t.Fatalf("dims = %dx%d, expected 6x7", dst.Rows(), dst.Cols())
	}
	if dst.Generation() != src.Generation() {
		t.Fatalf("generation = %d, expected %d", dst.Generation(), src.Generation())
	}
	for row := 0; row < 6; row++ {
		for col := 0; col < 7; col++ {
			if dst.Cell(row, col) != src.Cell(row, col) {
				t.Fatalf("cell (%d,%d) differs after replay load", row, col)
			}
		}
	}
}
