package life

import (
	"slices"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	e := New(12, 10)
	e.RandomizeSeeded(0.4, 21)
	e.Step()
	e.UpdateFade(4)
	e.Step()
	e.UpdateFade(4)

	snap := e.Snapshot()
	other := New(12, 10)
	if err := other.Restore(snap); err != nil {
		t.Fatalf("restore: %v", err)
	}

	if !slices.Equal(e.cur, other.cur) ||
		!slices.Equal(e.maturity, other.maturity) ||
		!slices.Equal(e.dead, other.dead) ||
		!slices.Equal(e.fade, other.fade) {
		t.Fatal("restored grids differ from the originals")
	}
	if other.Generation() != e.Generation() {
		t.Fatalf("generation = %d, expected %d", other.Generation(), e.Generation())
	}
}

func TestSnapshotHasNoAliasing(t *testing.T) {
	e := New(6, 6)
	e.SetCell(2, 2, true)
	snap := e.Snapshot()

	snap.Alive[0] = 1
	snap.Fade[0] = 99
	if e.Cell(0, 0) || e.FadeLevel(0, 0) != 0 {
		t.Fatal("mutating the snapshot must not affect the engine")
	}

	e.SetCell(3, 3, true)
	if snap.Alive[e.idx(3, 3)] == 1 {
		t.Fatal("mutating the engine must not affect the snapshot")
	}
}

func TestRestoreResizesToSnapshotShape(t *testing.T) {
	src := New(9, 4)
	src.RandomizeSeeded(0.5, 3)
	snap := src.Snapshot()

	dst := New(5, 5)
	if err := dst.Restore(snap); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if dst.Rows() != 9 || dst.Cols() != 4 {
		t.Fatalf("dims = %dx%d, expected 9x4", dst.Rows(), dst.Cols())
	}
	if !slices.Equal(dst.cur, src.cur) {
		t.Fatal("restored board differs from source")
	}
}

func TestRestoreRejectsMalformedSnapshots(t *testing.T) {
	e := New(4, 4)
	e.SetCell(1, 1, true)

	bad := e.Snapshot()
	bad.Maturity = bad.Maturity[:3]
	if err := e.Restore(bad); err == nil {
		t.Fatal("expected error for mismatched grid length")
	}
	if err := e.Restore(Snapshot{Rows: 0, Cols: 4}); err == nil {
		t.Fatal("expected error for non-positive shape")
	}
	// A rejected restore leaves the engine untouched.
	if !e.Cell(1, 1) || e.Rows() != 4 {
		t.Fatal("failed restore must not corrupt engine state")
	}
}
