package life

import (
	"slices"
	"testing"
)

func TestRandomizeSeededDeterministic(t *testing.T) {
	a := New(24, 32)
	b := New(24, 32)
	a.RandomizeSeeded(0.3, 42)
	b.RandomizeSeeded(0.3, 42)
	if !slices.Equal(a.cur, b.cur) {
		t.Fatal("same seed and density must reproduce the same grid")
	}

	c := New(24, 32)
	c.RandomizeSeeded(0.3, 43)
	if slices.Equal(a.cur, c.cur) {
		t.Fatal("different seeds should produce different grids")
	}
}

func TestRandomizeResetsGeneration(t *testing.T) {
	e := New(8, 8)
	e.Step()
	e.Step()
	e.RandomizeSeeded(0.5, 1)
	if e.Generation() != 0 {
		t.Fatalf("generation = %d, expected 0 after randomize", e.Generation())
	}
}

func TestRandomizeDensityExtremes(t *testing.T) {
	e := New(10, 10)
	e.RandomizeSeeded(1, 5)
	if e.Population() != 100 {
		t.Fatalf("density 1 population = %d, expected 100", e.Population())
	}
	e.RandomizeSeeded(0, 5)
	if e.Population() != 0 {
		t.Fatalf("density 0 population = %d, expected 0", e.Population())
	}
}

func TestFillEdgesTouchesOnlyRing(t *testing.T) {
	e := New(7, 9)
	e.FillEdges(1)
	for row := 0; row < 7; row++ {
		for col := 0; col < 9; col++ {
			onRing := row == 0 || row == 6 || col == 0 || col == 8
			if e.Cell(row, col) != onRing {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", row, col, e.Cell(row, col), onRing)
			}
		}
	}
}

func TestFillEdgesNeverClears(t *testing.T) {
	e := New(5, 5)
	e.SetCell(0, 0, true)
	e.FillEdges(0)
	if !e.Cell(0, 0) {
		t.Fatal("probability 0 must leave existing live cells alone")
	}
}

func TestFillCenterStaysWithinRadius(t *testing.T) {
	e := New(30, 30)
	e.FillCenter(1)
	cr, cc, radius := 15, 15, 5
	for row := 0; row < 30; row++ {
		for col := 0; col < 30; col++ {
			dr, dc := row-cr, col-cc
			inCircle := dr*dr+dc*dc <= radius*radius
			if e.Cell(row, col) != inCircle {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", row, col, e.Cell(row, col), inCircle)
			}
		}
	}
}

func TestInvert(t *testing.T) {
	e := New(4, 4)
	e.SetCell(1, 1, true)
	e.Invert()
	if e.Cell(1, 1) {
		t.Fatal("live cell should have been flipped dead")
	}
	if e.Population() != 15 {
		t.Fatalf("population = %d, expected 15", e.Population())
	}
}
