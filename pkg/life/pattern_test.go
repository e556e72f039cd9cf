package life

import (
	"reflect"
	"testing"
)

func TestRotate90(t *testing.T) {
	p := Pattern{
		{1, 0, 0},
		{1, 1, 0},
	}
	want := Pattern{
		{1, 1},
		{1, 0},
		{0, 0},
	}
	if got := p.Rotate90(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Rotate90 = %v, expected %v", got, want)
	}
}

func TestRotateFullCircleIsIdentity(t *testing.T) {
	p := Patterns["glider"]
	if got := p.Rotate(360); !reflect.DeepEqual(got, p) {
		t.Fatalf("Rotate(360) = %v, expected original %v", got, p)
	}
	if got := p.Rotate(0); !reflect.DeepEqual(got, p) {
		t.Fatal("Rotate(0) must return the pattern unchanged")
	}
}

func TestRotateNegativeAngle(t *testing.T) {
	p := Patterns["lwss"]
	if got, want := p.Rotate(-90), p.Rotate(270); !reflect.DeepEqual(got, want) {
		t.Fatal("Rotate(-90) must equal Rotate(270)")
	}
}

func TestPlacePatternIsAdditive(t *testing.T) {
	e := New(6, 6)
	e.SetCell(0, 0, true)
	// Blinker centered at (2,2) spans (2,1)..(2,3); its zero cells must not
	// clear anything.
	e.SetCell(1, 2, true)
	e.PlacePattern(Patterns["blinker"], 2, 2)
	if !e.Cell(0, 0) || !e.Cell(1, 2) {
		t.Fatal("placement must never clear existing live cells")
	}
	for col := 1; col <= 3; col++ {
		if !e.Cell(2, col) {
			t.Fatalf("blinker cell (2,%d) not placed", col)
		}
	}
	if e.Population() != 5 {
		t.Fatalf("population = %d, expected 5", e.Population())
	}
}

func TestPlacePatternClipsAtEdges(t *testing.T) {
	e := New(6, 6)
	e.PlacePattern(Patterns["glider"], 0, 0)
	// Anchor is (-1,-1); only the cells landing in bounds survive.
	want := map[[2]int]bool{}
	for i, row := range Patterns["glider"] {
		for j, v := range row {
			if v == 1 && i-1 >= 0 && j-1 >= 0 {
				want[[2]int{i - 1, j - 1}] = true
			}
		}
	}
	for row := 0; row < 6; row++ {
		for col := 0; col < 6; col++ {
			if e.Cell(row, col) != want[[2]int{row, col}] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", row, col, e.Cell(row, col), want[[2]int{row, col}])
			}
		}
	}
}

func TestBuiltinPatternsAreRectangular(t *testing.T) {
	for name, p := range Patterns {
		if len(p) == 0 {
			t.Fatalf("pattern %q is empty", name)
		}
		width := len(p[0])
		for i, row := range p {
			if len(row) != width {
				t.Fatalf("pattern %q row %d has width %d, expected %d", name, i, len(row), width)
			}
		}
	}
}
