package life

// Pattern is a small 0/1 matrix describing a named Game of Life
// configuration that can be stamped onto the board.
type Pattern [][]uint8

// Rotate90 returns the pattern rotated a quarter turn clockwise:
// rotated[i][j] = p[rows-1-j][i].
func (p Pattern) Rotate90() Pattern {
	if len(p) == 0 {
		return nil
	}
	rows, cols := len(p), len(p[0])
	out := make(Pattern, cols)
	for i := range out {
		out[i] = make([]uint8, rows)
		for j := 0; j < rows; j++ {
			out[i][j] = p[rows-1-j][i]
		}
	}
	return out
}

// Rotate returns the pattern rotated by the given multiple of 90 degrees.
// Negative angles rotate counterclockwise; other angles truncate to the
// nearest quarter turn.
func (p Pattern) Rotate(degrees int) Pattern {
	turns := ((degrees/90)%4 + 4) % 4
	out := p
	for t := 0; t < turns; t++ {
		out = out.Rotate90()
	}
	return out
}

// PlacePattern stamps the pattern onto the board centered at the given cell.
// The anchor is the pattern center rounded down, ones set the matching cell
// alive, zeros leave it unmodified, and cells falling outside the board are
// skipped. Placement is additive; it never clears.
func (e *Engine) PlacePattern(p Pattern, centerRow, centerCol int) {
	if len(p) == 0 {
		return
	}
	top := centerRow - len(p)/2
	left := centerCol - len(p[0])/2
	for i, row := range p {
		for j, v := range row {
			if v != 1 {
				continue
			}
			r, c := top+i, left+j
			if !e.inBounds(r, c) {
				continue
			}
			e.cur[e.idx(r, c)] = 1
			e.refreshCell(e.idx(r, c))
		}
	}
}

func parsePattern(rows ...string) Pattern {
	p := make(Pattern, len(rows))
	for i, row := range rows {
		p[i] = make([]uint8, len(row))
		for j := range row {
			if row[j] == 'O' {
				p[i][j] = 1
			}
		}
	}
	return p
}

// Patterns is the built-in pattern library, keyed by name.
var Patterns = map[string]Pattern{
	"glider": parsePattern(
		".O.",
		"..O",
		"OOO",
	),
	"blinker": parsePattern(
		"OOO",
	),
	"block": parsePattern(
		"OO",
		"OO",
	),
	"toad": parsePattern(
		".OOO",
		"OOO.",
	),
	"beacon": parsePattern(
		"OO..",
		"OO..",
		"..OO",
		"..OO",
	),
	"lwss": parsePattern(
		".O..O",
		"O....",
		"O...O",
		"OOOO.",
	),
	"pulsar": parsePattern(
		"..OOO...OOO..",
		".............",
		"O....O.O....O",
		"O....O.O....O",
		"O....O.O....O",
		"..OOO...OOO..",
		".............",
		"..OOO...OOO..",
		"O....O.O....O",
		"O....O.O....O",
		"O....O.O....O",
		".............",
		"..OOO...OOO..",
	),
}
