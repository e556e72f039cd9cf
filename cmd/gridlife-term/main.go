package main

import (
	"sort"
	"strings"
	"time"

	"github.com/integrii/flaggy"

	"gridlife/internal/term"
	"gridlife/pkg/life"
)

func main() {
	rows := 40
	cols := 120
	tps := 10
	density := life.DefaultDensity
	seed := time.Now().UnixNano()
	fadeDuration := 6
	pattern := ""

	names := make([]string, 0, len(life.Patterns))
	for name := range life.Patterns {
		names = append(names, name)
	}
	sort.Strings(names)

	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&rows, "y", "rows", "Number of board rows")
	flaggy.Int(&cols, "x", "cols", "Number of board columns")
	flaggy.Int(&tps, "t", "tps", "Simulation speed in steps per second")
	flaggy.Float64(&density, "d", "density", "Live-cell density for the initial random board (0..1)")
	flaggy.Int64(&seed, "s", "seed", "Deterministic seed for the initial board")
	flaggy.Int(&fadeDuration, "f", "fade", "Trail length in steps, 0 disables the trail")
	flaggy.String(&pattern, "p", "pattern", "Start from a pattern instead of a random board ["+strings.Join(names, "|")+"]")
	flaggy.Parse()

	engine := life.New(rows, cols)
	if pattern != "" {
		p, ok := life.Patterns[pattern]
		if !ok {
			flaggy.ShowHelpAndExit("unknown pattern")
		}
		engine.PlacePattern(p, rows/2, cols/2)
	} else {
		engine.RandomizeSeeded(density, seed)
	}

	ui := term.New(engine, term.Options{
		TPS:          tps,
		Density:      density,
		Seed:         seed,
		FadeDuration: fadeDuration,
	})
	ui.Start()
}
