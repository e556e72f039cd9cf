//go:build ebiten

package app

import (
	"context"
	"log"
	"sort"
	"time"

	"gridlife/internal/recording"
	"gridlife/internal/render"
	"gridlife/internal/ui"
	"gridlife/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the life engine to the ebiten.Game interface. It owns pacing
// and input; the engine only advances when Update decides a tick happened.
type Game struct {
	engine  *life.Engine
	painter *render.GridPainter
	overlay *ui.Overlay

	recorder *recording.Recorder

	scale        int
	seed         int64
	density      float64
	fadeDuration int

	fadeOn   bool
	paused   bool
	tickOnce bool

	patternNames []string
	selected     int
	rotation     int
}

// New constructs a Game for the provided engine. A nil recorder disables
// session capture.
func New(engine *life.Engine, cfg *Config, recorder *recording.Recorder) *Game {
	size := engine.Size()
	names := make([]string, 0, len(life.Patterns))
	for name := range life.Patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return &Game{
		engine:       engine,
		painter:      render.NewGridPainter(size.W, size.H),
		overlay:      ui.NewOverlay(engine),
		recorder:     recorder,
		scale:        cfg.Scale,
		seed:         cfg.Seed,
		density:      cfg.Density,
		fadeDuration: cfg.FadeDuration,
		fadeOn:       cfg.FadeDuration > 0,
		patternNames: names,
	}
}

// Reset reseeds the board deterministically with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.engine.Clear()
	g.engine.RandomizeSeeded(g.density, seed)
	g.tickOnce = false
}

func (g *Game) cursorCell() (int, int) {
	x, y := ebiten.CursorPosition()
	return y / g.scale, x / g.scale
}

func (g *Game) handleKeys() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.engine.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		g.engine.Invert()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.engine.FillEdges(0.4)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.engine.FillCenter(0.6)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.fadeOn = !g.fadeOn
		if !g.fadeOn {
			g.engine.ClearTracking()
		}
	}

	for i := 0; i < len(g.patternNames) && i < 9; i++ {
		if inpututil.IsKeyJustPressed(ebiten.Key(int(ebiten.KeyDigit1) + i)) {
			g.selected = i
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.rotation = (g.rotation + 90) % 360
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.rotation = (g.rotation + 270) % 360
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		row, col := g.cursorCell()
		pattern := life.Patterns[g.patternNames[g.selected]].Rotate(g.rotation)
		g.engine.PlacePattern(pattern, row, col)
	}
	return nil
}

func (g *Game) handleMouse() {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		row, col := g.cursorCell()
		g.engine.SetCell(row, col, true)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		row, col := g.cursorCell()
		g.engine.SetCell(row, col, false)
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if err := g.handleKeys(); err != nil {
		return err
	}
	g.handleMouse()

	if g.overlay != nil {
		g.overlay.Update()
	}

	if (!g.paused) || g.tickOnce {
		g.engine.Step()
		if g.fadeOn && g.fadeDuration > 0 {
			g.engine.UpdateFade(g.fadeDuration)
		}
		g.capture()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) capture() {
	if g.recorder == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := g.recorder.Capture(ctx, g.engine); err != nil {
		log.Printf("recording stopped: %v", err)
		g.recorder = nil
	}
}

// Draw renders the current board through the engine palette.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.engine.Cells(), g.engine.Palette(), g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen, g.paused, g.fadeOn, g.patternNames[g.selected])
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.engine.Size()
	return s.W * g.scale, s.H * g.scale
}
