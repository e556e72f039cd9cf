// Package term provides an interactive terminal front end for the life
// engine, built on gocui views with aurora-colored cells.
package term

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"gridlife/pkg/core"
	"gridlife/pkg/life"
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// Options configures the terminal UI.
type Options struct {
	TPS          int
	Density      float64
	Seed         int64
	FadeDuration int
}

// UI renders the engine into a gocui layout and drives stepping.
type UI struct {
	engine *life.Engine
	g      *gocui.Gui
	k      []keyBinding
	opts   Options

	fadeOn bool
	stopCh chan struct{}
}

// New constructs the terminal UI around an engine. It panics when the
// terminal cannot be initialized; the caller has no way to continue.
func New(engine *life.Engine, opts Options) *UI {
	t := &UI{
		engine: engine,
		opts:   opts,
		fadeOn: opts.FadeDuration > 0,
	}

	var err error
	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}
	t.g.Mouse = true

	t.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'n', "N", "Next step", t.cmdStep, ""},
		{'r', "R", "Run", t.cmdRun, ""},
		{'s', "S", "Stop", t.cmdStop, ""},
		{'c', "C", "Clear", t.cmdClear, ""},
		{'w', "W", "Randomize", t.cmdRandomize, ""},
		{'i', "I", "Invert", t.cmdInvert, ""},
		{'f', "F", "Toggle trail", t.cmdToggleFade, ""},
		{gocui.MouseLeft, "MOUSE", "Toggle cell", t.cmdMouseToggle, "board"},
	}
	t.g.SetManagerFunc(t.layout)
	t.initKeyBindings()

	return t
}

func (t *UI) initKeyBindings() {
	for _, kb := range t.k {
		h := kb.handler
		err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone,
			func(gui *gocui.Gui, view *gocui.View) error { return h(view) })
		if err != nil {
			log.Panicln(err)
		}
	}
}

// Start runs the UI main loop until the user quits.
func (t *UI) Start() {
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	t.g.Close()
}

func (t *UI) cmdQuit(*gocui.View) error {
	t.stopLoop()
	return gocui.ErrQuit
}

func (t *UI) cmdStep(*gocui.View) error {
	t.stepOnce()
	return nil
}

func (t *UI) cmdRun(*gocui.View) error {
	if t.stopCh != nil {
		return nil
	}
	stop := make(chan struct{})
	t.stopCh = stop
	go t.loop(stop)
	return nil
}

func (t *UI) cmdStop(*gocui.View) error {
	t.stopLoop()
	t.renderStatus()
	return nil
}

func (t *UI) stopLoop() {
	if t.stopCh != nil {
		close(t.stopCh)
		t.stopCh = nil
	}
}

func (t *UI) cmdClear(*gocui.View) error {
	t.engine.Clear()
	t.renderAll()
	return nil
}

func (t *UI) cmdRandomize(*gocui.View) error {
	t.engine.RandomizeSeeded(t.opts.Density, time.Now().UnixNano())
	t.renderAll()
	return nil
}

func (t *UI) cmdInvert(*gocui.View) error {
	t.engine.Invert()
	t.renderAll()
	return nil
}

func (t *UI) cmdToggleFade(*gocui.View) error {
	t.fadeOn = !t.fadeOn
	if !t.fadeOn {
		t.engine.ClearTracking()
	}
	t.renderAll()
	return nil
}

func (t *UI) cmdMouseToggle(v *gocui.View) error {
	if v == nil {
		return nil
	}
	col, row := v.Cursor()
	t.engine.ToggleCell(row, col)
	t.renderField()
	return nil
}

// loop advances the simulation at the configured rate until stopped. All
// engine access happens inside g.Update callbacks, which gocui serializes
// with the key handlers, so the engine stays single-caller.
func (t *UI) loop(stop chan struct{}) {
	ticker := core.NewFixedStep(t.opts.TPS)
	for {
		select {
		case <-stop:
			return
		default:
		}
		if ticker.ShouldStep() {
			t.g.Update(func(*gocui.Gui) error {
				t.stepOnce()
				return nil
			})
		}
		time.Sleep(2 * time.Millisecond)
	}
}

func (t *UI) stepOnce() {
	t.engine.Step()
	if t.fadeOn && t.opts.FadeDuration > 0 {
		t.engine.UpdateFade(t.opts.FadeDuration)
	}
	t.renderAll()
}

func (t *UI) renderAll() {
	t.renderField()
	t.renderConfiguration()
	t.renderStatus()
}

func cellGlyph(e *life.Engine, row, col int) string {
	if e.Cell(row, col) {
		switch m := e.Maturity(row, col); {
		case m < 2:
			return aurora.BrightGreen("█").String()
		case m < 6:
			return aurora.Green("█").String()
		case m < 12:
			return aurora.Cyan("█").String()
		default:
			return aurora.Blue("█").String()
		}
	}
	if fade := e.FadeLevel(row, col); fade > 0 {
		switch {
		case fade > 4:
			return aurora.White("▓").String()
		case fade > 2:
			return "▒"
		default:
			return "░"
		}
	}
	return " "
}

func (t *UI) renderField() {
	v, err := t.g.View("board")
	if err != nil {
		return
	}
	v.Clear()

	maxW, maxH := v.Size()
	rows, cols := t.engine.Rows(), t.engine.Cols()
	crop := cols > maxW || rows > maxH

	var b bytes.Buffer
	for row := 0; row < rows && row < maxH; row++ {
		if row != 0 {
			b.WriteByte('\n')
		}
		if crop && row == maxH-1 {
			b.WriteString(aurora.Red("The board is larger than the viewing area").String())
			break
		}
		for col := 0; col < cols && col < maxW; col++ {
			b.WriteString(cellGlyph(t.engine, row, col))
		}
	}
	fmt.Fprint(v, b.String())
}

func (t *UI) renderStatus() {
	v, err := t.g.View("status")
	if err != nil {
		return
	}
	v.Clear()
	mode := aurora.Colorize("waiting", aurora.BlueFg).String()
	if t.stopCh != nil {
		mode = aurora.Colorize("running", aurora.CyanFg).String()
	}
	trail := "off"
	if t.fadeOn {
		trail = fmt.Sprintf("%d steps", t.opts.FadeDuration)
	}
	fmt.Fprintln(v, t.renderProp("Generation", "%v", t.engine.Generation()))
	fmt.Fprintln(v, t.renderProp("Live cells", "%v", t.engine.Population()))
	fmt.Fprintln(v, t.renderProp("Trail", "%v", trail))
	fmt.Fprintln(v, t.renderProp("Mode", "%v", mode))
}

func (t *UI) renderConfiguration() {
	v, err := t.g.View("configuration")
	if err != nil {
		return
	}
	v.Clear()
	fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", t.engine.Rows(), t.engine.Cols()))
	fmt.Fprintln(v, t.renderProp("Speed", "%v steps/s", t.opts.TPS))
	fmt.Fprintln(v, t.renderProp("Density", "%v", t.opts.Density))
	fmt.Fprintln(v, t.renderProp("Seed", "%v", t.opts.Seed))
}

func (t *UI) renderProp(name string, valueFormat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueFormat, values...)
}

func (t *UI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 26
	minWindowHeight := 16

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView("board")
		return nil
	}
	if _, err := t.headerLayout(g, 3, "gridlife — Conway's Game of Life with trails"); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
	}

	midY := 3 + (maxY-5-3)/2
	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, midY); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
	}
	t.renderConfiguration()

	if v, err := g.SetView("status", 0, midY+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
	}
	t.renderStatus()

	if v, err := g.SetView("board", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Board"
		v.Frame = true
	}
	t.renderField()

	return t.helpLayout(g, maxX, maxY)
}

func (t *UI) headerLayout(g *gocui.Gui, height int, title string) (*gocui.View, error) {
	v, err := g.SetView("header", 0, 0, 60, height-1)
	if err != nil && err != gocui.ErrUnknownView {
		return nil, err
	}
	v.Clear()
	v.Frame = false
	fmt.Fprintln(v, aurora.Bold(title).String())
	return v, nil
}

func (t *UI) helpLayout(g *gocui.Gui, maxX, maxY int) error {
	v, err := g.SetView("help", 0, maxY-4, maxX-1, maxY-1)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	v.Clear()
	v.Frame = true
	v.Title = "Keys"
	for i, kb := range t.k {
		if i != 0 {
			fmt.Fprint(v, "  ")
		}
		fmt.Fprintf(v, "%s %s", aurora.Colorize(kb.name, aurora.YellowFg).String(), kb.descr)
	}
	return nil
}
