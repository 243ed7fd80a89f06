package console

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tsee/internal/core"
	"github.com/vovakirdan/tsee/internal/engine"
	"github.com/vovakirdan/tsee/internal/world"
)

func newEngine(t *testing.T, w, h int) *engine.Engine {
	t.Helper()
	e, err := engine.Create(w, h, engine.WithLogger(log.New(io.Discard)))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { e.Close() })
	return e
}

func TestAction(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want core.Action
	}{
		{"left arrow", tcell.KeyLeft, 0, core.ActionLeft},
		{"a", tcell.KeyRune, 'a', core.ActionLeft},
		{"right arrow", tcell.KeyRight, 0, core.ActionRight},
		{"d", tcell.KeyRune, 'd', core.ActionRight},
		{"space", tcell.KeyRune, ' ', core.ActionUp},
		{"down", tcell.KeyDown, 0, core.ActionDown},
		{"f3", tcell.KeyF3, 0, core.ActionDebug},
		{"backtick", tcell.KeyRune, '`', core.ActionDebug},
		{"tab", tcell.KeyTab, 0, core.ActionMenu},
		{"escape", tcell.KeyEscape, 0, core.ActionQuit},
		{"ctrl+c", tcell.KeyCtrlC, 0, core.ActionQuit},
		{"q", tcell.KeyRune, 'q', core.ActionQuit},
		{"unbound rune", tcell.KeyRune, 'z', core.ActionNone},
		{"unbound key", tcell.KeyF12, 0, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Action(tt.key, tt.r); got != tt.want {
				t.Errorf("Action() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPresentBeforeStart(t *testing.T) {
	term := NewTerminal(nil)
	if err := term.Present(core.NewScreen(2, 2)); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Present() = %v, want ErrNotStarted", err)
	}
	if w, h := term.Size(); w != 0 || h != 0 {
		t.Errorf("Size() = %dx%d before Start", w, h)
	}
	term.Stop()
}

func TestRendererPresentsFrame(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminal(sim)
	e := newEngine(t, 10, 4)
	r := NewRenderer(term)

	if err := r.Init(e); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer r.Shutdown()

	sw, sh := sim.Size()
	if e.Window.Width != sw || e.Window.Height != sh {
		t.Errorf("window = %dx%d, want screen size %dx%d", e.Window.Width, e.Window.Height, sw, sh)
	}

	ent := world.NewEntity(0, 0, 1, 1, core.AttribUI)
	ent.Screen = core.NewRect(3, 1, 1, 1)
	ent.Sprite = world.Sprite{Glyph: 'X', Color: core.ColorRed}
	e.World.Add(ent)

	r.Render(e)

	cells, w, _ := sim.GetContents()
	got := cells[1*w+3]
	if len(got.Runes) == 0 || got.Runes[0] != 'X' {
		t.Errorf("cell (3,1) = %q, want X", got.Runes)
	}

	r.DestroyWindow(e)
	r.Render(e)
}

func TestInputResize(t *testing.T) {
	e := newEngine(t, 80, 24)
	term := NewTerminal(nil)
	in := NewInput(term)
	if err := in.Init(e); err != nil {
		t.Fatalf("Init: %v", err)
	}

	term.events <- tcell.NewEventResize(120, 30)
	in.Handle(e)

	if e.Window.Width != 120 || e.Window.Height != 30 {
		t.Errorf("window = %dx%d, want 120x30", e.Window.Width, e.Window.Height)
	}
}

func TestInputRelease(t *testing.T) {
	e := newEngine(t, 80, 24)
	term := NewTerminal(nil)
	in := NewInput(term)
	in.Init(e)

	term.events <- tcell.NewEventResize(100, 20)
	in.Release(e)

	if n := len(term.Events()); n != 0 {
		t.Errorf("%d events left after Release", n)
	}
	in.HandleInput(e)
	if e.Player.Movement.Any() {
		t.Errorf("movement = %+v, want none", e.Player.Movement)
	}
}
