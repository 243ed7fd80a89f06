package tui

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tsee/internal/core"
	"github.com/vovakirdan/tsee/internal/engine"
	"github.com/vovakirdan/tsee/internal/platform"
	"github.com/vovakirdan/tsee/internal/world"
)

func newInputEngine(t *testing.T) (*engine.Engine, *Terminal, *Input) {
	t.Helper()
	e, err := engine.Create(80, 24, engine.WithLogger(log.New(io.Discard)))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { e.Close() })

	term := NewTerminal()
	in := NewInput(term, DefaultKeyMap())
	if err := in.Init(e); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return e, term, in
}

func TestInputHoldsDirection(t *testing.T) {
	e, term, in := newInputEngine(t)
	term.keys <- tea.KeyMsg{Type: tea.KeyRight}

	in.Handle(e)
	for i := 0; i < platform.DefaultHold; i++ {
		in.HandleInput(e)
		if !e.Player.Movement.Right {
			t.Fatalf("frame %d: right should still be held", i)
		}
	}

	in.HandleInput(e)
	if e.Player.Movement.Any() {
		t.Errorf("movement = %+v, want released after %d frames", e.Player.Movement, platform.DefaultHold)
	}
}

func TestInputOppositeDirection(t *testing.T) {
	e, term, in := newInputEngine(t)

	term.keys <- tea.KeyMsg{Type: tea.KeyRight}
	in.Handle(e)
	in.HandleInput(e)

	term.keys <- tea.KeyMsg{Type: tea.KeyLeft}
	in.Handle(e)
	in.HandleInput(e)

	if !e.Player.Movement.Left || e.Player.Movement.Right {
		t.Errorf("movement = %+v, newest press should win", e.Player.Movement)
	}
}

func TestInputDispatchesEngineActions(t *testing.T) {
	e, term, in := newInputEngine(t)
	e.UI.Toolbar = []*engine.ToolbarEntry{{Text: world.NewText("Game", "", 0, 0, core.ColorWhite)}}

	term.keys <- tea.KeyMsg{Type: tea.KeyF3}
	term.keys <- tea.KeyMsg{Type: tea.KeyTab}
	in.Handle(e)

	if !e.Debug.Active {
		t.Error("f3 should toggle debug on")
	}
	if !e.UI.Toolbar[0].Open {
		t.Error("tab should open the first toolbar entry")
	}

	term.keys <- tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	in.Handle(e)
	if e.Running() {
		t.Error("q should request quit")
	}
}

func TestInputResize(t *testing.T) {
	e, term, in := newInputEngine(t)
	term.sizes <- tea.WindowSizeMsg{Width: 120, Height: 30}

	in.Handle(e)

	if e.Window.Width != 120 || e.Window.Height != 30 {
		t.Errorf("window = %dx%d, want 120x30", e.Window.Width, e.Window.Height)
	}
}

func TestInputPacesFrames(t *testing.T) {
	e, _, in := newInputEngine(t)
	e.Window.FPS = 20
	e.Window.LastRender = time.Now()

	start := time.Now()
	in.Handle(e)

	if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
		t.Errorf("Handle returned after %v, want about 50ms", elapsed)
	}
}

func TestInputRelease(t *testing.T) {
	e, term, in := newInputEngine(t)
	term.keys <- tea.KeyMsg{Type: tea.KeyRight}
	in.Handle(e)

	term.keys <- tea.KeyMsg{Type: tea.KeyLeft}
	in.Release(e)
	in.HandleInput(e)

	if e.Player.Movement.Any() {
		t.Errorf("movement = %+v, want none after Release", e.Player.Movement)
	}
	if len(term.keys) != 0 {
		t.Error("Release should drain queued keys")
	}
}
