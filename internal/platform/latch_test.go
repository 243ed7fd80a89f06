package platform

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tsee/internal/core"
	"github.com/vovakirdan/tsee/internal/engine"
)

func newLatchEngine(t *testing.T) *engine.Engine {
	t.Helper()
	e, err := engine.Create(80, 24, engine.WithLogger(log.New(io.Discard)))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { e.Close() })
	return e
}

func TestLatchHoldsDirection(t *testing.T) {
	e := newLatchEngine(t)
	l := NewLatch(3)

	l.Press(core.ActionRight)
	for i := 0; i < 3; i++ {
		l.Apply(e)
		if !e.Player.Movement.Right {
			t.Fatalf("frame %d: right should be held", i)
		}
	}
	l.Apply(e)
	if e.Player.Movement.Any() {
		t.Errorf("movement = %+v, want released", e.Player.Movement)
	}
}

func TestLatchNewestDirectionWins(t *testing.T) {
	e := newLatchEngine(t)
	l := NewLatch(0)

	l.Press(core.ActionLeft)
	l.Apply(e)
	l.Press(core.ActionRight)
	l.Apply(e)

	if !e.Player.Movement.Right || e.Player.Movement.Left {
		t.Errorf("movement = %+v, want right only", e.Player.Movement)
	}
}

func TestLatchFlushDispatches(t *testing.T) {
	e := newLatchEngine(t)
	l := NewLatch(DefaultHold)

	l.Press(core.ActionDebug)
	l.Flush(e)
	if !e.Debug.Active {
		t.Error("debug should be toggled on")
	}

	// Flushed actions do not repeat.
	l.Flush(e)
	if !e.Debug.Active {
		t.Error("debug toggled twice by a single press")
	}

	l.Press(core.ActionQuit)
	l.Flush(e)
	if e.Running() {
		t.Error("quit should stop the engine")
	}
}

func TestLatchReset(t *testing.T) {
	e := newLatchEngine(t)
	l := NewLatch(DefaultHold)

	l.Press(core.ActionUp)
	l.Press(core.ActionDebug)
	l.Reset()
	l.Flush(e)
	l.Apply(e)

	if e.Player.Movement.Any() || e.Debug.Active {
		t.Errorf("reset should drop everything, movement=%+v debug=%v", e.Player.Movement, e.Debug.Active)
	}
}
