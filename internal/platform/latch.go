package platform

import (
	"github.com/vovakirdan/tsee/internal/core"
	"github.com/vovakirdan/tsee/internal/engine"
)

// DefaultHold is how many frames a direction stays pressed after its key
// event. Terminals report key presses and repeats but never releases.
const DefaultHold = 6

// Latch turns a stream of key presses into held directions and one-shot
// engine actions. Back-ends feed it with Press from their event source and
// call Flush once per Handle and Apply once per HandleInput.
type Latch struct {
	hold    int
	held    map[core.Action]int
	pending core.InputFrame
}

// NewLatch creates a latch that holds directions for hold frames.
// A non-positive hold uses DefaultHold.
func NewLatch(hold int) *Latch {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &Latch{
		hold:    hold,
		held:    make(map[core.Action]int),
		pending: core.NewInputFrame(),
	}
}

// Press records one key press.
func (l *Latch) Press(a core.Action) {
	switch a {
	case core.ActionNone:
	case core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown:
		l.held[a] = l.hold
	default:
		l.pending.Set(a)
	}
}

// Flush dispatches the pending one-shot actions.
func (l *Latch) Flush(e *engine.Engine) {
	Dispatch(e, l.pending)
	l.pending.Clear()
}

// Apply counts the held directions down by one frame and writes them to the
// player's movement.
func (l *Latch) Apply(e *engine.Engine) {
	frame := core.NewInputFrame()
	for a, n := range l.held {
		if n <= 0 {
			continue
		}
		frame.Set(a)
		l.held[a] = n - 1
	}
	// A fresh opposite press cancels the stale direction.
	if frame.Has(core.ActionLeft) && frame.Has(core.ActionRight) {
		if l.held[core.ActionLeft] > l.held[core.ActionRight] {
			delete(frame.Actions, core.ActionRight)
		} else {
			delete(frame.Actions, core.ActionLeft)
		}
	}
	if e.Player != nil {
		e.Player.Movement = Movement(frame)
	}
}

// Reset drops every held direction and pending action.
func (l *Latch) Reset() {
	clear(l.held)
	l.pending.Clear()
}
