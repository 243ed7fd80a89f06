package tui

import (
	"strings"
	"time"

	"github.com/vovakirdan/tsee/internal/engine"
	"github.com/vovakirdan/tsee/internal/platform"
)

// Input is both the event source and the input mapper of the terminal
// back-end. Handle drains terminal events until the frame deadline, which
// also paces the main loop; HandleInput turns the held directions into the
// player's movement.
type Input struct {
	term  *Terminal
	keys  KeyMap
	latch *platform.Latch
}

var (
	_ engine.EventSource = (*Input)(nil)
	_ engine.InputMapper = (*Input)(nil)
)

// NewInput creates an input source reading from term.
func NewInput(term *Terminal, keys KeyMap) *Input {
	return &Input{term: term, keys: keys}
}

// Init implements engine.EventSource and engine.InputMapper.
func (in *Input) Init(*engine.Engine) error {
	if in.latch == nil {
		in.latch = platform.NewLatch(platform.DefaultHold)
	}
	return nil
}

// Handle implements engine.EventSource.
func (in *Input) Handle(e *engine.Engine) {
	deadline := time.Now()
	if !e.Window.LastRender.IsZero() {
		deadline = e.Window.LastRender.Add(frameInterval(e.Window.FPS))
	}

	wait := time.Until(deadline)
	if wait < 0 {
		wait = 0
	}
	timer := time.NewTimer(wait)
	defer timer.Stop()

drain:
	for {
		select {
		case msg := <-in.term.Keys():
			in.latch.Press(in.keys.Action(msg))
		case size := <-in.term.Sizes():
			e.Resize(size.Width, size.Height)
		case <-timer.C:
			break drain
		}
	}
	in.drainReady(e)

	in.latch.Flush(e)

	if in.term.Exited() {
		e.RequestQuit()
	}
}

// drainReady consumes events that are already queued without waiting.
func (in *Input) drainReady(e *engine.Engine) {
	for {
		select {
		case msg := <-in.term.Keys():
			in.latch.Press(in.keys.Action(msg))
		case size := <-in.term.Sizes():
			e.Resize(size.Width, size.Height)
		default:
			return
		}
	}
}

// HandleInput implements engine.InputMapper.
func (in *Input) HandleInput(e *engine.Engine) {
	in.latch.Apply(e)
}

// Release implements engine.EventSource.
func (in *Input) Release(*engine.Engine) {
	in.latch.Reset()
	for {
		select {
		case <-in.term.Keys():
		case <-in.term.Sizes():
		default:
			return
		}
	}
}

// HelpLine formats the short help of keys for the on-screen help text.
func HelpLine(keys KeyMap) string {
	parts := make([]string, 0, len(keys.ShortHelp()))
	for _, b := range keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
