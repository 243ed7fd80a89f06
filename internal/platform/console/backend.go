package console

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tsee/internal/core"
	"github.com/vovakirdan/tsee/internal/engine"
	"github.com/vovakirdan/tsee/internal/platform"
)

// HelpLine is the on-screen key help for this back-end.
const HelpLine = "←/a left • →/d right • ↑/space jump • tab toolbar • f3 debug • q quit"

// Renderer composes frames and presents them on the terminal.
type Renderer struct {
	term   *Terminal
	screen *core.Screen
	logger *log.Logger
}

var _ engine.Renderer = (*Renderer)(nil)

// NewRenderer creates a renderer drawing to term.
func NewRenderer(term *Terminal) *Renderer {
	return &Renderer{term: term, logger: log.Default()}
}

// Init implements engine.Renderer. It takes over the terminal and sizes the
// window to it.
func (r *Renderer) Init(e *engine.Engine) error {
	r.logger = e.Logger()
	if err := r.term.Start(); err != nil {
		return err
	}
	if w, h := r.term.Size(); w > 0 && h > 0 {
		e.Resize(w, h)
	}
	r.screen = core.NewScreen(e.Window.Width, e.Window.Height)
	return nil
}

// Render implements engine.Renderer.
func (r *Renderer) Render(e *engine.Engine) {
	if r.screen == nil {
		return
	}
	platform.Compose(e, r.screen)
	if err := r.term.Present(r.screen); err != nil {
		r.logger.Warn("failed to present frame", "error", err)
	}
}

// DestroyWindow implements engine.Renderer.
func (r *Renderer) DestroyWindow(*engine.Engine) {
	if r.screen == nil {
		return
	}
	r.screen = nil
	r.term.Blank()
}

// Shutdown implements engine.Renderer.
func (r *Renderer) Shutdown() {
	r.term.Stop()
}

// Input is the event source and input mapper of the tcell back-end.
type Input struct {
	term  *Terminal
	latch *platform.Latch
}

var (
	_ engine.EventSource = (*Input)(nil)
	_ engine.InputMapper = (*Input)(nil)
)

// NewInput creates an input source reading from term.
func NewInput(term *Terminal) *Input {
	return &Input{term: term}
}

// Init implements engine.EventSource and engine.InputMapper.
func (in *Input) Init(*engine.Engine) error {
	if in.latch == nil {
		in.latch = platform.NewLatch(platform.DefaultHold)
	}
	return nil
}

// Handle implements engine.EventSource. It consumes events until one frame
// interval has passed since the last render.
func (in *Input) Handle(e *engine.Engine) {
	deadline := time.Now()
	if !e.Window.LastRender.IsZero() {
		fps := e.Window.FPS
		if fps <= 0 {
			fps = engine.DefaultFPS
		}
		deadline = e.Window.LastRender.Add(time.Second / time.Duration(fps))
	}
	timer := time.NewTimer(max(time.Until(deadline), 0))
	defer timer.Stop()

wait:
	for {
		select {
		case ev := <-in.term.Events():
			in.event(e, ev)
		case <-timer.C:
			break wait
		}
	}
	for len(in.term.Events()) > 0 {
		in.event(e, <-in.term.Events())
	}

	in.latch.Flush(e)
}

func (in *Input) event(e *engine.Engine, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		in.latch.Press(Action(ev.Key(), ev.Rune()))
	case *tcell.EventResize:
		w, h := ev.Size()
		e.Resize(w, h)
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
		case <-in.term.Events():
		default:
			return
		}
	}
}
