// Package headless runs the engine without a terminal: frames are composed
// into an in-memory screen and input comes from a script. Used for smoke
// runs and tests.
package headless

import (
	"github.com/vovakirdan/tsee/internal/core"
	"github.com/vovakirdan/tsee/internal/engine"
	"github.com/vovakirdan/tsee/internal/platform"
)

// Renderer composes every frame into Screen and keeps the plain-text result.
type Renderer struct {
	Screen *core.Screen
	Last   string
	Frames int
}

var _ engine.Renderer = (*Renderer)(nil)

// Init implements engine.Renderer.
func (r *Renderer) Init(e *engine.Engine) error {
	r.Screen = core.NewScreen(e.Window.Width, e.Window.Height)
	return nil
}

// Render implements engine.Renderer.
func (r *Renderer) Render(e *engine.Engine) {
	if r.Screen == nil {
		return
	}
	platform.Compose(e, r.Screen)
	r.Last = r.Screen.String()
	r.Frames++
}

// DestroyWindow implements engine.Renderer.
func (r *Renderer) DestroyWindow(*engine.Engine) {
	r.Screen = nil
}

// Shutdown implements engine.Renderer.
func (r *Renderer) Shutdown() {}

// Driver is both the event source and the input mapper. Script maps a frame
// number to the actions pressed during that frame; MaxFrames, when set,
// requests quit once that many frames have run.
type Driver struct {
	MaxFrames uint64
	Script    map[uint64][]core.Action

	pending core.InputFrame
}

var (
	_ engine.EventSource = (*Driver)(nil)
	_ engine.InputMapper = (*Driver)(nil)
)

// Init implements engine.EventSource and engine.InputMapper.
func (d *Driver) Init(*engine.Engine) error {
	if d.pending.Actions == nil {
		d.pending = core.NewInputFrame()
	}
	return nil
}

// Handle implements engine.EventSource.
func (d *Driver) Handle(e *engine.Engine) {
	frame := e.Debug.Frames
	for _, a := range d.Script[frame] {
		d.pending.Set(a)
	}
	platform.Dispatch(e, d.pending)
	if d.MaxFrames > 0 && frame+1 >= d.MaxFrames {
		e.RequestQuit()
	}
}

// HandleInput implements engine.InputMapper.
func (d *Driver) HandleInput(e *engine.Engine) {
	if e.Player != nil {
		e.Player.Movement = platform.Movement(d.pending)
	}
	d.pending.Clear()
}

// Release implements engine.EventSource.
func (d *Driver) Release(*engine.Engine) {
	d.pending.Clear()
}
