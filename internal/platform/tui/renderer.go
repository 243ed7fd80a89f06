package tui

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tsee/internal/core"
	"github.com/vovakirdan/tsee/internal/engine"
	"github.com/vovakirdan/tsee/internal/platform"
)

// Renderer composes frames and hands them to the terminal.
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

// Init implements engine.Renderer. It starts the terminal program.
func (r *Renderer) Init(e *engine.Engine) error {
	r.logger = e.Logger()
	if err := r.term.Start(); err != nil {
		return fmt.Errorf("tui: start terminal: %w", err)
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
	frame := Frame{Screen: r.screen, Overlay: platform.OverlayRows(e, r.screen.Height())}
	if err := r.term.Send(RenderScreen(frame)); err != nil {
		r.logger.Warn("failed to present frame", "error", err)
	}
}

// DestroyWindow implements engine.Renderer. It blanks the display and drops
// the frame buffer; the terminal program keeps running until Shutdown.
func (r *Renderer) DestroyWindow(*engine.Engine) {
	if r.screen == nil {
		return
	}
	r.screen = nil
	//nolint:errcheck // Best-effort clear before shutdown
	r.term.Send("")
}

// Shutdown implements engine.Renderer. It stops the terminal program and
// restores the terminal.
func (r *Renderer) Shutdown() {
	if err := r.term.Stop(); err != nil {
		r.logger.Warn("terminal exited with error", "error", err)
	}
}
