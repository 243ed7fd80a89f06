// Package engine owns the root engine state: ordered construction with
// rollback, dependency-ordered subsystem start-up, flag-guarded teardown and
// the frame loop.
package engine

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tsee/internal/clock"
	"github.com/vovakirdan/tsee/internal/safety"
	"github.com/vovakirdan/tsee/internal/world"
)

// DefaultFPS is the target frame rate of a new window.
const DefaultFPS = 60

// ErrClosed is returned by operations on an engine that has been closed.
var ErrClosed = errors.New("engine closed")

// Window describes the output surface. Setting Running to false ends the
// main loop at the next iteration.
type Window struct {
	Width      int
	Height     int
	Running    bool
	FPS        int
	LastRender time.Time
}

// InitFlags records which subsystems started. Teardown consults it so that
// closing after a partial start only releases what was acquired.
type InitFlags struct {
	Rendering bool
	Resources bool
	Text      bool
	Events    bool
	Input     bool
	UI        bool
	Animation bool
}

// RenderTimes splits render time by layer.
type RenderTimes struct {
	Objects  time.Duration
	Parallax time.Duration
	UI       time.Duration
}

// Debug holds per-frame counters shown by the debug overlay.
type Debug struct {
	EventTime   time.Duration
	PhysicsTime time.Duration
	RenderTime  time.Duration
	Render      RenderTimes
	FrameTime   time.Duration
	Framerate   float64
	Frames      uint64
	Camera      world.CameraMove
	Active      bool
}

// Engine is the root owned object. Only Close destroys it.
type Engine struct {
	Window *Window
	World  *world.World
	Player *world.Player
	UI     *UI
	Flags  *InitFlags
	Debug  *Debug
	Clock  *clock.Clock

	subsystems Subsystems
	alloc      safety.Allocator
	source     clock.Source
	logger     *log.Logger
	owned      bool
	closed     bool
}

// Option configures Create.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithAllocator sets the allocator that backs every owned object.
func WithAllocator(a safety.Allocator) Option {
	return func(e *Engine) {
		if a != nil {
			e.alloc = a
		}
	}
}

// WithClockSource sets the counter sampled by the frame clock.
func WithClockSource(src clock.Source) Option {
	return func(e *Engine) {
		e.source = src
	}
}

// WithSubsystems sets the collaborators. Nil fields fall back to no-ops.
func WithSubsystems(s Subsystems) Option {
	return func(e *Engine) {
		e.subsystems = s
	}
}

// DefaultLogger returns the logger used when none is supplied.
func DefaultLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tsee",
	})
}

// allocStep is one acquisition in the construction chain.
type allocStep struct {
	name    string
	build   func()
	release func()
}

// Create allocates the engine and its owned objects in order. If any step
// fails, every object acquired so far is released in reverse order and no
// engine is returned.
func Create(width, height int, opts ...Option) (*Engine, error) {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = DefaultLogger()
	}
	if e.alloc == nil {
		e.alloc = safety.NewTracker(e.logger)
	}
	e.subsystems = e.subsystems.withDefaults()

	e.logger.Info("initializing engine", "width", width, "height", height)

	steps := []allocStep{
		{name: "engine", build: func() { e.owned = true }, release: e.releaseSelf},
		{name: "window", build: func() { e.Window = newWindow(width, height) }, release: e.releaseWindow},
		{name: "world", build: func() { e.World = world.New() }, release: e.releaseWorld},
		{name: "player", build: func() { e.Player = world.NewPlayer() }, release: e.releasePlayer},
		{name: "clock", build: func() { e.Clock = clock.New(e.source) }, release: e.releaseClock},
		{name: "ui", build: func() { e.UI = &UI{} }, release: e.releaseUI},
		{name: "flags", build: func() { e.Flags = &InitFlags{} }, release: e.releaseFlags},
		{name: "debug", build: func() { e.Debug = &Debug{} }, release: e.releaseDebug},
	}

	for i, step := range steps {
		if err := e.alloc.Alloc(step.name); err != nil {
			e.logger.Error("failed to allocate", "object", step.name, "error", err)
			for j := i - 1; j >= 0; j-- {
				steps[j].release()
			}
			return nil, fmt.Errorf("engine: create %s: %w", step.name, err)
		}
		step.build()
	}

	e.logger.Info("engine initialized")
	return e, nil
}

func newWindow(width, height int) *Window {
	return &Window{
		Width:   width,
		Height:  height,
		Running: true,
		FPS:     DefaultFPS,
	}
}

// Each release is nil-guarded so teardown can run after a partial start
// and more than once.

func (e *Engine) releaseSelf() {
	if !e.owned {
		return
	}
	e.owned = false
	e.alloc.Free("engine")
}

func (e *Engine) releaseWindow() {
	if e.Window == nil {
		return
	}
	e.Window = nil
	e.alloc.Free("window")
}

func (e *Engine) releaseWorld() {
	if e.World == nil {
		return
	}
	e.World.Objects = nil
	e.World.Parallax = nil
	e.World.Texts = nil
	e.World = nil
	e.alloc.Free("world")
}

func (e *Engine) releasePlayer() {
	if e.Player == nil {
		return
	}
	e.Player.Entity = nil
	e.Player = nil
	e.alloc.Free("player")
}

func (e *Engine) releaseClock() {
	if e.Clock == nil {
		return
	}
	e.Clock = nil
	e.alloc.Free("clock")
}

func (e *Engine) releaseUI() {
	if e.UI == nil {
		return
	}
	e.UI = nil
	e.alloc.Free("ui")
}

func (e *Engine) releaseFlags() {
	if e.Flags == nil {
		return
	}
	e.Flags = nil
	e.alloc.Free("flags")
}

func (e *Engine) releaseDebug() {
	if e.Debug == nil {
		return
	}
	e.Debug = nil
	e.alloc.Free("debug")
}

// Logger returns the engine logger.
func (e *Engine) Logger() *log.Logger {
	return e.logger
}

// Closed reports whether Close has completed.
func (e *Engine) Closed() bool {
	return e.closed
}

// DT returns the delta time of the current frame in seconds.
func (e *Engine) DT() float64 {
	if e.Clock == nil {
		return 0
	}
	return e.Clock.DT()
}

// Viewport returns the window area the camera projects into.
func (e *Engine) Viewport() world.Viewport {
	if e.Window == nil {
		return world.Viewport{}
	}
	return world.Viewport{Width: e.Window.Width, Height: e.Window.Height}
}

// Resize updates the window dimensions and re-clamps the horizontal
// scroll range to the new width.
func (e *Engine) Resize(width, height int) {
	if e.Window == nil {
		return
	}
	e.Window.Width = width
	e.Window.Height = height
	if e.World != nil {
		e.World.SetViewportWidth(width)
	}
}
