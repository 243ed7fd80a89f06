package engine

import (
	"errors"
	"fmt"
)

// ErrSubsystemInit wraps the error of a subsystem whose Init failed.
var ErrSubsystemInit = errors.New("subsystem init failed")

// subsystem is one entry of the start-up order.
type subsystem struct {
	name string
	init func(*Engine) error
	flag *bool
}

// startOrder lists subsystems in dependency order: later entries may assume
// earlier ones are live (UI needs Text, Text needs Resources).
func (e *Engine) startOrder() []subsystem {
	s := e.subsystems
	f := e.Flags
	return []subsystem{
		{name: "rendering", init: s.Renderer.Init, flag: &f.Rendering},
		{name: "resources", init: s.Resources.Init, flag: &f.Resources},
		{name: "text", init: func(e *Engine) error { return s.Text.Init(e, true) }, flag: &f.Text},
		{name: "events", init: s.Events.Init, flag: &f.Events},
		{name: "input", init: s.Input.Init, flag: &f.Input},
		{name: "ui", init: s.UI.Init, flag: &f.UI},
		{name: "animation", init: s.Animation.Init, flag: &f.Animation},
	}
}

// InitAll starts every subsystem in order. The first failure closes the
// engine and is returned; no later subsystem is started.
func (e *Engine) InitAll() error {
	if e.closed {
		return fmt.Errorf("engine: init: %w", ErrClosed)
	}

	e.logger.Info("initializing subsystems")
	for _, sub := range e.startOrder() {
		if err := sub.init(e); err != nil {
			e.logger.Error("failed to initialize subsystem", "subsystem", sub.name, "error", err)
			e.Close()
			return fmt.Errorf("engine: %s: %w: %w", sub.name, ErrSubsystemInit, err)
		}
		*sub.flag = true
		e.logger.Info("initialized subsystem", "subsystem", sub.name)
	}
	e.logger.Info("all subsystems initialized")
	return nil
}

// Close tears the engine down. The order matters: entities and resources go
// before the window and the resource store, and back-end shutdown comes last.
// Steps for subsystems that never started are skipped, and a second Close is
// a no-op.
func (e *Engine) Close() error {
	if e.closed {
		return nil
	}

	var flags InitFlags
	if e.Flags != nil {
		flags = *e.Flags
	}
	s := e.subsystems

	if e.Window != nil {
		e.Window.Running = false
	}

	if e.World != nil {
		for _, ent := range e.World.Objects {
			s.Destroyer.Destroy(e, ent, false)
		}
		e.World.Objects = nil
		for _, ent := range e.World.Parallax {
			s.Destroyer.Destroy(e, ent, false)
		}
		e.World.Parallax = nil
		if flags.Text {
			for _, t := range e.World.Texts {
				s.Text.Destroy(e, t, false)
			}
		}
		e.World.Texts = nil
	}

	s.Resources.UnloadAll(e)

	e.releasePlayer()
	e.releaseWorld()

	if flags.Events {
		s.Events.Release(e)
	}

	if flags.UI && e.UI != nil {
		for _, entry := range e.UI.Toolbar {
			s.Text.Destroy(e, entry.Text, false)
			for _, button := range entry.Buttons {
				s.Text.Destroy(e, button.Text, false)
			}
			entry.Buttons = nil
		}
		e.UI.Toolbar = nil
	}
	e.releaseUI()

	if e.Window != nil {
		s.Renderer.DestroyWindow(e)
		e.releaseWindow()
	}

	if flags.Resources {
		s.Resources.Close(e)
	}
	if flags.Text {
		s.Text.Shutdown()
	}
	if flags.Rendering {
		s.Renderer.Shutdown()
	}

	e.releaseClock()
	e.releaseFlags()
	e.releaseDebug()
	e.releaseSelf()
	e.closed = true

	e.logger.Info("engine closed")
	return nil
}
