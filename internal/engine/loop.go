package engine

import "time"

// Running reports whether the main loop should keep iterating.
func (e *Engine) Running() bool {
	return !e.closed && e.Window != nil && e.Window.Running
}

// RequestQuit asks the main loop to stop after the current iteration.
func (e *Engine) RequestQuit() {
	if e.Window == nil || !e.Window.Running {
		return
	}
	e.logger.Info("quit requested")
	e.Window.Running = false
}

// MainLoop runs frames until the window stops running.
func (e *Engine) MainLoop() {
	for e.Running() {
		e.Frame()
	}
}

// Frame runs one loop iteration: clock, events, input, physics, animation,
// camera, render. Every step runs to completion before the next one starts.
func (e *Engine) Frame() {
	if e.closed {
		return
	}
	s := e.subsystems
	start := time.Now()

	e.Clock.Advance()

	t := time.Now()
	s.Events.Handle(e)
	e.Debug.EventTime = time.Since(t)

	s.Input.HandleInput(e)

	t = time.Now()
	s.Physics.PerformStep(e)
	e.Debug.PhysicsTime = time.Since(t)

	s.Animation.RunStep(e)

	e.Debug.Camera = e.ScrollToPlayer()

	t = time.Now()
	s.Renderer.Render(e)
	e.Debug.RenderTime = time.Since(t)

	e.Debug.FrameTime = time.Since(start)
	e.Debug.Frames++
	if dt := e.Clock.DT(); dt > 0 {
		e.Debug.Framerate = 1 / dt
	}
}
