// Package animation cycles sprite frames by the frame delta.
package animation

import (
	"github.com/vovakirdan/tsee/internal/engine"
	"github.com/vovakirdan/tsee/internal/world"
)

// Animator advances every animated sprite in the world. A sprite is animated
// when it has more than one frame and a positive FrameTime.
type Animator struct {
	// Paused stops frame advance without resetting sprite state.
	Paused bool
}

var _ engine.Animator = (*Animator)(nil)

// New creates a running animator.
func New() *Animator {
	return &Animator{}
}

// Init implements engine.Animator.
func (a *Animator) Init(e *engine.Engine) error {
	e.Logger().Debug("animator ready")
	return nil
}

// RunStep implements engine.Animator.
func (a *Animator) RunStep(e *engine.Engine) {
	if a.Paused || e.World == nil {
		return
	}
	dt := e.DT()
	for _, ent := range e.World.Objects {
		Advance(&ent.Sprite, dt)
	}
	for _, ent := range e.World.Parallax {
		Advance(&ent.Sprite, dt)
	}
}

// Advance moves s forward by dt seconds, skipping as many frames as fit.
func Advance(s *world.Sprite, dt float64) {
	if len(s.Frames) < 2 || s.FrameTime <= 0 || dt <= 0 {
		return
	}
	s.Elapsed += dt
	for s.Elapsed >= s.FrameTime {
		s.Elapsed -= s.FrameTime
		s.Frame = (s.Frame + 1) % len(s.Frames)
	}
}
