// Package physics integrates player intents, gravity and floor contact once
// per frame.
package physics

import (
	"github.com/vovakirdan/tsee/internal/core"
	"github.com/vovakirdan/tsee/internal/engine"
	"github.com/vovakirdan/tsee/internal/world"
)

const (
	// StepRate converts the player's step size into cells per second.
	StepRate = 6.0
	// JumpSpeed is the upward speed, in cells per second, of a jump force of 1.
	JumpSpeed = 12.0
	// MaxHeldUp is how many frames holding up keeps feeding a jump.
	MaxHeldUp = 6
)

// Stepper is the engine's physics step. World y grows upward and an entity's
// Position is its top-left corner, so an entity of height h rests on the
// floor when Position.Y == h.
type Stepper struct{}

var _ engine.PhysicsStepper = Stepper{}

// PerformStep implements engine.PhysicsStepper.
func (Stepper) PerformStep(e *engine.Engine) {
	if e.World == nil {
		return
	}
	dt := e.DT()
	view := e.Viewport()
	levelRight := e.World.MaxScrollX + float64(view.Width)

	if p := e.Player; p != nil && p.Entity != nil {
		steer(p)
	}

	for _, ent := range e.World.Objects {
		if !ent.Has(core.AttribPhysics) && !ent.Has(core.AttribPlayer) {
			continue
		}
		ent.Velocity = ent.Velocity.Add(e.World.Gravity.Scale(dt))
		prevX := ent.Position.X
		prevBottom := ent.Position.Y - float64(ent.Screen.H)
		ent.Position = ent.Position.Add(ent.Velocity.Scale(dt))

		grounded := land(e.World, ent, prevBottom)
		if blocked(e.World, ent) {
			ent.Position.X = prevX
			ent.Velocity.X = 0
		}
		ent.Position.X = core.ClampF(ent.Position.X, 0, core.ClampF(levelRight-float64(ent.Screen.W), 0, levelRight))

		if p := e.Player; p != nil && p.Entity == ent {
			p.Grounded = grounded
			if grounded {
				p.HeldUp = 0
			}
		}
	}

	// The camera leaves the player's screen rect alone, so project it here.
	if p := e.Player; p != nil && p.Entity != nil {
		r := e.World.Project(p.Entity, view)
		p.Entity.Screen.X, p.Entity.Screen.Y = r.X, r.Y
	}
}

// steer turns movement intents into the player entity's velocity.
func steer(p *world.Player) {
	ent := p.Entity
	dir := 0.0
	if p.Movement.Left {
		dir--
	}
	if p.Movement.Right {
		dir++
	}
	ent.Velocity.X = dir * p.Speed * p.StepSize * StepRate

	switch {
	case p.Movement.Up && (p.Grounded || (p.HeldUp > 0 && p.HeldUp < MaxHeldUp)):
		ent.Velocity.Y = p.JumpForce * JumpSpeed
		p.HeldUp++
		p.Grounded = false
	case !p.Movement.Up && p.HeldUp > 0:
		// Releasing up ends the jump boost; HeldUp resets on landing.
		p.HeldUp = MaxHeldUp
	}
}

// land resolves contact with the floor and with static entities below ent.
// It reports whether ent ended the step standing on something.
func land(w *world.World, ent *world.Entity, prevBottom float64) bool {
	if ent.Velocity.Y > 0 {
		return false
	}
	h := float64(ent.Screen.H)
	bottom := ent.Position.Y - h

	for _, s := range w.Objects {
		if s == ent || !s.Has(core.AttribStatic) {
			continue
		}
		top := s.Position.Y
		overlapX := ent.Position.X < s.Position.X+float64(s.Screen.W) &&
			s.Position.X < ent.Position.X+float64(ent.Screen.W)
		if overlapX && prevBottom >= top && bottom < top {
			ent.Position.Y = top + h
			ent.Velocity.Y = 0
			return true
		}
	}

	if bottom <= 0 {
		ent.Position.Y = h
		ent.Velocity.Y = 0
		return true
	}
	return false
}

// blocked reports whether ent overlaps a static entity after moving.
// Spans are half-open, so standing on top of a block is not an overlap.
func blocked(w *world.World, ent *world.Entity) bool {
	left, right := ent.Position.X, ent.Position.X+float64(ent.Screen.W)
	bottom, top := ent.Position.Y-float64(ent.Screen.H), ent.Position.Y

	for _, s := range w.Objects {
		if s == ent || !s.Has(core.AttribStatic) {
			continue
		}
		sLeft, sRight := s.Position.X, s.Position.X+float64(s.Screen.W)
		sBottom, sTop := s.Position.Y-float64(s.Screen.H), s.Position.Y
		if left < sRight && sLeft < right && bottom < sTop && sBottom < top {
			return true
		}
	}
	return false
}
