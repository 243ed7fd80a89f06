package engine

import "github.com/vovakirdan/tsee/internal/world"

// Renderer draws entities using their screen-space projections and owns the
// output window.
type Renderer interface {
	Init(e *Engine) error
	Render(e *Engine)
	DestroyWindow(e *Engine)
	Shutdown()
}

// ResourceManager owns loaded resources. UnloadAll and Close must tolerate
// being called before Init.
type ResourceManager interface {
	Init(e *Engine) error
	UnloadAll(e *Engine)
	Close(e *Engine)
}

// TextRenderer creates and destroys text entities.
type TextRenderer interface {
	Init(e *Engine, loadDefaults bool) error
	Destroy(e *Engine, t *world.Text, remove bool)
	Shutdown()
}

// EventSource polls and dispatches one batch of events per frame.
type EventSource interface {
	Init(e *Engine) error
	Handle(e *Engine)
	Release(e *Engine)
}

// InputMapper turns raw events into player movement intents.
type InputMapper interface {
	Init(e *Engine) error
	HandleInput(e *Engine)
}

// UIBuilder populates the UI root.
type UIBuilder interface {
	Init(e *Engine) error
}

// Animator advances sprite animation by the frame delta.
type Animator interface {
	Init(e *Engine) error
	RunStep(e *Engine)
}

// PhysicsStepper integrates one physics step using the frame delta and
// world gravity.
type PhysicsStepper interface {
	PerformStep(e *Engine)
}

// EntityDestroyer releases an entity. When remove is true the entity is also
// taken out of its owning sequence; otherwise the caller removes it in bulk.
type EntityDestroyer interface {
	Destroy(e *Engine, ent *world.Entity, remove bool)
}

// Subsystems is the set of collaborators the engine drives.
type Subsystems struct {
	Renderer  Renderer
	Resources ResourceManager
	Text      TextRenderer
	Events    EventSource
	Input     InputMapper
	UI        UIBuilder
	Animation Animator
	Physics   PhysicsStepper
	Destroyer EntityDestroyer
}

func (s Subsystems) withDefaults() Subsystems {
	if s.Renderer == nil {
		s.Renderer = nopRenderer{}
	}
	if s.Resources == nil {
		s.Resources = nopResources{}
	}
	if s.Text == nil {
		s.Text = nopText{}
	}
	if s.Events == nil {
		s.Events = nopEvents{}
	}
	if s.Input == nil {
		s.Input = nopInput{}
	}
	if s.UI == nil {
		s.UI = nopUI{}
	}
	if s.Animation == nil {
		s.Animation = nopAnimator{}
	}
	if s.Physics == nil {
		s.Physics = nopPhysics{}
	}
	if s.Destroyer == nil {
		s.Destroyer = WorldDestroyer{}
	}
	return s
}

type nopRenderer struct{}

func (nopRenderer) Init(*Engine) error    { return nil }
func (nopRenderer) Render(*Engine)        {}
func (nopRenderer) DestroyWindow(*Engine) {}
func (nopRenderer) Shutdown()             {}

type nopResources struct{}

func (nopResources) Init(*Engine) error { return nil }
func (nopResources) UnloadAll(*Engine)  {}
func (nopResources) Close(*Engine)      {}

type nopText struct{}

func (nopText) Init(*Engine, bool) error           { return nil }
func (nopText) Destroy(*Engine, *world.Text, bool) {}
func (nopText) Shutdown()                          {}

type nopEvents struct{}

func (nopEvents) Init(*Engine) error { return nil }
func (nopEvents) Handle(*Engine)     {}
func (nopEvents) Release(*Engine)    {}

type nopInput struct{}

func (nopInput) Init(*Engine) error  { return nil }
func (nopInput) HandleInput(*Engine) {}

type nopUI struct{}

func (nopUI) Init(*Engine) error { return nil }

type nopAnimator struct{}

func (nopAnimator) Init(*Engine) error { return nil }
func (nopAnimator) RunStep(*Engine)    {}

type nopPhysics struct{}

func (nopPhysics) PerformStep(*Engine) {}

// WorldDestroyer is the default EntityDestroyer. It strips the entity's
// traits, detaches the player if it pointed at the entity and optionally
// removes it from the world.
type WorldDestroyer struct{}

// Destroy implements EntityDestroyer.
func (WorldDestroyer) Destroy(e *Engine, ent *world.Entity, remove bool) {
	if ent == nil {
		return
	}
	if remove && e.World != nil {
		e.World.Remove(ent)
	}
	if e.Player != nil && e.Player.Entity == ent {
		e.Player.Entity = nil
	}
	ent.Attributes.Reset()
}
