package world

import (
	"slices"

	"github.com/vovakirdan/tsee/internal/core"
)

// World owns the ordered entity sequences and the camera state.
// Later entries in Objects draw on top of earlier ones.
//
// Invariant after every camera update: 0 <= ScrollX <= MaxScrollX and ScrollY >= 0.
type World struct {
	Objects    []*Entity
	Parallax   []*Entity
	Texts      []*Text
	ScrollX    float64
	ScrollY    float64
	MaxScrollX float64
	LevelWidth int
	Gravity    core.Vec2
}

// New creates an empty world with zeroed scroll state and no gravity.
func New() *World {
	return &World{
		Objects:  make([]*Entity, 0, 16),
		Parallax: make([]*Entity, 0, 4),
		Texts:    make([]*Text, 0, 4),
	}
}

// Add appends an entity to the main sequence.
func (w *World) Add(e *Entity) {
	w.Objects = append(w.Objects, e)
}

// AddParallax appends a background layer entity.
func (w *World) AddParallax(e *Entity) {
	e.Attributes.Set(core.AttribParallax)
	w.Parallax = append(w.Parallax, e)
}

// AddText appends a text entity.
func (w *World) AddText(t *Text) {
	w.Texts = append(w.Texts, t)
}

// Remove deletes an entity from whichever sequence owns it.
// Returns false if the world does not own it.
func (w *World) Remove(e *Entity) bool {
	if i := slices.Index(w.Objects, e); i >= 0 {
		w.Objects = slices.Delete(w.Objects, i, i+1)
		return true
	}
	if i := slices.Index(w.Parallax, e); i >= 0 {
		w.Parallax = slices.Delete(w.Parallax, i, i+1)
		return true
	}
	return false
}

// RemoveText deletes a text entity. Returns false if the world does not own it.
func (w *World) RemoveText(t *Text) bool {
	if i := slices.Index(w.Texts, t); i >= 0 {
		w.Texts = slices.Delete(w.Texts, i, i+1)
		return true
	}
	return false
}

// SetGravity replaces the gravity vector.
func (w *World) SetGravity(g core.Vec2) {
	w.Gravity = g
}

// SetLevelWidth derives MaxScrollX from the level and window widths.
// A level no wider than the window cannot scroll.
func (w *World) SetLevelWidth(levelWidth, windowWidth int) {
	w.LevelWidth = levelWidth
	w.MaxScrollX = float64(core.Max(levelWidth-windowWidth, 0))
	w.ScrollX = core.ClampF(w.ScrollX, 0, w.MaxScrollX)
}

// SetViewportWidth re-derives MaxScrollX for a new window width, keeping
// the level width recorded by SetLevelWidth.
func (w *World) SetViewportWidth(windowWidth int) {
	w.SetLevelWidth(w.LevelWidth, windowWidth)
}

// Len returns the number of entities across both sequences.
func (w *World) Len() int {
	return len(w.Objects) + len(w.Parallax)
}
