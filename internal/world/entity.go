// Package world holds the scene model: entities, their capability masks,
// the player, text entities and the scrolling camera.
package world

import "github.com/vovakirdan/tsee/internal/core"

// Sprite is how an entity looks on screen.
type Sprite struct {
	Glyph     rune
	Color     core.Color
	Frames    []rune  // Optional animation cycle, replaces Glyph when set
	FrameTime float64 // Seconds per frame
	Frame     int
	Elapsed   float64
}

// Current returns the rune to draw this frame.
func (s *Sprite) Current() rune {
	if len(s.Frames) > 0 {
		return s.Frames[s.Frame%len(s.Frames)]
	}
	return s.Glyph
}

// Entity is a positioned, trait-tagged object living in the World.
// Position is in world space with y growing upward and marks the top-left
// corner; Screen is the projection recomputed every frame.
type Entity struct {
	Position   core.Vec2
	Velocity   core.Vec2
	Attributes core.Attributes
	Screen     core.Rect
	Sprite     Sprite
}

// NewEntity creates an entity of the given size at a world position.
func NewEntity(x, y float64, w, h int, attrs core.Attributes) *Entity {
	return &Entity{
		Position:   core.Vec2{X: x, Y: y},
		Attributes: attrs,
		Screen:     core.NewRect(int(x), 0, w, h),
		Sprite:     Sprite{Glyph: '█'},
	}
}

// Has reports whether the entity carries trait.
func (e *Entity) Has(trait core.Attributes) bool {
	return e.Attributes.Has(trait)
}

// WorldRect returns the entity's bounds in world units, truncated to cells.
func (e *Entity) WorldRect() core.Rect {
	return core.NewRect(int(e.Position.X), int(e.Position.Y), e.Screen.W, e.Screen.H)
}

// Text is a positioned string owned by the World or by a toolbar entry.
type Text struct {
	Content  string
	Font     string
	Position core.Vec2
	Screen   core.Rect
	Color    core.Color
}

// NewText creates a screen-anchored text entity.
func NewText(content, font string, x, y int, c core.Color) *Text {
	return &Text{
		Content:  content,
		Font:     font,
		Position: core.Vec2{X: float64(x), Y: float64(y)},
		Screen:   core.NewRect(x, y, len([]rune(content)), 1),
		Color:    c,
	}
}
