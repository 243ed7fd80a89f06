// Package room is a single-screen demo: the level is no wider than the
// window, so the camera never scrolls horizontally.
package room

import (
	"fmt"

	"github.com/vovakirdan/tsee/internal/core"
	"github.com/vovakirdan/tsee/internal/engine"
	"github.com/vovakirdan/tsee/internal/registry"
	"github.com/vovakirdan/tsee/internal/scenes"
	"github.com/vovakirdan/tsee/internal/world"
)

var layout = []string{
	"#                                      #",
	"#      o             x           o     #",
	"#    =====                     =====   #",
	"#                *                     #",
	"#  @          ========                 #",
	"########################################",
}

// Scene implements registry.Scene.
type Scene struct{}

// New creates a new room scene.
func New() *Scene {
	return &Scene{}
}

// ID returns the unique identifier for this scene.
func (s *Scene) ID() string {
	return "room"
}

// Title returns the display name for this scene.
func (s *Scene) Title() string {
	return "Single Room"
}

// Populate builds the room.
func (s *Scene) Populate(e *engine.Engine) error {
	if _, err := scenes.Build(e, layout); err != nil {
		return fmt.Errorf("room: %w", err)
	}
	e.World.AddText(world.NewText(s.Title(), "title", 1, 2, core.ColorWhite))
	return nil
}

func init() {
	registry.Register("room", func() registry.Scene {
		return New()
	})
}
