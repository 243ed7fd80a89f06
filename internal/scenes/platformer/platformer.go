// Package platformer is a side-scrolling demo level: the camera follows the
// player across a level several screens wide.
package platformer

import (
	"fmt"

	"github.com/vovakirdan/tsee/internal/core"
	"github.com/vovakirdan/tsee/internal/engine"
	"github.com/vovakirdan/tsee/internal/registry"
	"github.com/vovakirdan/tsee/internal/scenes"
	"github.com/vovakirdan/tsee/internal/world"
)

// layout is drawn bottom-aligned: the last row is the floor.
var layout = []string{
	"                                                                                                                        ",
	"                                    o o o                                        *                                      ",
	"                                   =======                 o o                 =====              o o o                 ",
	"                     o                                   =======                                =========               ",
	"                   =====        x             ?                        x                                          *     ",
	"   @                       ##              =====        ##         ########           ##                     ###########",
	"########################################################################      ######################################### ",
}

// Scene implements registry.Scene.
type Scene struct{}

// New creates a new platformer scene.
func New() *Scene {
	return &Scene{}
}

// ID returns the unique identifier for this scene.
func (s *Scene) ID() string {
	return "platformer"
}

// Title returns the display name for this scene.
func (s *Scene) Title() string {
	return "Platformer"
}

// Populate builds the level, the backdrop and the HUD.
func (s *Scene) Populate(e *engine.Engine) error {
	lvl, err := scenes.Build(e, layout)
	if err != nil {
		return fmt.Errorf("platformer: %w", err)
	}

	scenes.Backdrop(e, 2, "   .    *      .        ", core.ColorGray)
	scenes.Backdrop(e, e.Window.Height-lvl.Height-1, "  /\\    /\\/\\      /\\   ", core.ColorBlue)
	scenes.HUD(e, '♥', core.ColorRed)

	e.World.AddText(world.NewText(s.Title(), "title", e.Window.Width-len(s.Title())-4, 0, core.ColorWhite))
	return nil
}

func init() {
	registry.Register("platformer", func() registry.Scene {
		return New()
	})
}
