// Package platform holds the drawing shared by every output back-end.
// Back-ends live in subpackages and only differ in where the composed
// screen ends up.
package platform

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tsee/internal/core"
	"github.com/vovakirdan/tsee/internal/engine"
	"github.com/vovakirdan/tsee/internal/world"
)

// Compose draws the engine state into s, back to front: parallax layers,
// world objects, texts, the toolbar and finally the debug overlay.
// Entities are drawn at their screen projection; nothing here moves them.
func Compose(e *engine.Engine, s *core.Screen) {
	if e.Window == nil {
		return
	}
	if s.Width() != e.Window.Width || s.Height() != e.Window.Height {
		s.Resize(e.Window.Width, e.Window.Height)
	}
	s.Clear()

	start := time.Now()
	if e.World != nil {
		for _, ent := range e.World.Parallax {
			drawEntity(s, ent)
		}
	}
	parallax := time.Since(start)

	start = time.Now()
	if e.World != nil {
		for _, ent := range e.World.Objects {
			drawEntity(s, ent)
		}
		for _, t := range e.World.Texts {
			s.DrawText(t.Screen.X, t.Screen.Y, t.Content, t.Color)
		}
	}
	objects := time.Since(start)

	start = time.Now()
	if e.UI != nil {
		drawToolbar(s, e.UI)
	}
	ui := time.Since(start)

	if e.Debug != nil {
		e.Debug.Render = engine.RenderTimes{Objects: objects, Parallax: parallax, UI: ui}
		if e.Debug.Active {
			drawDebug(s, e)
		}
	}
	e.Window.LastRender = time.Now()
}

func drawEntity(s *core.Screen, ent *world.Entity) {
	if ent.Screen.W <= 0 || ent.Screen.H <= 0 {
		return
	}
	s.DrawRect(ent.Screen, ent.Sprite.Current(), ent.Sprite.Color)
}

func drawToolbar(s *core.Screen, ui *engine.UI) {
	for _, entry := range ui.Toolbar {
		if entry.Text == nil {
			continue
		}
		c := entry.Text.Color
		if entry.Open {
			c = core.ColorYellow
		}
		s.DrawText(entry.Text.Screen.X, entry.Text.Screen.Y, entry.Text.Content, c)
		if !entry.Open {
			continue
		}
		for _, b := range entry.Buttons {
			if b.Text != nil {
				s.DrawText(b.Text.Screen.X, b.Text.Screen.Y, b.Text.Content, b.Text.Color)
			}
		}
	}
}

// DebugLines formats the debug counters shown by the overlay.
func DebugLines(e *engine.Engine) []string {
	d := e.Debug
	lines := []string{
		fmt.Sprintf("fps %.0f  frame %s  #%d", d.Framerate, d.FrameTime.Round(time.Microsecond), d.Frames),
		fmt.Sprintf("events %s  physics %s  render %s",
			d.EventTime.Round(time.Microsecond), d.PhysicsTime.Round(time.Microsecond), d.RenderTime.Round(time.Microsecond)),
	}
	if e.World != nil {
		lines = append(lines, fmt.Sprintf("scroll %.0f,%.0f/%.0f  camera %s  objects %d",
			e.World.ScrollX, e.World.ScrollY, e.World.MaxScrollX, d.Camera, e.World.Len()))
	}
	return lines
}

// OverlayRows reports how many bottom rows of an h-row screen the debug
// overlay occupies. It is zero while the overlay is hidden.
func OverlayRows(e *engine.Engine, h int) int {
	if e.Debug == nil || !e.Debug.Active {
		return 0
	}
	return core.Min(len(DebugLines(e)), h)
}

func drawDebug(s *core.Screen, e *engine.Engine) {
	lines := DebugLines(e)
	top := s.Height() - len(lines)
	for i, line := range lines {
		s.DrawText(0, top+i, line, core.ColorGray)
	}
}
