package world

import (
	"strings"

	"github.com/vovakirdan/tsee/internal/core"
)

// Vertical dead-zone thresholds as fractions of half the window height.
const (
	floorRatio   = 0.75
	ceilingRatio = 0.25
)

// Viewport is the window area the camera projects into.
type Viewport struct {
	Width, Height int
}

// CameraMove records which dead-zone branches fired during one update.
type CameraMove uint8

const (
	MoveLeft    CameraMove = 1 << iota // Tracked entity crossed left of centre
	MoveRight                          // Tracked entity crossed right of centre
	MoveFloor                          // Tracked entity crossed the floor threshold
	MoveCeiling                        // Tracked entity crossed the ceiling threshold
)

// Has reports whether m includes every branch in o.
func (m CameraMove) Has(o CameraMove) bool {
	return m&o == o
}

// String lists the fired branches, or "none".
func (m CameraMove) String() string {
	if m == 0 {
		return "none"
	}
	var parts []string
	for _, b := range []struct {
		bit  CameraMove
		name string
	}{{MoveLeft, "left"}, {MoveRight, "right"}, {MoveFloor, "floor"}, {MoveCeiling, "ceiling"}} {
		if m&b.bit != 0 {
			parts = append(parts, b.name)
		}
	}
	return strings.Join(parts, "|")
}

// ScrollToEntity keeps obj inside the camera dead-zone, clamps the scroll
// offsets to the world bounds and re-projects every entity in the main
// sequence.
//
// Entities carrying AttribUI or AttribPlayer keep their screen position.
// Parallax entities keep their screen x. The parallax sequence itself is not
// touched.
func (w *World) ScrollToEntity(obj *Entity, view Viewport) CameraMove {
	pos := obj.WorldRect()
	winW := float64(view.Width)
	winH := float64(view.Height)

	midX := float64(pos.X + pos.W/2)
	midY := float64(pos.Y + pos.H/2)

	halfW := winW / 2
	halfH := winH / 2

	var moved CameraMove

	if midX < halfW && w.ScrollX > 0 {
		w.ScrollX -= halfW - midX
		obj.Screen.X = int(halfW - float64(pos.W/2))
		moved |= MoveLeft
	} else if midX > halfW && w.ScrollX < w.MaxScrollX {
		w.ScrollX += midX - halfW
		obj.Screen.X = int(halfW - float64(pos.W/2))
		moved |= MoveRight
	}

	floor := halfH * floorRatio
	ceiling := halfH * ceilingRatio
	if midY > floor {
		w.ScrollY -= midY - floor
		obj.Screen.Y = int(floor - float64(pos.H/2))
		moved |= MoveFloor
	} else if midY < ceiling && w.ScrollY < 0 {
		// ScrollY is clamped to >= 0 below on every update, so this
		// branch cannot fire unless a caller breaks that invariant.
		w.ScrollY += ceiling - midY
		obj.Screen.Y = int(ceiling - float64(pos.H/2))
		moved |= MoveCeiling
	}

	w.ScrollX = core.ClampF(w.ScrollX, 0, w.MaxScrollX)
	if w.ScrollY < 0 {
		w.ScrollY = 0
	}

	for _, e := range w.Objects {
		if e.Has(core.AttribUI) || e.Has(core.AttribPlayer) {
			continue
		}
		if !e.Has(core.AttribParallax) {
			e.Screen.X = int(e.Position.X - w.ScrollX)
		}
		e.Screen.Y = int(-e.Position.Y + winH - w.ScrollY)
	}

	return moved
}

// Project returns where an entity lands on screen under the current scroll,
// using the same rule as the camera's re-projection pass.
func (w *World) Project(e *Entity, view Viewport) core.Rect {
	r := e.Screen
	r.X = int(e.Position.X - w.ScrollX)
	r.Y = int(-e.Position.Y + float64(view.Height) - w.ScrollY)
	return r
}
