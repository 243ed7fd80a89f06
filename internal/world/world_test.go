package world

import (
	"testing"

	"github.com/vovakirdan/tsee/internal/core"
)

func TestNewWorldIsEmpty(t *testing.T) {
	w := New()
	if w.Len() != 0 || len(w.Texts) != 0 {
		t.Errorf("new world should be empty, has %d entities and %d texts", w.Len(), len(w.Texts))
	}
	if w.ScrollX != 0 || w.ScrollY != 0 || w.MaxScrollX != 0 {
		t.Error("new world should have zeroed scroll state")
	}
	if w.Gravity != (core.Vec2{}) {
		t.Errorf("new world gravity = %+v, expected zero", w.Gravity)
	}
}

func TestWorldAddRemoveKeepsOrder(t *testing.T) {
	w := New()
	a := NewEntity(0, 0, 1, 1, core.AttribNone)
	b := NewEntity(1, 0, 1, 1, core.AttribNone)
	c := NewEntity(2, 0, 1, 1, core.AttribNone)
	w.Add(a)
	w.Add(b)
	w.Add(c)

	if !w.Remove(b) {
		t.Fatal("Remove(b) should succeed")
	}
	if len(w.Objects) != 2 || w.Objects[0] != a || w.Objects[1] != c {
		t.Errorf("order not preserved after removal: %v", w.Objects)
	}
	if w.Remove(b) {
		t.Error("removing an entity twice should report false")
	}
}

func TestWorldAddParallaxTagsEntity(t *testing.T) {
	w := New()
	layer := NewEntity(0, 0, 80, 5, core.AttribNone)
	w.AddParallax(layer)

	if !layer.Has(core.AttribParallax) {
		t.Error("AddParallax should set the parallax trait")
	}
	if !w.Remove(layer) || len(w.Parallax) != 0 {
		t.Error("parallax entity should be removable")
	}
}

func TestWorldTexts(t *testing.T) {
	w := New()
	txt := NewText("score", "default", 1, 1, core.ColorWhite)
	w.AddText(txt)

	if txt.Screen.W != 5 {
		t.Errorf("text width = %d, expected 5", txt.Screen.W)
	}
	if !w.RemoveText(txt) || w.RemoveText(txt) {
		t.Error("RemoveText should succeed once")
	}
}

func TestSetLevelWidth(t *testing.T) {
	tests := []struct {
		level, window int
		expected      float64
	}{
		{1800, 800, 1000},
		{800, 800, 0},
		{400, 800, 0},
	}

	for _, tc := range tests {
		w := New()
		w.SetLevelWidth(tc.level, tc.window)
		if w.MaxScrollX != tc.expected {
			t.Errorf("SetLevelWidth(%d, %d): MaxScrollX = %f, expected %f", tc.level, tc.window, w.MaxScrollX, tc.expected)
		}
	}
}

func TestSetViewportWidth(t *testing.T) {
	tests := []struct {
		name        string
		window      int
		scroll      float64
		maxScroll   float64
		wantScrollX float64
	}{
		{"wider than level", 200, 30, 0, 0},
		{"same as level", 120, 30, 0, 0},
		{"narrower", 60, 30, 60, 30},
		{"clamps scroll", 100, 35, 20, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := New()
			w.SetLevelWidth(120, 80)
			w.ScrollX = tc.scroll

			w.SetViewportWidth(tc.window)

			if w.LevelWidth != 120 {
				t.Errorf("LevelWidth = %d, expected 120", w.LevelWidth)
			}
			if w.MaxScrollX != tc.maxScroll {
				t.Errorf("MaxScrollX = %f, expected %f", w.MaxScrollX, tc.maxScroll)
			}
			if w.ScrollX != tc.wantScrollX {
				t.Errorf("ScrollX = %f, expected %f", w.ScrollX, tc.wantScrollX)
			}
		})
	}
}

func TestPlayerDefaults(t *testing.T) {
	p := NewPlayer()
	if p.Entity != nil || p.Movement.Any() || p.Grounded {
		t.Error("new player should be unattached, idle and airborne")
	}
	if p.JumpForce != 1 || p.Speed != 1 || p.StepSize != 5 {
		t.Errorf("defaults = %v/%v/%v, expected 1/1/5", p.JumpForce, p.Speed, p.StepSize)
	}
}

func TestSpriteCurrent(t *testing.T) {
	s := Sprite{Glyph: 'x'}
	if s.Current() != 'x' {
		t.Errorf("Current() = %q, expected glyph", s.Current())
	}
	s.Frames = []rune{'a', 'b'}
	s.Frame = 3
	if s.Current() != 'b' {
		t.Errorf("Current() = %q, expected 'b'", s.Current())
	}
}
