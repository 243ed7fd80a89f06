package world

import (
	"math/rand/v2"
	"testing"

	"github.com/vovakirdan/tsee/internal/core"
)

var view800 = Viewport{Width: 800, Height: 600}

func TestScrollLeftGuardAtOrigin(t *testing.T) {
	w := New()
	w.MaxScrollX = 1000
	tracked := NewEntity(50, 0, 0, 0, core.AttribNone)
	w.Add(tracked)

	moved := w.ScrollToEntity(tracked, view800)

	if moved.Has(MoveLeft) {
		t.Error("left branch must not fire while ScrollX == 0")
	}
	if w.ScrollX != 0 {
		t.Errorf("ScrollX = %f, expected 0", w.ScrollX)
	}
	if tracked.Screen.X != 50 {
		t.Errorf("Screen.X = %d, expected 50", tracked.Screen.X)
	}
}

func TestScrollRightByOvershoot(t *testing.T) {
	w := New()
	w.MaxScrollX = 1000
	w.ScrollX = 500
	tracked := NewEntity(590, 0, 20, 0, core.AttribPlayer)
	w.Add(tracked)

	moved := w.ScrollToEntity(tracked, view800)

	if !moved.Has(MoveRight) {
		t.Fatal("right branch should fire")
	}
	if w.ScrollX != 700 {
		t.Errorf("ScrollX = %f, expected 700", w.ScrollX)
	}
	if tracked.Screen.X != 390 {
		t.Errorf("tracked Screen.X = %d, expected 390 (centre minus half width)", tracked.Screen.X)
	}
}

func TestScrollRightClampsToMax(t *testing.T) {
	w := New()
	w.MaxScrollX = 1000
	w.ScrollX = 900
	tracked := NewEntity(700, 0, 0, 0, core.AttribPlayer)

	w.ScrollToEntity(tracked, view800)

	if w.ScrollX != 1000 {
		t.Errorf("ScrollX = %f, expected clamp to 1000", w.ScrollX)
	}
}

func TestScrollLeftByOvershoot(t *testing.T) {
	w := New()
	w.MaxScrollX = 1000
	w.ScrollX = 300
	tracked := NewEntity(100, 0, 0, 0, core.AttribPlayer)

	moved := w.ScrollToEntity(tracked, view800)

	if !moved.Has(MoveLeft) {
		t.Fatal("left branch should fire")
	}
	if w.ScrollX != 0 {
		t.Errorf("ScrollX = %f, expected 300-300 = 0", w.ScrollX)
	}
}

func TestScrollInsideDeadZoneDoesNotMove(t *testing.T) {
	w := New()
	w.MaxScrollX = 1000
	w.ScrollX = 250
	tracked := NewEntity(400, 0, 0, 0, core.AttribPlayer)

	moved := w.ScrollToEntity(tracked, view800)

	if moved != 0 {
		t.Errorf("no branch should fire at the exact centre, got %b", moved)
	}
	if w.ScrollX != 250 {
		t.Errorf("ScrollX = %f, expected 250", w.ScrollX)
	}
}

func TestScrollFloorPinsTrackedEntity(t *testing.T) {
	w := New()
	// floor threshold = 300 * 0.75 = 225
	tracked := NewEntity(400, 300, 10, 10, core.AttribPlayer)

	moved := w.ScrollToEntity(tracked, view800)

	if !moved.Has(MoveFloor) {
		t.Fatal("floor branch should fire")
	}
	if tracked.Screen.Y != 220 {
		t.Errorf("Screen.Y = %d, expected 225 - 5 = 220", tracked.Screen.Y)
	}
	if w.ScrollY != 0 {
		t.Errorf("ScrollY = %f, expected clamp to 0", w.ScrollY)
	}
}

func TestScrollClampInvariant(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	w := New()
	w.MaxScrollX = 1000
	tracked := NewEntity(0, 0, 16, 16, core.AttribPlayer)
	w.Add(tracked)

	for i := 0; i < 2000; i++ {
		tracked.Position = core.Vec2{
			X: rng.Float64()*20000 - 10000,
			Y: rng.Float64()*20000 - 10000,
		}
		w.ScrollToEntity(tracked, view800)

		if w.ScrollX < 0 || w.ScrollX > w.MaxScrollX {
			t.Fatalf("frame %d: ScrollX = %f outside [0, %f]", i, w.ScrollX, w.MaxScrollX)
		}
		if w.ScrollY < 0 {
			t.Fatalf("frame %d: ScrollY = %f < 0", i, w.ScrollY)
		}
	}
}

func TestScrollSingleScreenLevelPinned(t *testing.T) {
	w := New()
	w.SetLevelWidth(800, 800)
	tracked := NewEntity(0, 0, 4, 4, core.AttribPlayer)

	for _, x := range []float64{-500, 0, 200, 399, 401, 799, 5000, -1} {
		tracked.Position.X = x
		w.ScrollToEntity(tracked, view800)
		if w.ScrollX != 0 {
			t.Fatalf("x=%f: ScrollX = %f, expected 0 on a single-screen level", x, w.ScrollX)
		}
	}
}

// The ceiling branch is guarded by ScrollY < 0, which the clamp at the end of
// every update rules out.
func TestScrollCeilingNeverFiresUnderClamp(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	w := New()
	w.MaxScrollX = 400
	tracked := NewEntity(0, 0, 2, 2, core.AttribPlayer)

	for i := 0; i < 2000; i++ {
		tracked.Position = core.Vec2{X: rng.Float64() * 1200, Y: rng.Float64()*1200 - 600}
		if moved := w.ScrollToEntity(tracked, view800); moved.Has(MoveCeiling) {
			t.Fatalf("frame %d: ceiling branch fired with ScrollY = %f", i, w.ScrollY)
		}
	}
}

func TestScrollCeilingFiresOnlyWhenInvariantBroken(t *testing.T) {
	w := New()
	w.ScrollY = -50
	tracked := NewEntity(400, 10, 0, 0, core.AttribPlayer)

	moved := w.ScrollToEntity(tracked, view800)

	if !moved.Has(MoveCeiling) {
		t.Fatal("ceiling branch should fire when ScrollY starts negative")
	}
	if w.ScrollY != 15 {
		t.Errorf("ScrollY = %f, expected -50 + (75 - 10) = 15", w.ScrollY)
	}
}

func TestReprojection(t *testing.T) {
	w := New()
	w.MaxScrollX = 1000
	w.ScrollX = 100

	plain := NewEntity(120, 30, 5, 5, core.AttribStatic)
	parallax := NewEntity(0, 200, 5, 5, core.AttribParallax)
	parallax.Screen.X = 77
	ui := NewEntity(10, 10, 5, 5, core.AttribUI)
	ui.Screen = core.NewRect(1, 2, 5, 5)
	player := NewEntity(400, 0, 0, 0, core.AttribPlayer)
	player.Screen = core.NewRect(9, 9, 0, 0)
	w.Add(plain)
	w.Add(parallax)
	w.Add(ui)
	w.Add(player)

	w.ScrollToEntity(player, view800)

	if plain.Screen.X != 20 {
		t.Errorf("plain Screen.X = %d, expected world.x - scroll = 20", plain.Screen.X)
	}
	if plain.Screen.Y != 570 {
		t.Errorf("plain Screen.Y = %d, expected -30 + 600 - 0 = 570", plain.Screen.Y)
	}
	if parallax.Screen.X != 77 {
		t.Errorf("parallax Screen.X = %d, expected unchanged 77", parallax.Screen.X)
	}
	if parallax.Screen.Y != 400 {
		t.Errorf("parallax Screen.Y = %d, expected -200 + 600 = 400", parallax.Screen.Y)
	}
	if ui.Screen != core.NewRect(1, 2, 5, 5) {
		t.Errorf("UI entity was re-projected: %+v", ui.Screen)
	}
	if player.Screen != core.NewRect(9, 9, 0, 0) {
		t.Errorf("player entity was re-projected: %+v", player.Screen)
	}
}

func TestProjectMatchesReprojection(t *testing.T) {
	w := New()
	w.MaxScrollX = 50
	w.ScrollX = 50
	e := NewEntity(80, 12, 3, 3, core.AttribStatic)
	w.Add(e)
	tracked := NewEntity(40, 0, 0, 0, core.AttribPlayer)

	view := Viewport{Width: 80, Height: 24}
	w.ScrollToEntity(tracked, view)

	if got := w.Project(e, view); got != e.Screen {
		t.Errorf("Project() = %+v, camera produced %+v", got, e.Screen)
	}
}
