package scenes

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tsee/internal/core"
	"github.com/vovakirdan/tsee/internal/engine"
)

func newEngine(t *testing.T, w, h int) *engine.Engine {
	t.Helper()
	e, err := engine.Create(w, h, engine.WithLogger(log.New(io.Discard)))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { e.Close() })
	return e
}

func TestBuild(t *testing.T) {
	e := newEngine(t, 10, 8)

	lvl, err := Build(e, []string{
		"  o   ==   ",
		" @   x     ",
		"####  #####",
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if lvl.Width != 11 || lvl.Height != 3 {
		t.Errorf("level = %dx%d, want 11x3", lvl.Width, lvl.Height)
	}
	if e.World.MaxScrollX != 1 {
		t.Errorf("MaxScrollX = %v, want 1", e.World.MaxScrollX)
	}
	if e.Player.Entity != lvl.Player {
		t.Error("player tile should become the player's entity")
	}
	if lvl.Player.Position != (core.Vec2{X: 1, Y: 2}) {
		t.Errorf("player at %+v, want (1,2)", lvl.Player.Position)
	}

	var statics, coins, crates int
	var widths []int
	for _, ent := range e.World.Objects {
		switch {
		case ent.Has(core.AttribStatic):
			statics++
			widths = append(widths, ent.Screen.W)
		case ent.Has(core.AttribPhysics):
			crates++
		case ent.Has(core.AttribPlayer):
		default:
			coins++
		}
	}
	if statics != 3 || coins != 1 || crates != 1 {
		t.Errorf("statics=%d coins=%d crates=%d, want 3 1 1", statics, coins, crates)
	}
	want := []int{2, 4, 5}
	for i := range want {
		if i >= len(widths) || widths[i] != want[i] {
			t.Errorf("solid widths = %v, want %v", widths, want)
			break
		}
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		target error
	}{
		{"no player", []string{"####"}, ErrNoPlayer},
		{"two players", []string{"@ @", "###"}, nil},
		{"unknown tile", []string{"@ %", "###"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t, 10, 8)
			_, err := Build(e, tt.rows)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("err = %v, want %v", err, tt.target)
			}
		})
	}
}

func TestBackdropAndHUD(t *testing.T) {
	e := newEngine(t, 10, 8)

	Backdrop(e, 2, "a b", core.ColorGray)
	// "a b" tiled over 10 columns: a at 0,3,6,9 and b at 2,5,8.
	if got := len(e.World.Parallax); got != 7 {
		t.Errorf("parallax entities = %d, want 7", got)
	}
	for _, ent := range e.World.Parallax {
		if !ent.Has(core.AttribParallax) || ent.Screen.Y != 2 {
			t.Errorf("backdrop entity %+v", ent)
		}
	}

	hud := HUD(e, '♥', core.ColorRed)
	if !hud.Has(core.AttribUI) || hud.Screen.X != 8 {
		t.Errorf("hud = %+v", hud)
	}
}
