package physics

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tsee/internal/core"
	"github.com/vovakirdan/tsee/internal/engine"
	"github.com/vovakirdan/tsee/internal/world"
)

// quarterSource advances by a quarter of a second per sample.
type quarterSource struct{ n uint64 }

func (s *quarterSource) Counter() uint64   { s.n += 250; return s.n }
func (s *quarterSource) Frequency() uint64 { return 1000 }

func newEngine(t *testing.T) *engine.Engine {
	t.Helper()
	e, err := engine.Create(80, 24,
		engine.WithLogger(log.New(io.Discard)),
		engine.WithClockSource(&quarterSource{}),
	)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { e.Close() })
	return e
}

func step(e *engine.Engine, n int) {
	for range n {
		e.Clock.Advance()
		Stepper{}.PerformStep(e)
	}
}

func TestFallsToFloor(t *testing.T) {
	e := newEngine(t)
	e.World.SetGravity(core.Vec2{Y: -50})
	box := world.NewEntity(10, 12, 2, 2, core.AttribPhysics)
	e.World.Add(box)

	step(e, 40)

	if box.Position.Y != 2 {
		t.Errorf("Position.Y = %v, want 2", box.Position.Y)
	}
	if box.Velocity.Y != 0 {
		t.Errorf("Velocity.Y = %v, want 0", box.Velocity.Y)
	}
}

func TestStaticEntitiesDoNotMove(t *testing.T) {
	e := newEngine(t)
	e.World.SetGravity(core.Vec2{Y: -50})
	wall := world.NewEntity(10, 12, 2, 2, core.AttribStatic)
	e.World.Add(wall)

	step(e, 10)

	if wall.Position.Y != 12 {
		t.Errorf("static entity moved to %v", wall.Position.Y)
	}
}

func TestLandsOnPlatform(t *testing.T) {
	e := newEngine(t)
	e.World.SetGravity(core.Vec2{Y: -50})
	platform := world.NewEntity(0, 6, 20, 1, core.AttribStatic)
	box := world.NewEntity(5, 15, 1, 1, core.AttribPhysics)
	e.World.Add(platform)
	e.World.Add(box)

	step(e, 40)

	if box.Position.Y != 7 {
		t.Errorf("Position.Y = %v, want 7 (resting on the platform)", box.Position.Y)
	}
}

func TestPlayerWalks(t *testing.T) {
	tests := []struct {
		name  string
		move  world.Movement
		wantX float64
	}{
		{"right", world.Movement{Right: true}, 17.5},
		{"left", world.Movement{Left: true}, 2.5},
		{"both", world.Movement{Left: true, Right: true}, 10},
		{"idle", world.Movement{}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t)
			p := world.NewEntity(10, 1, 1, 1, core.AttribPlayer)
			e.Spawn(p)
			e.Player.Movement = tt.move

			step(e, 1)

			if p.Position.X != tt.wantX {
				t.Errorf("Position.X = %v, want %v", p.Position.X, tt.wantX)
			}
		})
	}
}

func TestPlayerStaysInLevel(t *testing.T) {
	e := newEngine(t)
	e.World.SetLevelWidth(100, 80)
	p := world.NewEntity(1, 1, 2, 1, core.AttribPlayer)
	e.Spawn(p)

	e.Player.Movement = world.Movement{Left: true}
	step(e, 5)
	if p.Position.X != 0 {
		t.Errorf("Position.X = %v, want 0", p.Position.X)
	}

	e.Player.Movement = world.Movement{Right: true}
	step(e, 100)
	if p.Position.X != 98 {
		t.Errorf("Position.X = %v, want 98", p.Position.X)
	}
}

func TestPlayerJump(t *testing.T) {
	e := newEngine(t)
	e.World.SetGravity(core.Vec2{Y: -30})
	p := world.NewEntity(10, 1, 1, 1, core.AttribPlayer)
	e.Spawn(p)

	step(e, 1)
	if !e.Player.Grounded {
		t.Fatal("player on the floor should be grounded")
	}

	e.Player.Movement.Up = true
	step(e, 1)
	if e.Player.Grounded {
		t.Error("player should leave the ground")
	}
	if p.Position.Y <= 1 {
		t.Errorf("Position.Y = %v, want above the floor", p.Position.Y)
	}
	if e.Player.HeldUp != 1 {
		t.Errorf("HeldUp = %d, want 1", e.Player.HeldUp)
	}

	e.Player.Movement.Up = false
	step(e, 60)
	if !e.Player.Grounded || p.Position.Y != 1 {
		t.Errorf("player should land again: grounded=%v y=%v", e.Player.Grounded, p.Position.Y)
	}
	if e.Player.HeldUp != 0 {
		t.Errorf("HeldUp = %d, want 0 after landing", e.Player.HeldUp)
	}
}

func TestPlayerCannotJumpMidAir(t *testing.T) {
	e := newEngine(t)
	e.World.SetGravity(core.Vec2{Y: -30})
	p := world.NewEntity(10, 15, 1, 1, core.AttribPlayer)
	e.Spawn(p)

	e.Player.Movement.Up = true
	step(e, 1)

	if p.Velocity.Y > 0 {
		t.Errorf("Velocity.Y = %v, falling player should not jump", p.Velocity.Y)
	}
}

func TestPlayerScreenProjected(t *testing.T) {
	e := newEngine(t)
	p := world.NewEntity(10, 1, 1, 1, core.AttribPlayer)
	e.Spawn(p)

	step(e, 1)

	if p.Screen.X != 10 || p.Screen.Y != 23 {
		t.Errorf("Screen = (%d,%d), want (10,23)", p.Screen.X, p.Screen.Y)
	}
}

func TestPlayerBlockedByWall(t *testing.T) {
	e := newEngine(t)
	wall := world.NewEntity(12, 2, 2, 2, core.AttribStatic)
	p := world.NewEntity(10, 1, 1, 1, core.AttribPlayer)
	e.World.Add(wall)
	e.Spawn(p)
	e.Player.StepSize = 1
	e.Player.Movement = world.Movement{Right: true}

	step(e, 3)

	if p.Position.X != 10 {
		t.Errorf("Position.X = %v, want 10 (stopped by the wall)", p.Position.X)
	}
}
