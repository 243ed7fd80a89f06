package world

// Movement is the player's directional intent for the current frame.
type Movement struct {
	Up, Down, Left, Right bool
}

// Any reports whether any direction is requested.
func (m Movement) Any() bool {
	return m.Up || m.Down || m.Left || m.Right
}

// Player drives one entity. Entity is a non-owning reference: the World's
// sequence owns it.
type Player struct {
	Entity    *Entity
	Movement  Movement
	Grounded  bool
	HeldUp    int
	JumpForce float64
	Speed     float64
	StepSize  float64
}

// NewPlayer creates an unattached player with the engine defaults.
func NewPlayer() *Player {
	return &Player{
		JumpForce: 1,
		Speed:     1,
		StepSize:  5,
	}
}

// Attach points the player at an entity already owned by a World.
func (p *Player) Attach(e *Entity) {
	p.Entity = e
}
