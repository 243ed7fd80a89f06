package engine

import (
	"github.com/vovakirdan/tsee/internal/core"
	"github.com/vovakirdan/tsee/internal/world"
)

// ScrollToPlayer runs the camera against the player's entity. It does
// nothing when no entity is attached.
func (e *Engine) ScrollToPlayer() world.CameraMove {
	if e.World == nil || e.Player == nil || e.Player.Entity == nil {
		return 0
	}
	return e.World.ScrollToEntity(e.Player.Entity, e.Viewport())
}

// Spawn adds an entity to the world. Player-tagged entities also become the
// player's controlled entity.
func (e *Engine) Spawn(ent *world.Entity) {
	e.World.Add(ent)
	if ent.Has(core.AttribPlayer) && e.Player != nil {
		e.Player.Attach(ent)
	}
}

// Despawn destroys an entity and removes it from the world.
func (e *Engine) Despawn(ent *world.Entity) {
	e.subsystems.Destroyer.Destroy(e, ent, true)
}
