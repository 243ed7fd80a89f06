package platform

import (
	"github.com/vovakirdan/tsee/internal/core"
	"github.com/vovakirdan/tsee/internal/engine"
	"github.com/vovakirdan/tsee/internal/world"
)

// Movement converts directional actions into a player movement intent.
func Movement(f core.InputFrame) world.Movement {
	return world.Movement{
		Up:    f.Has(core.ActionUp),
		Down:  f.Has(core.ActionDown),
		Left:  f.Has(core.ActionLeft),
		Right: f.Has(core.ActionRight),
	}
}

// Dispatch applies the engine-level actions of a frame: quit, the debug
// toggle and toolbar cycling. Directional actions are left for the input
// mapper.
func Dispatch(e *engine.Engine, f core.InputFrame) {
	if f.Has(core.ActionQuit) {
		e.RequestQuit()
	}
	if f.Has(core.ActionDebug) && e.Debug != nil {
		e.Debug.Active = !e.Debug.Active
	}
	if f.Has(core.ActionMenu) && e.UI != nil {
		CycleToolbar(e.UI)
	}
}

// CycleToolbar opens the next toolbar entry. After the last entry every
// entry is closed again.
func CycleToolbar(ui *engine.UI) {
	open := -1
	for i, entry := range ui.Toolbar {
		if entry.Open {
			open = i
		}
		entry.Open = false
	}
	if next := open + 1; next < len(ui.Toolbar) {
		ui.Toolbar[next].Open = true
	}
}
