package engine

import "github.com/vovakirdan/tsee/internal/world"

// UI is the root of the engine's on-screen interface.
type UI struct {
	Toolbar []*ToolbarEntry
}

// ToolbarEntry is one top-level toolbar item with its drop-down buttons.
type ToolbarEntry struct {
	Text    *world.Text
	Buttons []*ToolbarButton
	Open    bool
}

// ToolbarButton is a child item of a toolbar entry.
type ToolbarButton struct {
	Text   *world.Text
	Action string
}
