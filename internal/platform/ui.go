package platform

import (
	"github.com/vovakirdan/tsee/internal/core"
	"github.com/vovakirdan/tsee/internal/engine"
	"github.com/vovakirdan/tsee/internal/world"
)

// toolbarGap is the spacing between toolbar entries.
const toolbarGap = 2

// UIBuilder lays out the toolbar along the top row, each entry's buttons in
// a column below it, and optionally a help line on the bottom row.
type UIBuilder struct {
	HelpLine string
}

var _ engine.UIBuilder = (*UIBuilder)(nil)

// Init implements engine.UIBuilder.
func (b *UIBuilder) Init(e *engine.Engine) error {
	x := 1
	for _, entry := range e.UI.Toolbar {
		if entry.Text == nil {
			continue
		}
		w := len([]rune(entry.Text.Content))
		entry.Text.Screen = core.NewRect(x, 0, w, 1)
		for i, button := range entry.Buttons {
			if button.Text == nil {
				continue
			}
			button.Text.Screen = core.NewRect(x, 1+i, len([]rune(button.Text.Content)), 1)
		}
		x += w + toolbarGap
	}

	if b.HelpLine != "" && e.Window != nil {
		e.World.AddText(world.NewText(b.HelpLine, "", 1, e.Window.Height-1, core.ColorGray))
	}
	return nil
}
