package console

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tsee/internal/core"
)

// Action maps a tcell key to an engine action. r is only consulted for
// tcell.KeyRune.
func Action(k tcell.Key, r rune) core.Action {
	switch k {
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyUp:
		return core.ActionUp
	case tcell.KeyDown:
		return core.ActionDown
	case tcell.KeyF3:
		return core.ActionDebug
	case tcell.KeyTab:
		return core.ActionMenu
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		return runeAction(r)
	}
	return core.ActionNone
}

func runeAction(r rune) core.Action {
	switch r {
	case 'a', 'h':
		return core.ActionLeft
	case 'd', 'l':
		return core.ActionRight
	case 'w', 'k', ' ':
		return core.ActionUp
	case 's', 'j':
		return core.ActionDown
	case '`':
		return core.ActionDebug
	case 'q':
		return core.ActionQuit
	}
	return core.ActionNone
}
