package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tsee/internal/core"
)

// palette holds the ANSI colour index for each engine colour.
// ColorDefault keeps the terminal foreground.
var palette = map[core.Color]string{
	core.ColorRed:         "1",
	core.ColorGreen:       "2",
	core.ColorYellow:      "3",
	core.ColorBlue:        "4",
	core.ColorMagenta:     "5",
	core.ColorCyan:        "6",
	core.ColorWhite:       "7",
	core.ColorBrightGreen: "10",
	core.ColorBrightBlue:  "12",
	core.ColorOrange:      "208",
	core.ColorGray:        "245",
}

// overlayBackground shades the debug rows so they read as a panel over
// the scene rather than part of it.
const overlayBackground = lipgloss.Color("236")

// Frame is a composed screen ready to present. The last Overlay rows hold
// the debug overlay.
type Frame struct {
	Screen  *core.Screen
	Overlay int
}

// cellStyle returns the style for a run of c-coloured cells. Overlay runs
// sit on the panel background and draw gray text in a lighter shade.
func cellStyle(c core.Color, overlay bool) lipgloss.Style {
	st := lipgloss.NewStyle()
	if overlay {
		st = st.Background(overlayBackground)
		if c == core.ColorGray || c == core.ColorDefault {
			return st.Foreground(lipgloss.Color("252"))
		}
	}
	if code, ok := palette[c]; ok {
		st = st.Foreground(lipgloss.Color(code))
	}
	return st
}

// RenderScreen turns a frame into the string handed to bubbletea.
// Each row is emitted as runs of equal colour, one escape sequence per run.
func RenderScreen(f Frame) string {
	s := f.Screen
	if s == nil {
		return ""
	}
	firstOverlay := s.Height() - core.Clamp(f.Overlay, 0, s.Height())

	rows := make([]string, s.Height())
	for y := range rows {
		rows[y] = renderRow(s, y, y >= firstOverlay)
	}
	return strings.Join(rows, "\n")
}

func renderRow(s *core.Screen, y int, overlay bool) string {
	var sb strings.Builder
	for x := 0; x < s.Width(); {
		c := s.GetCell(x, y).Color
		start := x
		for x < s.Width() && s.GetCell(x, y).Color == c {
			x++
		}
		var run strings.Builder
		for i := start; i < x; i++ {
			run.WriteRune(s.GetCell(i, y).Rune)
		}
		sb.WriteString(cellStyle(c, overlay).Render(run.String()))
	}
	return sb.String()
}
