package core

// Color is the foreground colour of a screen cell.
type Color uint8

// Palette shared by entities, text and the debug overlay.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightBlue
	ColorOrange
	ColorGray
)

var colorNames = map[string]Color{
	"default": ColorDefault,
	"red":     ColorRed,
	"green":   ColorGreen,
	"yellow":  ColorYellow,
	"blue":    ColorBlue,
	"magenta": ColorMagenta,
	"cyan":    ColorCyan,
	"white":   ColorWhite,
	"lime":    ColorBrightGreen,
	"sky":     ColorBrightBlue,
	"orange":  ColorOrange,
	"gray":    ColorGray,
}

// ParseColor resolves a palette name, falling back to ColorDefault.
func ParseColor(name string) Color {
	if c, ok := colorNames[name]; ok {
		return c
	}
	return ColorDefault
}
