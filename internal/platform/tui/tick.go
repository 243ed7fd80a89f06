// Package tui is the terminal back-end of the engine. A Bubble Tea program
// owns the terminal and displays frames; the engine's main loop stays in
// charge of timing and pushes each composed frame to the program.
package tui

import (
	"time"

	"github.com/vovakirdan/tsee/internal/engine"
)

// FrameMsg carries a fully rendered frame to the display model.
type FrameMsg string

// frameInterval returns the frame budget at the given rate.
func frameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = engine.DefaultFPS
	}
	return time.Second / time.Duration(fps)
}
