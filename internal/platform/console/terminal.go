// Package console is the tcell back-end of the engine. Frames are written
// cell by cell to a tcell screen and events are polled on a goroutine into a
// buffered channel that the engine drains once per frame.
package console

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tsee/internal/core"
)

// ErrNotStarted is returned when presenting to a terminal that is not running.
var ErrNotStarted = errors.New("console: terminal not started")

// eventBuffer bounds the queue between the poller and the engine. Events
// beyond it are dropped until the engine catches up.
const eventBuffer = 100

// Terminal owns a tcell screen and its event poller.
type Terminal struct {
	events chan tcell.Event

	mu      sync.Mutex
	screen  tcell.Screen
	done    chan struct{}
	started bool
}

// NewTerminal creates a terminal on screen. A nil screen opens the
// controlling terminal when started.
func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen: screen,
		events: make(chan tcell.Event, eventBuffer),
	}
}

// Start initializes the screen and launches the event poller. Calling Start
// on a running terminal is a no-op.
func (t *Terminal) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}
	if t.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("console: open screen: %w", err)
		}
		t.screen = s
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("console: init screen: %w", err)
	}
	t.screen.HideCursor()

	t.done = make(chan struct{})
	go t.poll(t.screen, t.done)
	t.started = true
	return nil
}

// poll forwards events until the screen is finalized.
func (t *Terminal) poll(s tcell.Screen, done chan struct{}) {
	defer close(done)
	for {
		ev := s.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		default:
		}
	}
}

// Events returns the channel of polled events.
func (t *Terminal) Events() <-chan tcell.Event {
	return t.events
}

// Present copies buf to the screen and shows it.
func (t *Terminal) Present(buf *core.Screen) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.started {
		return ErrNotStarted
	}
	for y := range buf.Height() {
		for x := range buf.Width() {
			c := buf.GetCell(x, y)
			t.screen.SetContent(x, y, c.Rune, nil, styleFor(c.Color))
		}
	}
	t.screen.Show()
	return nil
}

// Blank clears the screen.
func (t *Terminal) Blank() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.started {
		return
	}
	t.screen.Clear()
	t.screen.Show()
}

// Size returns the screen size, or zero before Start.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.started {
		return 0, 0
	}
	return t.screen.Size()
}

// Stop restores the terminal and waits for the poller to exit.
func (t *Terminal) Stop() {
	t.mu.Lock()
	if !t.started {
		t.mu.Unlock()
		return
	}
	s, done := t.screen, t.done
	t.started = false
	t.mu.Unlock()

	s.Fini()
	<-done
}

var palette = map[core.Color]tcell.Style{
	core.ColorDefault:     tcell.StyleDefault,
	core.ColorRed:         tcell.StyleDefault.Foreground(tcell.PaletteColor(1)),
	core.ColorGreen:       tcell.StyleDefault.Foreground(tcell.PaletteColor(2)),
	core.ColorYellow:      tcell.StyleDefault.Foreground(tcell.PaletteColor(3)),
	core.ColorBlue:        tcell.StyleDefault.Foreground(tcell.PaletteColor(4)),
	core.ColorMagenta:     tcell.StyleDefault.Foreground(tcell.PaletteColor(5)),
	core.ColorCyan:        tcell.StyleDefault.Foreground(tcell.PaletteColor(6)),
	core.ColorWhite:       tcell.StyleDefault.Foreground(tcell.PaletteColor(7)),
	core.ColorBrightGreen: tcell.StyleDefault.Foreground(tcell.PaletteColor(10)),
	core.ColorBrightBlue:  tcell.StyleDefault.Foreground(tcell.PaletteColor(12)),
	core.ColorOrange:      tcell.StyleDefault.Foreground(tcell.PaletteColor(208)),
	core.ColorGray:        tcell.StyleDefault.Foreground(tcell.PaletteColor(245)),
}

func styleFor(c core.Color) tcell.Style {
	if s, ok := palette[c]; ok {
		return s
	}
	return tcell.StyleDefault
}
