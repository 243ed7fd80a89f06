package tui

import (
	"errors"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrNotStarted is returned when the terminal is used before Start.
var ErrNotStarted = errors.New("tui: terminal not started")

// Model is the Bubble Tea model that displays engine frames. It holds no
// game state: key presses and resizes are forwarded to the engine side
// through channels, and frames arrive as FrameMsg.
type Model struct {
	frame    string
	keys     chan<- tea.KeyMsg
	sizes    chan<- tea.WindowSizeMsg
	quitting bool
}

// NewModel creates a display model forwarding input to the given channels.
func NewModel(keys chan<- tea.KeyMsg, sizes chan<- tea.WindowSizeMsg) Model {
	return Model{keys: keys, sizes: sizes}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Drop keys when the engine falls behind rather than block the
		// program's event loop.
		select {
		case m.keys <- msg:
		default:
		}
		return m, nil

	case tea.WindowSizeMsg:
		select {
		case m.sizes <- msg:
		default:
		}
		return m, nil

	case FrameMsg:
		m.frame = string(msg)
		return m, nil

	case quitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the last received frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.frame
}

type quitMsg struct{}

// Terminal runs the display program on its own goroutine.
type Terminal struct {
	keys  chan tea.KeyMsg
	sizes chan tea.WindowSizeMsg
	opts  []tea.ProgramOption

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	err     error
}

// NewTerminal creates a terminal using the given program options. With no
// options it takes over the controlling terminal in the alternate screen.
func NewTerminal(opts ...tea.ProgramOption) *Terminal {
	if len(opts) == 0 {
		opts = []tea.ProgramOption{tea.WithAltScreen()}
	}
	return &Terminal{
		keys:  make(chan tea.KeyMsg, 64),
		sizes: make(chan tea.WindowSizeMsg, 4),
		opts:  opts,
	}
}

// NewTestTerminal creates a terminal reading from in and writing to out,
// without a renderer or signal handling.
func NewTestTerminal(in io.Reader, out io.Writer) *Terminal {
	return NewTerminal(
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithoutRenderer(),
		tea.WithoutSignalHandler(),
	)
}

// Start launches the program. Calling Start on a running terminal is a no-op.
func (t *Terminal) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return nil
	}
	t.program = tea.NewProgram(NewModel(t.keys, t.sizes), t.opts...)
	t.done = make(chan struct{})

	go func(p *tea.Program, done chan struct{}) {
		_, err := p.Run()
		t.mu.Lock()
		t.err = err
		t.mu.Unlock()
		close(done)
	}(t.program, t.done)

	return nil
}

// Send delivers a frame to the display.
func (t *Terminal) Send(frame string) error {
	t.mu.Lock()
	p := t.program
	t.mu.Unlock()

	if p == nil {
		return ErrNotStarted
	}
	if t.Exited() {
		return nil
	}
	p.Send(FrameMsg(frame))
	return nil
}

// Keys returns the channel of forwarded key presses.
func (t *Terminal) Keys() <-chan tea.KeyMsg {
	return t.keys
}

// Sizes returns the channel of forwarded resize events.
func (t *Terminal) Sizes() <-chan tea.WindowSizeMsg {
	return t.sizes
}

// Exited reports whether the program has stopped on its own or via Stop.
func (t *Terminal) Exited() bool {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return false
	}
	select {
	case <-done:
		return true
	default:
		return false
	}
}

// Stop quits the program, waits for it to restore the terminal and returns
// the error it exited with.
func (t *Terminal) Stop() error {
	t.mu.Lock()
	p, done := t.program, t.done
	t.mu.Unlock()

	if p == nil {
		return nil
	}
	p.Send(quitMsg{})
	<-done

	t.mu.Lock()
	defer t.mu.Unlock()
	t.program = nil
	err := t.err
	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	return err
}
