package platform

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tsee/internal/core"
	"github.com/vovakirdan/tsee/internal/engine"
	"github.com/vovakirdan/tsee/internal/resource"
	"github.com/vovakirdan/tsee/internal/world"
)

// DefaultFont is loaded by Text.Init when defaults are requested.
const DefaultFont = "mono"

// ErrNoFonts is returned when the text renderer starts before the resource
// manager.
var ErrNoFonts = errors.New("font store not initialized")

// FontSource exposes the loaded font store. *resource.Manager implements it.
type FontSource interface {
	Fonts() *resource.Fonts
}

// Text is the engine's text renderer. Texts are drawn by Compose; this type
// validates fonts on creation and releases texts on teardown.
type Text struct {
	source FontSource
	logger *log.Logger
	ready  bool
}

var _ engine.TextRenderer = (*Text)(nil)

// NewText creates a text renderer resolving fonts through source.
func NewText(source FontSource) *Text {
	return &Text{source: source, logger: log.Default()}
}

// Init implements engine.TextRenderer. With loadDefaults it makes sure
// DefaultFont is available, loading the built-in face if needed.
func (t *Text) Init(e *engine.Engine, loadDefaults bool) error {
	t.logger = e.Logger()
	fonts := t.fonts()
	if fonts == nil {
		return fmt.Errorf("text: %w", ErrNoFonts)
	}
	if loadDefaults && !fonts.Has(DefaultFont) {
		if err := fonts.Load(resource.BuiltinPrefix+DefaultFont, 12, DefaultFont); err != nil {
			return fmt.Errorf("text: load default font: %w", err)
		}
	}
	t.ready = true
	return nil
}

// Create adds a text to the world. An empty font selects DefaultFont.
func (t *Text) Create(e *engine.Engine, content, font string, x, y int, c core.Color) (*world.Text, error) {
	if !t.ready {
		return nil, fmt.Errorf("text: create %q: renderer not initialized", content)
	}
	if font == "" {
		font = DefaultFont
	}
	fonts := t.fonts()
	if fonts == nil {
		return nil, fmt.Errorf("text: %w", ErrNoFonts)
	}
	if _, err := fonts.Get(font); err != nil {
		return nil, fmt.Errorf("text: create %q: %w", content, err)
	}
	txt := world.NewText(content, font, x, y, c)
	e.World.AddText(txt)
	return txt, nil
}

// Destroy implements engine.TextRenderer.
func (t *Text) Destroy(e *engine.Engine, txt *world.Text, remove bool) {
	if txt == nil {
		return
	}
	if remove && e.World != nil {
		e.World.RemoveText(txt)
	}
	txt.Content = ""
	txt.Screen.W = 0
}

// Shutdown implements engine.TextRenderer.
func (t *Text) Shutdown() {
	t.ready = false
	t.logger.Debug("text renderer shut down")
}

func (t *Text) fonts() *resource.Fonts {
	if t.source == nil {
		return nil
	}
	return t.source.Fonts()
}
