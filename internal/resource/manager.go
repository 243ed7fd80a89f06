package resource

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tsee/internal/engine"
)

// FontSpec describes a font to load when the manager initializes.
type FontSpec struct {
	Name string
	Path string
	Size int
}

// Manager is the engine's resource subsystem. Init creates the font store,
// UnloadAll empties it, Close releases it. UnloadAll and Close are safe to
// call before Init and more than once.
type Manager struct {
	loader Loader
	specs  []FontSpec
	logger *log.Logger
	fonts  *Fonts
}

// NewManager creates a manager that loads specs on Init.
func NewManager(loader Loader, specs []FontSpec) *Manager {
	return &Manager{
		loader: loader,
		specs:  specs,
		logger: log.Default(),
	}
}

var _ engine.ResourceManager = (*Manager)(nil)

// Init creates the font store and loads the configured fonts. A font that
// fails to load is logged and skipped.
func (m *Manager) Init(e *engine.Engine) error {
	if m.fonts != nil {
		return fmt.Errorf("resource: manager already initialized")
	}
	m.logger = e.Logger()
	m.fonts = NewFonts(m.loader, m.logger)
	for _, spec := range m.specs {
		if err := m.fonts.Load(spec.Path, spec.Size, spec.Name); err != nil {
			continue
		}
		m.logger.Debug("loaded font", "name", spec.Name, "size", spec.Size)
	}
	return nil
}

// Fonts returns the font store, or nil when the manager is not initialized.
func (m *Manager) Fonts() *Fonts {
	return m.fonts
}

// UnloadAll closes every loaded font. The store stays usable for new loads.
func (m *Manager) UnloadAll(_ *engine.Engine) {
	if m.fonts == nil {
		return
	}
	if err := m.fonts.UnloadAll(); err != nil {
		m.logger.Warn("failed to unload fonts cleanly", "error", err)
	}
}

// Close releases the font store.
func (m *Manager) Close(e *engine.Engine) {
	if m.fonts == nil {
		return
	}
	if m.fonts.Len() > 0 {
		m.UnloadAll(e)
	}
	m.fonts = nil
}
