package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tsee/internal/core"
	"github.com/vovakirdan/tsee/internal/engine"
	"github.com/vovakirdan/tsee/internal/resource"
	"github.com/vovakirdan/tsee/internal/world"
)

// fileNames are tried in order in every search directory.
var fileNames = []string{"engine.yaml", "engine.toml"}

// Load loads the engine configuration.
// Search order: customPath -> ~/.tsee/configs -> ./configs -> embedded default.
// In each directory engine.yaml wins over engine.toml.
func Load(customPath string) (EngineConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readFile(customPath)
		if err != nil {
			return Default(), err
		}
		return cfg, nil
	}

	// Try user config directory
	if dir := userConfigDir(); dir != "" {
		if cfg, ok := readDir(dir); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := readDir("configs"); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := Default()
	if err := yaml.Unmarshal(defaultEngineYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func readDir(dir string) (EngineConfig, bool) {
	for _, name := range fileNames {
		if cfg, err := readFile(filepath.Join(dir, name)); err == nil {
			return cfg, true
		}
	}
	return EngineConfig{}, false
}

// readFile parses path on top of the defaults, so missing keys keep their
// default values. Files ending in .toml are read as TOML, anything else as
// YAML.
func readFile(path string) (EngineConfig, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Default(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigDir returns the user config directory, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tsee", "configs")
}

// FontSpecs converts the font list for the resource manager.
func (c EngineConfig) FontSpecs() []resource.FontSpec {
	specs := make([]resource.FontSpec, 0, len(c.Fonts))
	for _, f := range c.Fonts {
		specs = append(specs, resource.FontSpec{Name: f.Name, Path: f.Path, Size: f.Size})
	}
	return specs
}

// Apply writes the settings into a created engine. Non-positive values keep
// the engine defaults.
func (c EngineConfig) Apply(e *engine.Engine) {
	if e.Window != nil && c.Window.FPS > 0 {
		e.Window.FPS = c.Window.FPS
	}

	if e.World != nil {
		e.World.SetGravity(core.Vec2{X: c.World.GravityX, Y: c.World.GravityY})
		if e.Window != nil {
			e.World.SetLevelWidth(c.World.LevelWidth, e.Window.Width)
		}
	}

	if p := e.Player; p != nil {
		if c.Player.JumpForce > 0 {
			p.JumpForce = c.Player.JumpForce
		}
		if c.Player.Speed > 0 {
			p.Speed = c.Player.Speed
		}
		if c.Player.StepSize > 0 {
			p.StepSize = c.Player.StepSize
		}
	}

	if e.Debug != nil {
		e.Debug.Active = c.Debug.Active
	}

	if e.UI != nil {
		e.UI.Toolbar = e.UI.Toolbar[:0]
		for _, menu := range c.Toolbar {
			entry := &engine.ToolbarEntry{
				Text: world.NewText(menu.Label, "", 0, 0, core.ColorWhite),
			}
			for _, b := range menu.Buttons {
				entry.Buttons = append(entry.Buttons, &engine.ToolbarButton{
					Text:   world.NewText(b.Label, "", 0, 0, core.ColorWhite),
					Action: b.Action,
				})
			}
			e.UI.Toolbar = append(e.UI.Toolbar, entry)
		}
	}
}
