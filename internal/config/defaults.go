package config

import (
	_ "embed"

	"github.com/vovakirdan/tsee/internal/engine"
)

//go:embed defaults/engine.yaml
var defaultEngineYAML []byte

// Default returns the hard-coded engine configuration.
func Default() EngineConfig {
	return EngineConfig{
		Window: WindowConfig{
			FPS: engine.DefaultFPS,
		},
		World: WorldConfig{
			GravityY:   -40,
			LevelWidth: 240,
		},
		Player: PlayerConfig{
			JumpForce: 1,
			Speed:     1,
			StepSize:  5,
		},
		Fonts: []FontConfig{
			{Name: "mono", Path: "builtin:mono", Size: 12},
		},
		Toolbar: []ToolbarMenu{
			{
				Label: "Game",
				Buttons: []ToolbarButton{
					{Label: "Debug", Action: "debug"},
					{Label: "Quit", Action: "quit"},
				},
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultEngineYAML
}
