// Package config loads engine settings from YAML or TOML files.
package config

// EngineConfig contains every setting applied to a freshly created engine.
type EngineConfig struct {
	Window  WindowConfig  `yaml:"window" toml:"window"`
	World   WorldConfig   `yaml:"world" toml:"world"`
	Player  PlayerConfig  `yaml:"player" toml:"player"`
	Debug   DebugConfig   `yaml:"debug" toml:"debug"`
	Fonts   []FontConfig  `yaml:"fonts" toml:"fonts"`
	Toolbar []ToolbarMenu `yaml:"toolbar" toml:"toolbar"`
}

// WindowConfig defines the output surface. Zero width or height means
// "size from the terminal".
type WindowConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
	FPS    int `yaml:"fps" toml:"fps"`
}

// WorldConfig defines world physics and bounds.
type WorldConfig struct {
	GravityX   float64 `yaml:"gravity_x" toml:"gravity_x"`
	GravityY   float64 `yaml:"gravity_y" toml:"gravity_y"` // Negative pulls down, world y grows upward
	LevelWidth int     `yaml:"level_width" toml:"level_width"`
}

// PlayerConfig defines player movement parameters.
type PlayerConfig struct {
	JumpForce float64 `yaml:"jump_force" toml:"jump_force"`
	Speed     float64 `yaml:"speed" toml:"speed"`
	StepSize  float64 `yaml:"step_size" toml:"step_size"`
}

// DebugConfig toggles the debug overlay.
type DebugConfig struct {
	Active bool `yaml:"active" toml:"active"`
}

// FontConfig names a font to load at start-up.
type FontConfig struct {
	Name string `yaml:"name" toml:"name"`
	Path string `yaml:"path" toml:"path"`
	Size int    `yaml:"size" toml:"size"`
}

// ToolbarMenu is one toolbar entry and its buttons.
type ToolbarMenu struct {
	Label   string          `yaml:"label" toml:"label"`
	Buttons []ToolbarButton `yaml:"buttons" toml:"buttons"`
}

// ToolbarButton is one button of a toolbar menu.
type ToolbarButton struct {
	Label  string `yaml:"label" toml:"label"`
	Action string `yaml:"action" toml:"action"`
}
