// Package config handles viewer configuration loading and persistence.
package config

import "github.com/voxfell/hyperspin/internal/hypercube"

// Config holds all viewer settings.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Scene   SceneConfig   `yaml:"scene"`
	Logging LoggingConfig `yaml:"logging"`
}

// DisplayConfig holds window settings.
type DisplayConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// SceneConfig holds the rendering preferences that survive restarts.
type SceneConfig struct {
	Dimension   int   `yaml:"dimension"` // last selected, one of 2, 3, 4
	EdgeShading bool  `yaml:"edge_shading"`
	FaceFill    bool  `yaml:"face_fill"`
	Seed        int64 `yaml:"seed"` // 0 draws fresh rotation velocities each run
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Width:      1024,
			Height:     768,
			Fullscreen: false,
			VSync:      true,
		},
		Scene: SceneConfig{
			Dimension:   hypercube.MaxDimension,
			EdgeShading: true,
			FaceFill:    false,
			Seed:        0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// normalize repairs values a hand-edited file may carry. The scene only
// accepts dimensions 2 through 4; anything else falls back to the default.
func (c *Config) normalize() {
	if !hypercube.ValidDimension(c.Scene.Dimension) {
		c.Scene.Dimension = hypercube.MaxDimension
	}
	if c.Display.Width <= 0 {
		c.Display.Width = Default().Display.Width
	}
	if c.Display.Height <= 0 {
		c.Display.Height = Default().Display.Height
	}
}
