package config

import (
	_ "embed"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

//go:embed defaults/dragon.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Display: Display{
			Width:  core.DefaultScreenW,
			Height: core.DefaultScreenH,
			FPS:    60,
		},
		Seed: 0,
		Log: Log{
			Level: "info",
			File:  "~/.dragon/dragon.log",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
