// Package config provides YAML-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/flappy"
)

// Limits for the display section.
const (
	MinFPS = 1
	MaxFPS = 240
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Config is the top-level configuration file.
type Config struct {
	Display Display `yaml:"display"`
	Seed    int64   `yaml:"seed"`
	Log     Log     `yaml:"log"`
}

// Display defines the screen and the render loop.
type Display struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

// Log defines where and how much the game logs.
type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Validate checks the configuration and returns an error wrapping
// ErrInvalid for the first problem found.
func (c Config) Validate() error {
	if c.Display.Width < flappy.MinScreenW || c.Display.Height < 1 {
		return fmt.Errorf("config: display size %dx%d, need width >= %d: %w",
			c.Display.Width, c.Display.Height, flappy.MinScreenW, ErrInvalid)
	}
	if c.Display.FPS < MinFPS || c.Display.FPS > MaxFPS {
		return fmt.Errorf("config: fps %d not in [%d, %d]: %w", c.Display.FPS, MinFPS, MaxFPS, ErrInvalid)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log level %q: %w", c.Log.Level, ErrInvalid)
	}
	return nil
}

// LogLevel returns the parsed log level, falling back to info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Runtime converts the configuration into the game's runtime config.
func (c Config) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  c.Display.Width,
		ScreenH:  c.Display.Height,
		TickRate: c.Display.FPS,
		Seed:     c.Seed,
	}
}

// Overrides holds command-line values that take precedence over the file.
// Nil fields are left alone.
type Overrides struct {
	FPS      *int
	Seed     *int64
	LogLevel *string
	LogFile  *string
}

// Apply copies every set override into the configuration.
func (o Overrides) Apply(cfg *Config) {
	if o.FPS != nil {
		cfg.Display.FPS = *o.FPS
	}
	if o.Seed != nil {
		cfg.Seed = *o.Seed
	}
	if o.LogLevel != nil {
		cfg.Log.Level = *o.LogLevel
	}
	if o.LogFile != nil {
		cfg.Log.File = *o.LogFile
	}
}
