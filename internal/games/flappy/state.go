// Package flappy implements Flappy Dragon, a side-scrolling reflex game.
// The player keeps a dragon in the air and steers it through the gaps of
// an endless stream of walls. The package is pure game logic: the platform
// supplies elapsed time, the latest key press and a surface to draw on.
package flappy

import (
	"fmt"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// FrameDuration is the number of milliseconds between physics ticks.
const FrameDuration = 75.0

// MinScreenW is the narrowest screen that spawns obstacles ahead of the
// player.
const MinScreenW = StartX + 1

// Mode is the coarse phase of the game.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeEnd
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeEnd:
		return "end"
	default:
		return "unknown"
	}
}

// State owns the player, the current obstacle and the game mode.
// It is driven by calling Tick once per rendered frame.
type State struct {
	player    Player
	obstacle  Obstacle
	mode      Mode
	frameTime float64 // ms accumulated since the last physics tick
	score     int
	quitting  bool

	config core.RuntimeConfig
	rng    core.RandomSource
}

// NewState creates a game waiting in the menu. A screen narrower than
// MinScreenW or with no height falls back to the default size.
func NewState(cfg core.RuntimeConfig, rng core.RandomSource) *State {
	if cfg.ScreenW < MinScreenW || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}
	return &State{
		player:   NewPlayer(StartX, StartY),
		obstacle: NewObstacle(cfg.ScreenW, 0, rng),
		mode:     ModeMenu,
		config:   cfg,
		rng:      rng,
	}
}

// Restart begins a new round. Every piece of round state is replaced.
func (s *State) Restart() {
	s.player = NewPlayer(StartX, StartY)
	s.frameTime = 0
	s.obstacle = NewObstacle(s.config.ScreenW, 0, s.rng)
	s.mode = ModePlaying
	s.score = 0
}

// Tick runs one frame. key is ActionNone when nothing was pressed.
func (s *State) Tick(dst core.Surface, elapsedMs float64, key core.Action) {
	dst.Clear()
	switch s.mode {
	case ModeMenu:
		s.mainMenu(dst, key)
	case ModePlaying:
		s.play(dst, elapsedMs, key)
	case ModeEnd:
		s.dead(dst, key)
	}
}

func (s *State) mainMenu(dst core.Surface, key core.Action) {
	dst.DrawTextCentered(5, "Welcome to the Flappy Dragon!")
	dst.DrawTextCentered(8, "(P) Play the Game")
	dst.DrawTextCentered(9, "(Q) Quit")

	switch key {
	case core.ActionPlay:
		s.Restart()
	case core.ActionQuit:
		s.quitting = true
	}
}

func (s *State) play(dst core.Surface, elapsedMs float64, key core.Action) {
	dst.ClearBackground(core.ColorNavy)

	s.frameTime += elapsedMs
	if s.frameTime > FrameDuration {
		s.frameTime = 0
		s.player.GravityAndMove()
	}
	if key == core.ActionFlap {
		s.player.Flap()
	}

	s.player.Render(dst)
	dst.DrawText(0, 0, "Press SPACE to flap.")
	dst.DrawText(0, 1, fmt.Sprintf("Score: %d", s.score))
	s.obstacle.Render(dst, s.player.X)

	if s.obstacle.Behind(s.player) {
		s.score++
		s.obstacle = NewObstacle(s.player.X+s.config.ScreenW, s.score, s.rng)
	}

	if s.player.Y > s.config.ScreenH || s.obstacle.Hit(s.player) {
		s.mode = ModeEnd
	}
}

func (s *State) dead(dst core.Surface, key core.Action) {
	dst.DrawTextCentered(7, fmt.Sprintf("Game Over! Your score: %d", s.score))
	dst.DrawTextCentered(8, "Press (R) to restart, or (Q) to quit.")

	switch key {
	case core.ActionPlay:
		s.Restart()
	case core.ActionQuit:
		s.quitting = true
	}
}

// Mode returns the current game mode.
func (s *State) Mode() Mode {
	return s.mode
}

// Score returns the number of walls passed this round.
func (s *State) Score() int {
	return s.score
}

// Player returns a copy of the player.
func (s *State) Player() Player {
	return s.player
}

// Obstacle returns a copy of the current obstacle.
func (s *State) Obstacle() Obstacle {
	return s.obstacle
}

// Quitting reports whether the player asked to leave the game.
func (s *State) Quitting() bool {
	return s.quitting
}
