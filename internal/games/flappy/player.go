package flappy

import (
	"math"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Physics constants. A physics tick happens every FrameDuration ms,
// not every rendered frame.
const (
	Gravity      = 0.2  // Velocity gained per physics tick
	MaxVelocity  = 2.0  // Fall speed cap
	FlapVelocity = -2.0 // Velocity right after a flap (negative = up)

	StartX = 5  // Player world column at (re)start
	StartY = 25 // Player row at (re)start
)

// PlayerGlyph is drawn at the player's position.
const PlayerGlyph = '@'

// Player is the dragon. X only ever grows and doubles as the camera
// position; Y is the screen row, never negative.
type Player struct {
	X        int
	Y        int
	Velocity float64
}

// NewPlayer creates a player at (x, y) with zero velocity.
func NewPlayer(x, y int) Player {
	return Player{X: x, Y: y}
}

// GravityAndMove advances the player by one physics tick.
// Velocity is snapped to tenths so that repeated Gravity steps land on
// whole numbers before they are truncated into rows.
func (p *Player) GravityAndMove() {
	if p.Velocity < MaxVelocity {
		p.Velocity = math.Min(snapTenth(p.Velocity+Gravity), MaxVelocity)
	}
	p.Y += int(p.Velocity)
	p.X++
	if p.Y < 0 {
		p.Y = 0
	}
}

func snapTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// Flap sets an upward velocity regardless of the current one.
func (p *Player) Flap() {
	p.Velocity = FlapVelocity
}

// Render draws the player in the leftmost column.
func (p Player) Render(dst core.Surface) {
	dst.SetCell(0, p.Y, core.ColorYellow, core.ColorBlack, PlayerGlyph)
}
