package flappy

import (
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Obstacle generation constants. The gap band is fixed and does not
// follow the screen height.
const (
	GapMinY     = 10 // Lowest gap centre, inclusive
	GapMaxY     = 40 // Highest gap centre, exclusive
	BaseGapSize = 20 // Gap size at score 0
	MinGapSize  = 2  // Gap never shrinks below this
)

// ObstacleGlyph is drawn for every wall cell of an obstacle.
const ObstacleGlyph = '|'

// Obstacle is a vertical wall with a single gap.
type Obstacle struct {
	X    int // Absolute world column
	GapY int // Row at the centre of the gap
	Size int // Gap size, see GapSize
}

// GapSize returns the gap size for an obstacle spawned at the given score.
func GapSize(score int) int {
	return core.Max(MinGapSize, BaseGapSize-score)
}

// NewObstacle creates an obstacle at world column x. The gap centre is
// drawn once from rng.
func NewObstacle(x, score int, rng core.RandomSource) Obstacle {
	return Obstacle{
		X:    x,
		GapY: rng.Range(GapMinY, GapMaxY),
		Size: GapSize(score),
	}
}

// HalfSize is half the gap, rounded down.
func (o Obstacle) HalfSize() int {
	return o.Size / 2
}

// Behind reports whether the player has moved past the obstacle.
func (o Obstacle) Behind(p Player) bool {
	return o.X < p.X
}

// Hit reports whether the player crashed into the wall. Only the exact
// column is checked; the player moves one column per physics tick so
// no column is skipped.
func (o Obstacle) Hit(p Player) bool {
	half := o.HalfSize()
	if p.X != o.X {
		return false
	}
	above := p.Y < o.GapY-half
	below := p.Y > o.GapY+half
	return above || below
}

// Render draws the wall relative to the camera at playerX.
func (o Obstacle) Render(dst core.Surface, playerX int) {
	screenX := o.X - playerX
	half := o.HalfSize()
	for y := 0; y < dst.Height(); y++ {
		if y >= o.GapY-half && y < o.GapY+half {
			continue
		}
		dst.SetCell(screenX, y, core.ColorRed, core.ColorBlack, ObstacleGlyph)
	}
}
