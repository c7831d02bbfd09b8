package flappy

import (
	"testing"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(StartX, StartY)
	if p.X != 5 || p.Y != 25 || p.Velocity != 0 {
		t.Errorf("NewPlayer = %+v, expected {X:5 Y:25 Velocity:0}", p)
	}
}

func TestGravityAndMoveFirstTick(t *testing.T) {
	p := NewPlayer(5, 25)
	p.GravityAndMove()

	if p.Velocity != 0.2 {
		t.Errorf("Velocity = %v, expected 0.2", p.Velocity)
	}
	if p.X != 6 {
		t.Errorf("X = %d, expected 6", p.X)
	}
	// 0.2 truncates to 0
	if p.Y != 25 {
		t.Errorf("Y = %d, expected 25", p.Y)
	}
}

func TestGravityAndMoveVelocityCap(t *testing.T) {
	p := NewPlayer(0, 0)
	for i := 0; i < 100; i++ {
		p.GravityAndMove()
		if p.Velocity > MaxVelocity {
			t.Fatalf("tick %d: velocity %v exceeds %v", i, p.Velocity, MaxVelocity)
		}
	}
	if p.Velocity != MaxVelocity {
		t.Errorf("Velocity should settle at %v, got %v", MaxVelocity, p.Velocity)
	}
	if p.X != 100 {
		t.Errorf("X should advance once per tick, got %d", p.X)
	}
}

func TestGravityAndMoveTrajectory(t *testing.T) {
	tests := []struct {
		name string
		flap bool
		want []int // Y after each tick, starting from StartY
	}{
		{
			name: "from rest",
			want: []int{
				25, 25, 25, 25, 26, 27, 28, 29, 30, 32,
				34, 36, 38, 40, 42, 44, 46, 48, 50, 52,
				54, 56, 58, 60,
			},
		},
		{
			name: "after flap",
			flap: true,
			want: []int{
				24, 23, 22, 21, 20, 20, 20, 20, 20, 20,
				20, 20, 20, 20, 21, 22, 23, 24, 25, 27,
				29, 31, 33, 35,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer(StartX, StartY)
			if tc.flap {
				p.Flap()
			}
			for i, want := range tc.want {
				p.GravityAndMove()
				if p.Y != want {
					t.Fatalf("tick %d: Y = %d, expected %d (velocity %v)", i+1, p.Y, want, p.Velocity)
				}
			}
		})
	}
}

func TestGravityAndMoveWholeVelocities(t *testing.T) {
	// Integer tenths model of the same rule.
	p := NewPlayer(0, 0)
	p.Flap()
	v10 := -20
	for i := 0; i < 30; i++ {
		p.GravityAndMove()
		v10 = min(v10+2, 20)
		if got := int(p.Velocity); got != v10/10 {
			t.Fatalf("tick %d: int(velocity %v) = %d, expected %d", i+1, p.Velocity, got, v10/10)
		}
	}
}

func TestGravityAndMoveClampsTop(t *testing.T) {
	p := NewPlayer(0, 1)
	p.Flap()
	p.GravityAndMove() // velocity -1.8 truncates to -1
	p.GravityAndMove() // -1.6 -> -1, would go to -1
	if p.Y != 0 {
		t.Errorf("Y should clamp at 0, got %d", p.Y)
	}

	for i := 0; i < 20; i++ {
		p.Flap()
		p.GravityAndMove()
		if p.Y < 0 {
			t.Fatalf("Y went negative: %d", p.Y)
		}
	}
}

func TestGravityAndMoveInvariants(t *testing.T) {
	rng := core.NewRNG(99)
	p := NewPlayer(StartX, StartY)
	lastX := p.X
	for i := 0; i < 2000; i++ {
		if rng.Range(0, 4) == 0 {
			p.Flap()
		}
		p.GravityAndMove()
		if p.Velocity > MaxVelocity {
			t.Fatalf("tick %d: velocity %v exceeds cap", i, p.Velocity)
		}
		if p.Y < 0 {
			t.Fatalf("tick %d: Y negative (%d)", i, p.Y)
		}
		if p.X != lastX+1 {
			t.Fatalf("tick %d: X moved from %d to %d", i, lastX, p.X)
		}
		lastX = p.X
	}
}

func TestFlap(t *testing.T) {
	for _, v := range []float64{-2, -0.4, 0, 1.2, 2} {
		p := Player{Velocity: v}
		p.Flap()
		if p.Velocity != -2.0 {
			t.Errorf("Flap from %v: velocity = %v, expected -2.0", v, p.Velocity)
		}
	}
}

func TestPlayerRender(t *testing.T) {
	screen := core.NewScreen(80, 50)
	p := NewPlayer(40, 12)
	p.Render(screen)

	want := core.Cell{Rune: PlayerGlyph, Fg: core.ColorYellow, Bg: core.ColorBlack}
	if got := screen.GetCell(0, 12); got != want {
		t.Errorf("player cell = %+v, expected %+v", got, want)
	}
	if screen.Get(40, 12) != ' ' {
		t.Error("player is always drawn in column 0, not at its world X")
	}
}
