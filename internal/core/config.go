package core

// Logical screen size of the game world, in cells.
const (
	DefaultScreenW = 80
	DefaultScreenH = 50
)

// RuntimeConfig contains configuration passed to the game at construction.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second the driver aims for
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with the stock 80x50 layout.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  DefaultScreenW,
		ScreenH:  DefaultScreenH,
		TickRate: 60,
		Seed:     0,
	}
}
