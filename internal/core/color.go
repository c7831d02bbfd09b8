package core

// Color is a terminal color for the foreground or background of a cell.
// Values map to ANSI 256-color codes in the platform layer.
type Color uint8

const (
	ColorDefault Color = iota // Terminal default, no escape emitted
	ColorBlack
	ColorRed
	ColorYellow
	ColorWhite
	ColorNavy
	ColorGray
)

// String returns the color name, used in logs and test failures.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorBlack:
		return "black"
	case ColorRed:
		return "red"
	case ColorYellow:
		return "yellow"
	case ColorWhite:
		return "white"
	case ColorNavy:
		return "navy"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}
