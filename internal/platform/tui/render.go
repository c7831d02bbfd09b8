package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// palette maps core.Color to terminal colors. ColorDefault has no entry
// and keeps the terminal's own color.
var palette = map[core.Color]lipgloss.Color{
	core.ColorBlack:  lipgloss.Color("0"),
	core.ColorRed:    lipgloss.Color("1"),
	core.ColorYellow: lipgloss.Color("3"),
	core.ColorWhite:  lipgloss.Color("7"),
	core.ColorNavy:   lipgloss.Color("17"),
	core.ColorGray:   lipgloss.Color("245"),
}

// styleFor builds the lipgloss style for a foreground/background pair.
func styleFor(fg, bg core.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c, ok := palette[fg]; ok {
		style = style.Foreground(c)
	}
	if c, ok := palette[bg]; ok {
		style = style.Background(c)
	}
	return style
}

// RenderScreen converts the top-left maxW x maxH region of a Screen to a
// styled string. Non-positive limits mean the full screen.
// Adjacent cells with the same colors are grouped to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, maxW, maxH int) string {
	w, h := s.Width(), s.Height()
	if maxW > 0 {
		w = min(w, maxW)
	}
	if maxH > 0 {
		h = min(h, maxH)
	}

	var sb strings.Builder
	sb.Grow(w*h*2 + h)

	for y := 0; y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < w {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < w {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
