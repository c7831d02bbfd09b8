package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.ClearBackground(core.ColorNavy)
	s.DrawText(0, 0, "Score: 1")
	s.SetCell(0, 2, core.ColorYellow, core.ColorBlack, '@')
	s.SetCell(5, 2, core.ColorRed, core.ColorBlack, '|')

	out := RenderScreen(s, 0, 0)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "Score: 1") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[2], "@") || !strings.Contains(lines[2], "|") {
		t.Errorf("line 2 = %q", lines[2])
	}
}

func TestRenderScreenCrop(t *testing.T) {
	s := core.NewScreen(10, 6)
	s.DrawText(0, 0, "0123456789")

	out := RenderScreen(s, 4, 2)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "0123") || strings.Contains(lines[0], "4") {
		t.Errorf("line 0 should be cropped to 4 cells, got %q", lines[0])
	}
}

func TestStyleForDefaultColors(t *testing.T) {
	// Default on default is an empty style
	if got := styleFor(core.ColorDefault, core.ColorDefault).Render("x"); got != "x" {
		t.Errorf("default style rendered %q", got)
	}
	for c := range palette {
		if c == core.ColorDefault {
			t.Error("ColorDefault must not be in the palette")
		}
	}
}
