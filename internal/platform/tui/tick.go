// Package tui drives the game in a terminal with Bubble Tea.
// It owns the frame loop, key mapping, logging and the final rendering of
// the game's cell buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per frame and carries the wall time of the frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends the next tick at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// elapsedMs returns the milliseconds between two frames, 0 for the first one.
func elapsedMs(prev, now time.Time) float64 {
	if prev.IsZero() || now.Before(prev) {
		return 0
	}
	return float64(now.Sub(prev)) / float64(time.Millisecond)
}
