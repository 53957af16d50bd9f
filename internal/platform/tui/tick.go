// Package tui hosts match-3 boards in a Bubble Tea program.
// It owns the terminal loop: key and mouse mapping, the fixed-rate tick that
// advances the board's clock and animations, and colored screen output.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next TickMsg after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
