// Package tui is the Bubble Tea front-end for Forest Journey.
// It runs the frame loop, maps keys and pointer motion onto input frames,
// and renders the game canvas with a status line.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next simulation frame at tickRate frames per second.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
