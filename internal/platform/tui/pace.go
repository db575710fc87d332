// Package tui provides the Bubble Tea integration for the tennis simulation.
// It handles the terminal UI loop, input mapping, and match orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// opponentMoveMsg is sent when the computer should take its next action.
type opponentMoveMsg time.Time

// opponentDelay paces the computer so rallies read as an exchange instead of
// resolving instantly.
const opponentDelay = 600 * time.Millisecond

// opponentCmd returns a Bubble Tea command that schedules the computer's move.
func opponentCmd() tea.Cmd {
	return tea.Tick(opponentDelay, func(t time.Time) tea.Msg {
		return opponentMoveMsg(t)
	})
}
