// Package tui runs a game inside a Bubble Tea program. It maps keys to
// game actions, schedules input polls at the game's own pace and draws the
// game's screen buffer with lipgloss colors.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the model to run one input poll.
type TickMsg time.Time

// gameOverMsg ends the program once the game-over screen has been shown.
type gameOverMsg struct{}

// tickCmd schedules the next poll after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// gameOverCmd schedules the end of the program after the hold delay.
func gameOverCmd(hold time.Duration) tea.Cmd {
	return tea.Tick(hold, func(time.Time) tea.Msg {
		return gameOverMsg{}
	})
}
