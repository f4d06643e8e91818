// Package tui provides the Bubble Tea integration for the puzzle: the board
// view, mode picker, statistics screen and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-wordle/internal/config"
	"github.com/vovakirdan/tui-wordle/internal/puzzle"
)

// flashDuration is how long a flash message stays under the grid.
const flashDuration = 2 * time.Second

// flashExpiredMsg clears the flash message it was scheduled for.
type flashExpiredMsg struct {
	id int
}

// flashCmd returns a command that expires flash id after flashDuration.
func flashCmd(id int) tea.Cmd {
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashExpiredMsg{id: id}
	})
}

// poolReadyMsg reports that the engine's pending pool load for mode finished.
type poolReadyMsg struct {
	mode config.Mode
}

// waitForPool returns a command that blocks on the engine's completion signal.
// The channel is captured here so the command goroutine never touches the engine.
func waitForPool(e *puzzle.Engine) tea.Cmd {
	ready := e.Ready()
	mode := e.Mode()
	return func() tea.Msg {
		<-ready
		return poolReadyMsg{mode: mode}
	}
}
