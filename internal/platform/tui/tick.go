// Package tui provides the Bubble Tea integration for Color Match.
// It handles the terminal UI loop, input mapping and the timers behind the
// engine's deferred transitions.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/colormatch/internal/game"
)

// TransitionMsg is delivered when a deferred transition's delay has elapsed.
// The token is handed back to the engine, which ignores it if the
// transition was cancelled in the meantime.
type TransitionMsg struct {
	Token uint64
	Kind  game.TransitionKind
}

// transitionCmd returns a Bubble Tea command that fires after d.Delay.
func transitionCmd(d game.Deferred) tea.Cmd {
	msg := TransitionMsg{Token: d.Token, Kind: d.Kind}
	if d.Delay <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(d.Delay, func(time.Time) tea.Msg {
		return msg
	})
}
